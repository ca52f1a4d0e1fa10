package shop

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/product"
)

// AddReview submits a review with a client-generated id and date, then
// appends it to the local product and recomputes its average rating. A remote
// failure leaves the product unchanged.
func (s *Store) AddReview(ctx context.Context, productID, rating int, comment string) error {
	ctx = logger.WithOpID(ctx)
	log := logger.FromCtx(ctx)

	u := s.currentUser()
	if u == nil {
		s.countOp("add_review", "error")
		s.notify(notify.SeverityError, "You must be logged in to add a review")
		return ErrNotAuthenticated
	}

	if rating < 1 || rating > 5 || comment == "" {
		s.countOp("add_review", "error")
		s.notify(notify.SeverityError, "Please provide a rating and a comment")
		return ErrInvalidReview
	}

	now := time.Now()
	review := product.Review{
		ID:       now.UnixMilli(),
		UserID:   u.ID,
		UserName: u.Name,
		Rating:   rating,
		Comment:  comment,
		Date:     now.Format("2006-01-02"),
	}

	if err := s.adapter.AddReview(ctx, productID, review); err != nil {
		log.Error("failed to add review", zap.Int("product_id", productID), zap.Error(err))
		s.countOp("add_review", "error")
		s.notify(notify.SeverityError, "Failed to add review. Please try again.")
		return err
	}

	s.mu.Lock()
	for i := range s.catalog {
		if s.catalog[i].ID == productID {
			s.catalog[i].Reviews = append(s.catalog[i].Reviews, review)
			s.catalog[i].Rating = product.AverageRating(s.catalog[i].Reviews)
			break
		}
	}
	s.mu.Unlock()

	s.countOp("add_review", "success")
	s.notify(notify.SeveritySuccess, "Review added successfully")
	return nil
}
