package shop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rupeeshop-client/internal/backend"
	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/product"
	"rupeeshop-client/internal/storage"
)

// AddToWishlist syncs the product into the remote wishlist and, on success,
// appends it locally. The membership check and the remote call run outside
// the lock: two rapid adds for the same product can both pass the check, and
// the backend's already-in-wishlist reply keeps the list duplicate-free.
func (s *Store) AddToWishlist(ctx context.Context, p product.Product) error {
	ctx = logger.WithOpID(ctx)

	u := s.currentUser()
	if u == nil {
		s.countOp("add_to_wishlist", "error")
		s.notify(notify.SeverityError, "You must be logged in to add to wishlist")
		return ErrNotAuthenticated
	}

	err := s.adapter.AddToWishlist(ctx, u.ID, p.ID)
	if errors.Is(err, backend.ErrAlreadyInWishlist) {
		s.countOp("add_to_wishlist", "success")
		s.notify(notify.SeverityInfo, fmt.Sprintf("%s is already in wishlist", p.Name))
		return nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to add to wishlist",
			zap.Int("product_id", p.ID), zap.Error(err))
		s.countOp("add_to_wishlist", "error")
		s.notify(notify.SeverityError, "Could not add to wishlist")
		return err
	}

	s.mu.Lock()
	s.wishlist = append(s.wishlist, p)
	s.persist(storage.SlotWishlist, s.wishlist)
	s.mu.Unlock()

	s.countOp("add_to_wishlist", "success")
	s.notify(notify.SeveritySuccess, fmt.Sprintf("%s added to wishlist", p.Name))
	return nil
}

// RemoveFromWishlist deletes the product from the remote wishlist, then
// removes it locally. Removing a product that is not in the local wishlist is
// a silent no-op.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID int) error {
	ctx = logger.WithOpID(ctx)

	u := s.currentUser()
	if u == nil {
		s.countOp("remove_from_wishlist", "error")
		s.notify(notify.SeverityError, "You must be logged in to remove from wishlist")
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	found := false
	for _, item := range s.wishlist {
		if item.ID == productID {
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return nil
	}

	if err := s.adapter.RemoveFromWishlist(ctx, u.ID, productID); err != nil {
		logger.FromCtx(ctx).Error("failed to remove from wishlist",
			zap.Int("product_id", productID), zap.Error(err))
		s.countOp("remove_from_wishlist", "error")
		s.notify(notify.SeverityError, "Could not remove from wishlist")
		return err
	}

	s.mu.Lock()
	out := s.wishlist[:0]
	for _, item := range s.wishlist {
		if item.ID != productID {
			out = append(out, item)
		}
	}
	s.wishlist = out
	s.persist(storage.SlotWishlist, s.wishlist)
	s.mu.Unlock()

	s.countOp("remove_from_wishlist", "success")
	s.notify(notify.SeverityInfo, "Item removed from wishlist")
	return nil
}

// FetchWishlist replaces the local wishlist with the intersection of the
// remote wishlist ids and the loaded catalog; ids missing from the catalog
// are silently dropped. A failed fetch leaves the wishlist unchanged.
func (s *Store) FetchWishlist(ctx context.Context) error {
	ctx = logger.WithOpID(ctx)

	u := s.currentUser()
	if u == nil {
		return ErrNotAuthenticated
	}

	ids, err := s.adapter.FetchWishlist(ctx, u.ID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load wishlist from backend", zap.Error(err))
		s.countOp("fetch_wishlist", "error")
		s.notify(notify.SeverityError, "Could not load wishlist")
		return err
	}

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	s.mu.Lock()
	matched := make([]product.Product, 0, len(ids))
	for _, p := range s.catalog {
		if wanted[p.ID] {
			matched = append(matched, p)
		}
	}
	s.wishlist = matched
	s.persist(storage.SlotWishlist, s.wishlist)
	s.mu.Unlock()

	s.countOp("fetch_wishlist", "success")
	return nil
}
