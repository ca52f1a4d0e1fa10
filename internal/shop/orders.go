package shop

import (
	"context"

	"go.uber.org/zap"

	"rupeeshop-client/internal/cart"
	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/order"
	"rupeeshop-client/internal/storage"
)

// PlaceOrder sends a snapshot of the cart and its computed total to the
// backend. On success the cart is cleared and the order list refreshed; on
// failure the cart is preserved. An empty cart is rejected before any remote
// call.
func (s *Store) PlaceOrder(ctx context.Context, address string, method order.PaymentMethod) error {
	ctx = logger.WithOpID(ctx)
	log := logger.FromCtx(ctx)

	u := s.currentUser()
	if u == nil {
		s.countOp("place_order", "error")
		s.notify(notify.SeverityError, "You must be logged in to place an order")
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	snapshot := make([]cart.Item, len(s.cart))
	copy(snapshot, s.cart)
	total := cart.Total(snapshot)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		s.countOp("place_order", "error")
		s.notify(notify.SeverityError, "Your cart is empty")
		return ErrCartEmpty
	}

	draft := order.NewDraft(snapshot, total, address, method)

	placed, err := s.adapter.PlaceOrder(ctx, u.ID, draft)
	if err != nil {
		log.Error("failed to place order", zap.Error(err))
		s.countOp("place_order", "error")
		s.notify(notify.SeverityError, "Failed to place order")
		return err
	}

	log.Info("order placed",
		zap.Int("order_id", placed.ID),
		zap.Int64("total_amount", total),
		zap.Int("line_items", len(snapshot)),
	)

	s.countOp("place_order", "success")
	s.notify(notify.SeveritySuccess, "Order placed successfully!")
	s.ClearCart()

	s.FetchUserOrders(ctx, u.ID)
	return nil
}

// FetchUserOrders fetches raw orders and rehydrates each line item against
// the local catalog. On success the local order list is replaced; on failure
// it is left unchanged and an empty slice is returned.
func (s *Store) FetchUserOrders(ctx context.Context, userID int) ([]order.Order, error) {
	ctx = logger.WithOpID(ctx)
	log := logger.FromCtx(ctx)

	raw, err := s.adapter.FetchOrders(ctx, userID)
	if err != nil {
		log.Error("failed to fetch orders", zap.Int("user_id", userID), zap.Error(err))
		s.countOp("fetch_orders", "error")
		s.notify(notify.SeverityError, "Failed to fetch orders.")
		return nil, err
	}

	s.mu.Lock()
	reconciled := order.Reconcile(raw, s.catalog, log)
	s.orders = reconciled
	s.persist(storage.SlotOrders, s.orders)
	out := make([]order.Order, len(reconciled))
	copy(out, reconciled)
	s.mu.Unlock()

	s.countOp("fetch_orders", "success")
	return out, nil
}
