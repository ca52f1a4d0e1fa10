package shop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rupeeshop-client/internal/backend"
	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/storage"
)

// Login authenticates against the backend. On success it activates the
// session, persists it and refreshes the remote-backed slices; on failure
// state is unchanged. The result is reported as a flag, never an error.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	ctx = logger.WithOpID(ctx)
	log := logger.FromCtx(ctx)

	u, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		log.Warn("login failed", zap.String("email", email), zap.Error(err))
		s.countOp("login", "error")

		msg := backend.APIMessage(err)
		if msg == "" {
			msg = "Login failed. Please try again."
		}
		s.notify(notify.SeverityError, msg)
		return false
	}

	s.mu.Lock()
	s.user = &u
	s.persist(storage.SlotUser, s.user)
	catalogLoaded := len(s.catalog) > 0
	s.mu.Unlock()

	s.countOp("login", "success")
	s.notify(notify.SeveritySuccess, fmt.Sprintf("Welcome back, %s!", u.Name))

	if catalogLoaded {
		s.FetchWishlist(ctx)
		s.FetchUserOrders(ctx, u.ID)
	}
	return true
}

// Register creates an account and activates the session directly; there is no
// separate login round-trip. Same failure contract as Login.
func (s *Store) Register(ctx context.Context, name, email, password string) bool {
	ctx = logger.WithOpID(ctx)
	log := logger.FromCtx(ctx)

	u, err := s.adapter.Register(ctx, name, email, password)
	if err != nil {
		log.Warn("registration failed", zap.String("email", email), zap.Error(err))
		s.countOp("register", "error")

		msg := backend.APIMessage(err)
		if msg == "" {
			msg = "Registration failed. Please try again."
		}
		s.notify(notify.SeverityError, msg)
		return false
	}

	s.mu.Lock()
	s.user = &u
	s.persist(storage.SlotUser, s.user)
	catalogLoaded := len(s.catalog) > 0
	s.mu.Unlock()

	s.countOp("register", "success")
	s.notify(notify.SeveritySuccess, fmt.Sprintf("Welcome, %s!", name))

	if catalogLoaded {
		s.FetchWishlist(ctx)
		s.FetchUserOrders(ctx, u.ID)
	}
	return true
}

// Logout clears the session and removes the persisted user slot. Cart and
// wishlist stay in place.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	if err := s.storage.Delete(storage.SlotUser); err != nil {
		logger.L().Warn("failed to delete user slot", zap.Error(err))
	}
	s.mu.Unlock()

	s.countOp("logout", "success")
	s.notify(notify.SeverityInfo, "Logged out successfully")
}
