package shop

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"rupeeshop-client/internal/backend"
	"rupeeshop-client/internal/cart"
	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/metrics"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/order"
	"rupeeshop-client/internal/product"
	"rupeeshop-client/internal/storage"
	"rupeeshop-client/internal/user"
)

// Store owns all client-side shop state: catalog, cart, wishlist, orders and
// the active session. It is the only component allowed to mutate them; the UI
// reads snapshots and calls the mutation methods.
//
// Local state updates are serialized by the mutex. Remote round-trips never
// hold the lock, so a remote-backed mutation is a read-check-act sequence:
// two rapid calls against the same entity can both pass the check and both
// hit the backend, which absorbs the duplicate (see AddToWishlist).
type Store struct {
	mu       sync.Mutex
	catalog  product.Catalog
	cart     []cart.Item
	wishlist []product.Product
	orders   []order.Order
	user     *user.User

	adapter  backend.Adapter
	storage  storage.Store
	notifier notify.Notifier
}

// New constructs a store around the given backend adapter, persistence store
// and notification sink. Call Init before use.
func New(adapter backend.Adapter, st storage.Store, notifier notify.Notifier) *Store {
	return &Store{
		adapter:  adapter,
		storage:  st,
		notifier: notifier,
	}
}

// Init restores persisted state and loads the product catalog. Each persisted
// slot loads independently: a malformed cart snapshot does not prevent the
// wishlist or session from loading. A failed catalog fetch falls back to the
// bundled snapshot so browsing keeps working offline.
func (s *Store) Init(ctx context.Context) {
	ctx = logger.WithOpID(ctx)
	log := logger.FromCtx(ctx)

	s.loadSlots(log)

	products, err := s.adapter.FetchProducts(ctx)
	if err != nil {
		log.Warn("failed to fetch product catalog, loading fallback data", zap.Error(err))
		products = backend.DefaultCatalog()
	}

	s.mu.Lock()
	s.catalog = product.Catalog(products)
	restored := s.user
	s.mu.Unlock()

	log.Info("shop store initialized",
		zap.Int("catalog_size", len(products)),
		zap.Bool("session_restored", restored != nil),
	)

	// Session is restored trust-on-read from the persisted user slot, without
	// re-validating credentials. Refresh the remote-backed slices the same way
	// the UI does on mount.
	if restored != nil && len(products) > 0 {
		s.FetchWishlist(ctx)
		s.FetchUserOrders(ctx, restored.ID)
	}
}

func (s *Store) loadSlots(log *zap.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var storedCart []cart.Item
	if err := s.storage.Load(storage.SlotCart, &storedCart); err != nil {
		s.warnSlot(log, storage.SlotCart, err)
	} else {
		s.cart = storedCart
	}

	var storedWishlist []product.Product
	if err := s.storage.Load(storage.SlotWishlist, &storedWishlist); err != nil {
		s.warnSlot(log, storage.SlotWishlist, err)
	} else {
		s.wishlist = storedWishlist
	}

	var storedUser user.User
	if err := s.storage.Load(storage.SlotUser, &storedUser); err != nil {
		s.warnSlot(log, storage.SlotUser, err)
	} else {
		s.user = &storedUser
	}

	var storedOrders []order.Order
	if err := s.storage.Load(storage.SlotOrders, &storedOrders); err != nil {
		s.warnSlot(log, storage.SlotOrders, err)
	} else {
		s.orders = storedOrders
	}
}

func (s *Store) warnSlot(log *zap.Logger, slot string, err error) {
	if errors.Is(err, storage.ErrSlotNotFound) {
		return
	}
	log.Warn("failed to load storage slot", zap.String("slot", slot), zap.Error(err))
}

// Close persists current state and flushes logs.
func (s *Store) Close() {
	s.mu.Lock()
	s.persist(storage.SlotCart, s.cart)
	s.persist(storage.SlotWishlist, s.wishlist)
	if s.user != nil {
		s.persist(storage.SlotUser, s.user)
	}
	s.mu.Unlock()

	logger.Sync()
}

// persist mirrors a slot to durable storage. Failures are logged and ignored;
// a full disk never fails the mutation that triggered the write.
func (s *Store) persist(slot string, v any) {
	if err := s.storage.Save(slot, v); err != nil {
		logger.L().Warn("failed to persist storage slot", zap.String("slot", slot), zap.Error(err))
	}
}

func (s *Store) notify(severity notify.Severity, message string) {
	s.notifier.Notify(severity, message)
}

func (s *Store) countOp(operation, status string) {
	metrics.StoreOperations.WithLabelValues(operation, status).Inc()
}

// ---------- snapshots ----------

// Products returns a copy of the loaded catalog.
func (s *Store) Products() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]product.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// GetProductByID looks the product up in the local catalog.
func (s *Store) GetProductByID(id int) (product.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.ByID(id)
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Item, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal is recomputed from the full cart contents on every call.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Total(s.cart)
}

// Wishlist returns a copy of the current wishlist.
func (s *Store) Wishlist() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]product.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// Orders returns a copy of the loaded order history.
func (s *Store) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// User returns the active session profile, or nil when anonymous.
func (s *Store) User() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// currentUser snapshots the session for a read-check-act sequence.
func (s *Store) currentUser() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
