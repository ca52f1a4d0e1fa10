package backend

import (
	"context"
	"net/http"
	"sync"
	"time"

	"rupeeshop-client/internal/order"
	"rupeeshop-client/internal/product"
	"rupeeshop-client/internal/user"
)

// offlineAdapter implements Adapter entirely in memory. It backs the
// offline-demo deployment variant: every operation resolves synchronously
// against seeded data, with the same contract as the live adapter.
type offlineAdapter struct {
	mu        sync.Mutex
	catalog   product.Catalog
	users     []user.User
	wishlists map[int][]int
	orders    map[int][]order.RawOrder
	nextUser  int
	nextOrder int
}

// NewOffline returns an adapter backed by the given catalog, or the bundled
// default catalog when nil. A demo account (demo@rupeeshop.in) is pre-seeded.
func NewOffline(catalog []product.Product) Adapter {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	return &offlineAdapter{
		catalog: product.Catalog(catalog),
		users: []user.User{
			{ID: 1, Name: "Demo Shopper", Email: "demo@rupeeshop.in", Address: "221B MG Road, Bengaluru", Phone: "+91 98450 00000"},
		},
		wishlists: make(map[int][]int),
		orders:    make(map[int][]order.RawOrder),
		nextUser:  2,
		nextOrder: 1,
	}
}

func (a *offlineAdapter) FetchProducts(ctx context.Context) ([]product.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]product.Product, len(a.catalog))
	copy(out, a.catalog)
	return out, nil
}

// Login matches by email only; the demo variant stores no credentials.
func (a *offlineAdapter) Login(ctx context.Context, email, password string) (user.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
}

func (a *offlineAdapter) Register(ctx context.Context, name, email, password string) (user.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Email == email {
			return user.User{}, &APIError{StatusCode: http.StatusBadRequest, Message: "Email already registered"}
		}
	}

	u := user.User{ID: a.nextUser, Name: name, Email: email}
	a.nextUser++
	a.users = append(a.users, u)
	return u, nil
}

func (a *offlineAdapter) FetchWishlist(ctx context.Context, userID int) ([]int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := a.wishlists[userID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}

func (a *offlineAdapter) AddToWishlist(ctx context.Context, userID, productID int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, id := range a.wishlists[userID] {
		if id == productID {
			return ErrAlreadyInWishlist
		}
	}
	a.wishlists[userID] = append(a.wishlists[userID], productID)
	return nil
}

func (a *offlineAdapter) RemoveFromWishlist(ctx context.Context, userID, productID int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := a.wishlists[userID]
	out := ids[:0]
	for _, id := range ids {
		if id != productID {
			out = append(out, id)
		}
	}
	a.wishlists[userID] = out
	return nil
}

func (a *offlineAdapter) FetchOrders(ctx context.Context, userID int) ([]order.RawOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	raw := a.orders[userID]
	out := make([]order.RawOrder, len(raw))
	copy(out, raw)
	return out, nil
}

func (a *offlineAdapter) PlaceOrder(ctx context.Context, userID int, draft order.Draft) (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]order.RawItem, 0, len(draft.Products))
	for _, di := range draft.Products {
		p, _ := a.catalog.ByID(di.Product.ID)
		items = append(items, order.RawItem{
			Product: order.RawProduct{Product: p, Quantity: di.Product.Quantity},
		})
	}

	raw := order.RawOrder{
		ID:            a.nextOrder,
		Products:      items,
		TotalAmount:   draft.TotalAmount,
		Date:          time.Now().Format("2006-01-02"),
		Status:        order.StatusPending,
		Address:       draft.Address,
		PaymentMethod: draft.PaymentMethod,
	}
	a.nextOrder++
	a.orders[userID] = append(a.orders[userID], raw)

	placed := order.Order{
		ID:            raw.ID,
		TotalAmount:   raw.TotalAmount,
		Date:          raw.Date,
		Status:        raw.Status,
		Address:       raw.Address,
		PaymentMethod: raw.PaymentMethod,
	}
	return placed, nil
}

func (a *offlineAdapter) AddReview(ctx context.Context, productID int, review product.Review) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, p := range a.catalog {
		if p.ID == productID {
			a.catalog[i].Reviews = append(a.catalog[i].Reviews, review)
			a.catalog[i].Rating = product.AverageRating(a.catalog[i].Reviews)
			return nil
		}
	}
	return &APIError{StatusCode: http.StatusNotFound, Message: "Product not found"}
}
