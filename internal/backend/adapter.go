package backend

import (
	"context"

	"rupeeshop-client/internal/order"
	"rupeeshop-client/internal/product"
	"rupeeshop-client/internal/user"
)

// Adapter is the interface through which the shop store talks to a backend.
// The live REST adapter and the offline demo adapter implement the same
// contract, so the store never knows which deployment variant it runs in.
//
// Every call is a single attempt with no automatic retry; deadlines are owned
// by the adapter (request timeout) and the caller's context.
type Adapter interface {
	FetchProducts(ctx context.Context) ([]product.Product, error)
	Login(ctx context.Context, email, password string) (user.User, error)
	Register(ctx context.Context, name, email, password string) (user.User, error)
	FetchWishlist(ctx context.Context, userID int) ([]int, error)
	AddToWishlist(ctx context.Context, userID, productID int) error
	RemoveFromWishlist(ctx context.Context, userID, productID int) error
	FetchOrders(ctx context.Context, userID int) ([]order.RawOrder, error)
	PlaceOrder(ctx context.Context, userID int, draft order.Draft) (order.Order, error)
	AddReview(ctx context.Context, productID int, review product.Review) error
}
