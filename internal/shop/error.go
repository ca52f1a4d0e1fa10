package shop

import "errors"

var (
	// -- Authentication --
	ErrNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrCartEmpty      = errors.New("cart is empty")
	ErrInvalidReview  = errors.New("invalid review")
	ErrUnknownProduct = errors.New("product not in catalog")
)
