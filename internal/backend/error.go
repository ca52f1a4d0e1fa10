package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyInWishlist is the structured form of the backend's
	// "Already in wishlist" response. The store treats it as informational,
	// not as a failure.
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
)

// APIError carries the backend's HTTP status and error message for a non-2xx
// response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (status %d)", e.StatusCode)
}

// APIMessage returns the server-provided message from err, if err is an
// APIError carrying one.
func APIMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
