package shop

import (
	"fmt"

	"rupeeshop-client/internal/cart"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/product"
	"rupeeshop-client/internal/storage"
)

// AddToCart merges quantity of the product into the cart, folding into the
// existing line when the product is already there. Quantities below one are
// treated as one. Local-only, always succeeds.
func (s *Store) AddToCart(p product.Product, quantity int) {
	s.mu.Lock()
	s.cart = cart.Merge(s.cart, p, quantity)
	s.persist(storage.SlotCart, s.cart)
	s.mu.Unlock()

	s.countOp("add_to_cart", "success")
	s.notify(notify.SeveritySuccess, fmt.Sprintf("%s added to cart", p.Name))
}

// RemoveFromCart drops the line for the product id. Removing an absent
// product is a no-op but still notifies, matching the cart page behavior.
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	s.cart = cart.Remove(s.cart, productID)
	s.persist(storage.SlotCart, s.cart)
	s.mu.Unlock()

	s.countOp("remove_from_cart", "success")
	s.notify(notify.SeverityInfo, "Item removed from cart")
}

// UpdateCartItemQuantity replaces the quantity for the product id. A quantity
// of zero or less delegates to RemoveFromCart.
func (s *Store) UpdateCartItemQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	s.cart = cart.UpdateQuantity(s.cart, productID, quantity)
	s.persist(storage.SlotCart, s.cart)
	s.mu.Unlock()

	s.countOp("update_cart_quantity", "success")
}

// ClearCart empties the cart without notifying; checkout success has its own
// notification.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.persist(storage.SlotCart, s.cart)
	s.mu.Unlock()

	s.countOp("clear_cart", "success")
}
