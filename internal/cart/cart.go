package cart

import (
	"rupeeshop-client/internal/product"
)

// Merge adds quantity of the given product to the cart, folding into an
// existing line when the product is already present. The input slice is not
// modified.
func Merge(items []Item, p product.Product, quantity int) []Item {
	if quantity < 1 {
		quantity = 1
	}

	out := make([]Item, len(items))
	copy(out, items)

	for i, item := range out {
		if item.Product.ID == p.ID {
			out[i].Quantity += quantity
			return out
		}
	}

	return append(out, Item{Product: p, Quantity: quantity})
}

// Remove drops the line for the given product id. Removing an absent product
// is a no-op.
func Remove(items []Item, productID int) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

// UpdateQuantity replaces the quantity for the given product id. A quantity
// of zero or less removes the line instead.
func UpdateQuantity(items []Item, productID, quantity int) []Item {
	if quantity <= 0 {
		return Remove(items, productID)
	}

	out := make([]Item, len(items))
	copy(out, items)

	for i, item := range out {
		if item.Product.ID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Total returns the sum of price x quantity over all lines. It is always
// recomputed from the full cart, never patched incrementally.
func Total(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}
