package cart

import (
	"rupeeshop-client/internal/product"
)

// Item pairs a product with the quantity in the cart. The cart holds at most
// one Item per distinct product id; quantities are merged on add.
type Item struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}
