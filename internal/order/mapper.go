package order

import (
	"go.uber.org/zap"

	"rupeeshop-client/internal/cart"
	"rupeeshop-client/internal/product"
)

// Reconcile rehydrates raw orders against the loaded catalog: each line item's
// product reference is replaced by the full catalog product matched by id. A
// line whose product id is missing from the catalog keeps its raw inlined
// product unchanged; it is logged, not dropped.
func Reconcile(raw []RawOrder, catalog product.Catalog, log *zap.Logger) []Order {
	orders := make([]Order, 0, len(raw))

	for _, ro := range raw {
		items := make([]cart.Item, 0, len(ro.Products))

		for _, ri := range ro.Products {
			quantity := ri.Product.Quantity
			if quantity == 0 {
				quantity = 1
			}

			p, ok := catalog.ByID(ri.Product.ID)
			if !ok {
				log.Warn("order line item not found in catalog, keeping raw product",
					zap.Int("order_id", ro.ID),
					zap.Int("product_id", ri.Product.ID),
				)
				p = ri.Product.Product
			}

			items = append(items, cart.Item{Product: p, Quantity: quantity})
		}

		orders = append(orders, Order{
			ID:            ro.ID,
			Products:      items,
			TotalAmount:   ro.TotalAmount,
			Date:          ro.Date,
			Status:        ro.Status,
			Address:       ro.Address,
			PaymentMethod: ro.PaymentMethod,
		})
	}

	return orders
}
