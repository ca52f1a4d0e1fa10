package order

import (
	"rupeeshop-client/internal/cart"
	"rupeeshop-client/internal/product"
)

// Status is assigned server-side; the client never transitions it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

// Order is immutable on the client after placement; the authoritative copy
// lives server-side.
type Order struct {
	ID            int           `json:"id"`
	Products      []cart.Item   `json:"products"`
	TotalAmount   int64         `json:"totalAmount"`
	Date          string        `json:"date"`
	Status        Status        `json:"status"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Draft is the payload POSTed to create an order: a snapshot of the cart at
// placement time plus the computed total.
type Draft struct {
	Products      []DraftItem   `json:"products"`
	TotalAmount   int64         `json:"totalAmount"`
	Status        Status        `json:"status"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type DraftItem struct {
	Product DraftProduct `json:"product"`
}

type DraftProduct struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// NewDraft snapshots the given cart lines into the wire shape the backend
// expects for order creation.
func NewDraft(items []cart.Item, total int64, address string, method PaymentMethod) Draft {
	products := make([]DraftItem, 0, len(items))
	for _, item := range items {
		products = append(products, DraftItem{
			Product: DraftProduct{ID: item.Product.ID, Quantity: item.Quantity},
		})
	}

	return Draft{
		Products:      products,
		TotalAmount:   total,
		Status:        StatusPending,
		Address:       address,
		PaymentMethod: method,
	}
}

// RawOrder is the shape returned by the orders endpoint. Line-item quantity is
// nested under the product object rather than beside it, which reconciliation
// has to tolerate.
type RawOrder struct {
	ID            int           `json:"id"`
	Products      []RawItem     `json:"products"`
	TotalAmount   int64         `json:"totalAmount"`
	Date          string        `json:"date"`
	Status        Status        `json:"status"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type RawItem struct {
	Product RawProduct `json:"product"`
}

type RawProduct struct {
	product.Product
	Quantity int `json:"quantity"`
}
