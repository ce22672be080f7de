package domain

import "time"

type Order struct {
	ID         int32          `json:"id"`
	ProfileID  int32          `json:"profile_id"` // owner, set server-side
	PriceCents int32          `json:"price_cents"`
	City       string         `json:"city"`
	Street     string         `json:"street"`
	Zipcode    string         `json:"zipcode"`
	Items      []OrderProduct `json:"items,omitempty"`
	CreatedOn  time.Time      `json:"created_on"`
}

// OrderProduct is one line item of an order. UnitPriceCents is snapshotted
// from the product at placement time; later price changes never alter an
// existing order.
type OrderProduct struct {
	ID             int32  `json:"id"`
	OrderID        int32  `json:"order_id"`
	ProductID      int32  `json:"product_id"`
	ProductName    string `json:"product_name"` // denormalized for listings
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int32  `json:"unit_price_cents"`
}

// OrderItemInput is the client-supplied shape of a line item. Quantity must
// be at least 1; the unit price is never client-supplied.
type OrderItemInput struct {
	ProductID int32 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// ShippingAddress carries the order's destination fields.
type ShippingAddress struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}
