package domain

import "time"

// RentProduct records who currently holds a rented product. ReturnedOn stays
// nil while the item is out; returning it clears the product's rented_until
// in the same transaction.
type RentProduct struct {
	ID          int32      `json:"id"`
	ProfileID   int32      `json:"profile_id"` // renter, set server-side
	ProductID   int32      `json:"product_id"`
	ProductName string     `json:"product_name"`
	RentedOn    time.Time  `json:"rented_on"`
	DueOn       time.Time  `json:"due_on"`
	ReturnedOn  *time.Time `json:"returned_on,omitempty"`
}

// Active reports whether the rental is still outstanding.
func (r *RentProduct) Active() bool {
	return r.ReturnedOn == nil
}
