package domain

import "time"

type Product struct {
	ID          int32      `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	PriceCents  int32      `json:"price_cents"`
	Category    string     `json:"category"`
	IsActive    bool       `json:"is_active"`
	DisplayRent bool       `json:"display_rent"`
	RentedUntil *time.Time `json:"rented_until,omitempty"` // nil = currently rentable
	CreatedOn   time.Time  `json:"created_on"`
}

// Rentable reports whether the product can be rented right now.
func (p *Product) Rentable() bool {
	return p.DisplayRent && p.RentedUntil == nil
}

// ProductFilter narrows a catalog listing. Zero values are no-ops; set
// filters compose with AND.
type ProductFilter struct {
	Category     string // exact category match
	Name         string // case-insensitive substring match
	RentableOnly bool   // display_rent AND rented_until IS NULL
}
