package domain

import "errors"

// Error taxonomy shared by services and mapped to HTTP statuses at the API
// layer. Services return these (possibly wrapped); handlers never invent
// their own status semantics.
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access to this resource is forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("invalid input")
	ErrConflict     = errors.New("resource conflict")

	// ErrProductNotRentable is returned when the availability guard on a
	// product fails: not in the rental program, or already held by a renter.
	ErrProductNotRentable = errors.New("product is not available for rent")
)
