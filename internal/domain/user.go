package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}

// Profile is the single owner record linked one-to-one with a User. All
// owner-scoped resources (orders, rentals) hang off the profile, never the
// raw user id. The user link is immutable after creation.
type Profile struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Username  string    `json:"username"` // denormalized from the linked user
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	Zipcode   string    `json:"zipcode"`
	CreatedOn time.Time `json:"created_on"`
}
