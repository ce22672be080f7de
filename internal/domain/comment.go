package domain

import "time"

type Comment struct {
	ID        int32     `json:"id"`
	ProductID int32     `json:"product_id"`
	UserID    int32     `json:"user_id"` // owner, set server-side
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedOn time.Time `json:"created_on"`
}

// CommentFilter narrows a comment listing. Both filters compose with AND;
// zero values are no-ops. Results are always newest first.
type CommentFilter struct {
	ProductID     int32
	OwnerUsername string
}
