package domain

import "time"

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// Notification is an outbox row for an outbound email. It is written once
// the record that triggered it has committed, and delivered by the mail
// queue; the cron runner re-sends anything still PENDING or FAILED, giving
// at-least-once delivery.
type Notification struct {
	ID        string             `json:"id"` // uuid
	Recipient string             `json:"recipient"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
	Status    NotificationStatus `json:"status"`
	Attempts  int32              `json:"attempts"`
	LastError string             `json:"last_error,omitempty"`
	CreatedOn time.Time          `json:"created_on"`
	SentOn    *time.Time         `json:"sent_on,omitempty"`
}
