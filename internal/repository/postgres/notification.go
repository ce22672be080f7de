package postgres

import (
	"context"
	"database/sql"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, recipient, subject, body, status, attempts, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	n.CreatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, n.ID, n.Recipient, n.Subject, n.Body, n.Status, n.Attempts, n.CreatedOn)
	return err
}

func (r *notificationRepository) MarkSent(ctx context.Context, id string, sentOn time.Time) error {
	query := `UPDATE notifications SET status = $1, sent_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, domain.NotificationStatusSent, sentOn, id)
	return err
}

func (r *notificationRepository) MarkFailed(ctx context.Context, id string, lastError string) error {
	query := `UPDATE notifications SET status = $1, attempts = attempts + 1, last_error = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, domain.NotificationStatusFailed, lastError, id)
	return err
}

func (r *notificationRepository) ListUndelivered(ctx context.Context, cutoff time.Time, limit int32) ([]domain.Notification, error) {
	query := `SELECT id, recipient, subject, body, status, attempts, COALESCE(last_error, ''), created_on, sent_on
	          FROM notifications
	          WHERE status IN ($1, $2) AND created_on < $3
	          ORDER BY created_on ASC LIMIT $4`
	rows, err := r.db.QueryContext(ctx, query, domain.NotificationStatusPending, domain.NotificationStatusFailed, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Recipient, &n.Subject, &n.Body, &n.Status, &n.Attempts, &n.LastError, &n.CreatedOn, &n.SentOn); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
