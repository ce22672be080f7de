package mailer

import (
	"context"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"
)

type job struct {
	note    domain.Notification
	retries int
}

// Queue sends notifications asynchronously with retries. Each notification
// already exists as an outbox row; the queue only flips its status, so a
// crash between enqueue and send leaves a PENDING row for the cron runner to
// redeliver.
type Queue struct {
	sender     Sender
	noteRepo   repository.NotificationRepository
	jobs       chan job
	maxRetries int
	workers    int
}

func NewQueue(sender Sender, noteRepo repository.NotificationRepository, workers, queueSize, maxRetries int) *Queue {
	return &Queue{
		sender:     sender,
		noteRepo:   noteRepo,
		jobs:       make(chan job, queueSize),
		maxRetries: maxRetries,
		workers:    workers,
	}
}

// Start begins processing notifications asynchronously
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		go q.worker(ctx, i)
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	logger.Debug("Mail worker started", "worker", id)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Mail worker stopping", "worker", id)
			return
		case j := <-q.jobs:
			q.process(ctx, j)
		}
	}
}

func (q *Queue) process(ctx context.Context, j job) {
	err := q.sender.Send(j.note.Recipient, j.note.Subject, j.note.Body)
	if err == nil {
		if markErr := q.noteRepo.MarkSent(ctx, j.note.ID, time.Now()); markErr != nil {
			logger.Error("Failed to mark notification sent", "notification_id", j.note.ID, "error", markErr)
		}
		logger.Debug("Notification sent", "notification_id", j.note.ID, "to", j.note.Recipient)
		return
	}

	logger.Warn("Failed to send notification", "notification_id", j.note.ID, "error", err)
	if j.retries < q.maxRetries {
		j.retries++
		backoff := time.Duration(j.retries*j.retries) * time.Second
		time.AfterFunc(backoff, func() {
			select {
			case q.jobs <- j:
			default:
				q.markFailed(ctx, j.note, err)
			}
		})
		return
	}

	q.markFailed(ctx, j.note, err)
}

func (q *Queue) markFailed(ctx context.Context, note domain.Notification, cause error) {
	// FAILED rows are picked up again by the cron redelivery job.
	if err := q.noteRepo.MarkFailed(ctx, note.ID, cause.Error()); err != nil {
		logger.Error("Failed to mark notification failed", "notification_id", note.ID, "error", err)
	}
}

// Enqueue adds a notification to the queue without blocking. A full queue is
// not an error for the caller: the outbox row stays PENDING and the cron
// runner delivers it later.
func (q *Queue) Enqueue(note domain.Notification) {
	select {
	case q.jobs <- job{note: note}:
	default:
		logger.Warn("Mail queue full, leaving notification for redelivery", "notification_id", note.ID)
	}
}
