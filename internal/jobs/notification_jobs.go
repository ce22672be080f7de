package jobs

import (
	"context"
	"time"

	"storefront-backend/internal/logger"
)

// redeliveryGracePeriod keeps the cron runner from racing the in-process
// mail queue on rows that were enqueued moments ago.
const redeliveryGracePeriod = 2 * time.Minute

const redeliveryBatchSize = 100

// RedeliverNotifications re-sends outbox rows that are still PENDING or
// FAILED. Together with the outbox insert at order time this gives
// at-least-once delivery of order confirmations.
func (jr *JobRunner) RedeliverNotifications() {
	jr.runWithRecovery("RedeliverNotifications", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-redeliveryGracePeriod)

		notes, err := jr.store.NotificationRepository.ListUndelivered(ctx, cutoff, redeliveryBatchSize)
		if err != nil {
			logger.Error("Failed to query undelivered notifications", "error", err)
			return
		}

		sent := 0
		for _, note := range notes {
			if err := jr.sender.Send(note.Recipient, note.Subject, note.Body); err != nil {
				logger.Error("Failed to redeliver notification",
					"notification_id", note.ID,
					"recipient", note.Recipient,
					"attempts", note.Attempts,
					"error", err)
				if markErr := jr.store.NotificationRepository.MarkFailed(ctx, note.ID, err.Error()); markErr != nil {
					logger.Error("Failed to record delivery failure", "notification_id", note.ID, "error", markErr)
				}
				continue
			}

			if err := jr.store.NotificationRepository.MarkSent(ctx, note.ID, time.Now()); err != nil {
				logger.Error("Failed to mark notification sent", "notification_id", note.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Notification redelivery finished", "candidates", len(notes), "sent", sent)
	})
}
