package jobs

import (
	"context"
	"fmt"
	"time"

	"storefront-backend/internal/logger"
)

// ReleaseExpiredRentals clears lapsed reservations on products whose rental
// rows already came back, repairing any drift between the availability flag
// and the rental records.
func (jr *JobRunner) ReleaseExpiredRentals() {
	jr.runWithRecovery("ReleaseExpiredRentals", func() {
		ctx := context.Background()

		released, err := jr.store.RentalRepository.ReleaseExpiredReservations(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to release expired reservations", "error", err)
			return
		}
		logger.Info("Expired reservations released", "count", released)
	})
}

// SendOverdueReminders emails renters whose rentals are past due.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.RentalRepository.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}

		count := 0
		for _, rental := range overdue {
			// Look up the renter's email through the rental's profile.
			var email, username string
			query := `SELECT u.email, u.username FROM profiles p JOIN users u ON p.user_id = u.id WHERE p.id = $1`
			if err := jr.db.QueryRowContext(ctx, query, rental.ProfileID).Scan(&email, &username); err != nil {
				logger.Error("Failed to resolve renter for overdue reminder", "rental_id", rental.ID, "error", err)
				continue
			}

			subject := "Reminder: your rental is overdue"
			body := fmt.Sprintf(`Hello %s,

Your rental of "%s" (rental #%d) was due on %s and is now overdue.

Please return the item as soon as possible.`, username, rental.ProductName, rental.ID, rental.DueOn.Format("2006-01-02"))

			if err := jr.sender.Send(email, subject, body); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rental.ID,
					"recipient", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent overdue reminder", "rental_id", rental.ID, "recipient", email)
		}

		logger.Info("Overdue reminders sent", "count", count)
	})
}
