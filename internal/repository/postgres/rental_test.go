package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/domain"
)

func TestRentalRepository_CreateWithReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := &domain.RentProduct{
			ProfileID: 10,
			ProductID: 3,
			DueOn:     time.Now().AddDate(0, 0, 14),
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products SET rented_until").
			WithArgs(rental.DueOn, rental.ProductID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rent_products").
			WithArgs(rental.ProfileID, rental.ProductID, sqlmock.AnyArg(), rental.DueOn).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectCommit()

		err := repo.CreateWithReservation(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), rental.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyReserved", func(t *testing.T) {
		rental := &domain.RentProduct{
			ProfileID: 10,
			ProductID: 3,
			DueOn:     time.Now().AddDate(0, 0, 14),
		}

		// The guard matches zero rows when another renter holds the product,
		// so no rental row is ever inserted.
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products SET rented_until").
			WithArgs(rental.DueOn, rental.ProductID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateWithReservation(ctx, rental)
		assert.ErrorIs(t, err, domain.ErrProductNotRentable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_Return(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()
	returnedOn := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE rent_products SET returned_on").
			WithArgs(returnedOn, int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(3))
		mock.ExpectExec("UPDATE products SET rented_until = NULL").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Return(ctx, 5, returnedOn)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyReturned", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE rent_products SET returned_on").
			WithArgs(returnedOn, int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id"}))
		mock.ExpectRollback()

		err := repo.Return(ctx, 5, returnedOn)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_ListByProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM rent_products r JOIN products p").
		WithArgs(int32(10), int32(30), int32(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "product_id", "name", "rented_on", "due_on", "returned_on"}).
			AddRow(5, 10, 3, "Power Drill", time.Now(), time.Now().AddDate(0, 0, 14), nil))

	rentals, count, err := repo.ListByProfile(ctx, 10, 1, 30)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), count)
	assert.Len(t, rentals, 1)
	assert.Equal(t, "Power Drill", rentals[0].ProductName)
	assert.True(t, rentals[0].Active())
}
