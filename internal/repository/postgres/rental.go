package postgres

import (
	"context"
	"database/sql"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// CreateWithReservation reserves the product and inserts the rental row in a
// single transaction. The conditional update is the availability guard: it
// only matches while display_rent is set and rented_until is still null, so
// two concurrent requests for the same product cannot both succeed.
func (r *rentalRepository) CreateWithReservation(ctx context.Context, rt *domain.RentProduct) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	reserveQuery := `UPDATE products SET rented_until = $1
	                 WHERE id = $2 AND display_rent = TRUE AND rented_until IS NULL`
	res, err := tx.ExecContext(ctx, reserveQuery, rt.DueOn, rt.ProductID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProductNotRentable
	}

	rt.RentedOn = time.Now()
	insertQuery := `INSERT INTO rent_products (profile_id, product_id, rented_on, due_on)
	                VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowContext(ctx, insertQuery, rt.ProfileID, rt.ProductID, rt.RentedOn, rt.DueOn).Scan(&rt.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.RentProduct, error) {
	rt := &domain.RentProduct{}
	query := `SELECT r.id, r.profile_id, r.product_id, p.name, r.rented_on, r.due_on, r.returned_on
	          FROM rent_products r JOIN products p ON r.product_id = p.id WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.ProfileID, &rt.ProductID, &rt.ProductName, &rt.RentedOn, &rt.DueOn, &rt.ReturnedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Return marks the rental returned and releases the product in one
// transaction. Returning an already-returned rental is a no-op conflict.
func (r *rentalRepository) Return(ctx context.Context, rentalID int32, returnedOn time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var productID int32
	updateQuery := `UPDATE rent_products SET returned_on = $1
	                WHERE id = $2 AND returned_on IS NULL RETURNING product_id`
	if err := tx.QueryRowContext(ctx, updateQuery, returnedOn, rentalID).Scan(&productID); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrConflict
		}
		return err
	}

	releaseQuery := `UPDATE products SET rented_until = NULL WHERE id = $1`
	if _, err := tx.ExecContext(ctx, releaseQuery, productID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) List(ctx context.Context, page, pageSize int32) ([]domain.RentProduct, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rent_products`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT r.id, r.profile_id, r.product_id, p.name, r.rented_on, r.due_on, r.returned_on
	          FROM rent_products r JOIN products p ON r.product_id = p.id
	          ORDER BY r.id ASC LIMIT $1 OFFSET $2`
	return r.queryRentals(ctx, query, []interface{}{pageSize, offset}, count)
}

func (r *rentalRepository) ListByProfile(ctx context.Context, profileID int32, page, pageSize int32) ([]domain.RentProduct, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM rent_products WHERE profile_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, profileID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT r.id, r.profile_id, r.product_id, p.name, r.rented_on, r.due_on, r.returned_on
	          FROM rent_products r JOIN products p ON r.product_id = p.id
	          WHERE r.profile_id = $1 ORDER BY r.id ASC LIMIT $2 OFFSET $3`
	return r.queryRentals(ctx, query, []interface{}{profileID, pageSize, offset}, count)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentProduct, error) {
	query := `SELECT r.id, r.profile_id, r.product_id, p.name, r.rented_on, r.due_on, r.returned_on
	          FROM rent_products r JOIN products p ON r.product_id = p.id
	          WHERE r.returned_on IS NULL AND r.due_on < $1 ORDER BY r.due_on ASC`
	rentals, _, err := r.queryRentalsNoCount(ctx, query, []interface{}{asOf})
	return rentals, err
}

func (r *rentalRepository) ReleaseExpiredReservations(ctx context.Context, asOf time.Time) (int64, error) {
	// Only release products whose rental row already came back; an overdue
	// but unreturned rental keeps its reservation.
	query := `UPDATE products SET rented_until = NULL
	          WHERE rented_until IS NOT NULL AND rented_until < $1
	          AND NOT EXISTS (
	              SELECT 1 FROM rent_products r
	              WHERE r.product_id = products.id AND r.returned_on IS NULL
	          )`
	res, err := r.db.ExecContext(ctx, query, asOf)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args []interface{}, count int32) ([]domain.RentProduct, int32, error) {
	rentals, _, err := r.queryRentalsNoCount(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) queryRentalsNoCount(ctx context.Context, query string, args []interface{}) ([]domain.RentProduct, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rentals := []domain.RentProduct{}
	for rows.Next() {
		var rt domain.RentProduct
		if err := rows.Scan(&rt.ID, &rt.ProfileID, &rt.ProductID, &rt.ProductName, &rt.RentedOn, &rt.DueOn, &rt.ReturnedOn); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, int32(len(rentals)), rows.Err()
}
