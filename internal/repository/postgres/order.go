package postgres

import (
	"context"
	"database/sql"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems persists the order and its line items in one transaction.
func (r *orderRepository) CreateWithItems(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	o.CreatedOn = time.Now()
	orderQuery := `INSERT INTO orders (profile_id, price_cents, city, street, zipcode, created_on)
	               VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := tx.QueryRowContext(ctx, orderQuery, o.ProfileID, o.PriceCents, o.City, o.Street, o.Zipcode, o.CreatedOn).Scan(&o.ID); err != nil {
		return err
	}

	itemQuery := `INSERT INTO order_products (order_id, product_id, quantity, unit_price_cents)
	              VALUES ($1, $2, $3, $4) RETURNING id`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if err := tx.QueryRowContext(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.UnitPriceCents).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT id, profile_id, price_cents, city, street, zipcode, created_on FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.ProfileID, &o.PriceCents, &o.City, &o.Street, &o.Zipcode, &o.CreatedOn)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *orderRepository) ListByProfile(ctx context.Context, profileID int32, page, pageSize int32) ([]domain.Order, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM orders WHERE profile_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, profileID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, profile_id, price_cents, city, street, zipcode, created_on
	          FROM orders WHERE profile_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, profileID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.ProfileID, &o.PriceCents, &o.City, &o.Street, &o.Zipcode, &o.CreatedOn); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, count, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int32) ([]domain.OrderProduct, error) {
	query := `SELECT op.id, op.order_id, op.product_id, p.name, op.quantity, op.unit_price_cents
	          FROM order_products op JOIN products p ON op.product_id = p.id
	          WHERE op.order_id = $1 ORDER BY op.id ASC`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderProduct{}
	for rows.Next() {
		var item domain.OrderProduct
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
