package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

const productColumns = `id, slug, name, price_cents, category, is_active, display_rent, rented_until, created_on`

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Slug, &p.Name, &p.PriceCents, &p.Category, &p.IsActive, &p.DisplayRent, &p.RentedUntil, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1 AND is_active = TRUE`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&p.ID, &p.Slug, &p.Name, &p.PriceCents, &p.Category, &p.IsActive, &p.DisplayRent, &p.RentedUntil, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter, page, pageSize int32) ([]domain.Product, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`

	args := []interface{}{}
	argIdx := 1
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Name+"%")
		argIdx++
	}
	if filter.RentableOnly {
		query += " AND display_rent = TRUE AND rented_until IS NULL"
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	return r.queryProducts(ctx, query, args, count)
}

func (r *productRepository) ListRentReady(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + productColumns + ` FROM products WHERE display_rent = TRUE AND rented_until IS NULL`

	var count int32
	countQuery := `SELECT count(*) FROM products WHERE display_rent = TRUE AND rented_until IS NULL`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY id ASC LIMIT $1 OFFSET $2"
	return r.queryProducts(ctx, query, []interface{}{pageSize, offset}, count)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args []interface{}, count int32) ([]domain.Product, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.PriceCents, &p.Category, &p.IsActive, &p.DisplayRent, &p.RentedUntil, &p.CreatedOn); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return products, count, nil
}
