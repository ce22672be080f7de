package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (product_id, user_id, body, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	c.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, c.ProductID, c.UserID, c.Body, c.CreatedOn).Scan(&c.ID)
}

func (r *commentRepository) GetByID(ctx context.Context, id int32) (*domain.Comment, error) {
	c := &domain.Comment{}
	query := `SELECT c.id, c.product_id, c.user_id, u.username, c.body, c.created_on
	          FROM comments c JOIN users u ON c.user_id = u.id WHERE c.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.ProductID, &c.UserID, &c.Username, &c.Body, &c.CreatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) List(ctx context.Context, filter domain.CommentFilter, page, pageSize int32) ([]domain.Comment, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT c.id, c.product_id, c.user_id, u.username, c.body, c.created_on
	          FROM comments c JOIN users u ON c.user_id = u.id WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.ProductID != 0 {
		query += fmt.Sprintf(" AND c.product_id = $%d", argIdx)
		args = append(args, filter.ProductID)
		argIdx++
	}
	if filter.OwnerUsername != "" {
		query += fmt.Sprintf(" AND u.username = $%d", argIdx)
		args = append(args, filter.OwnerUsername)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY c.id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ProductID, &c.UserID, &c.Username, &c.Body, &c.CreatedOn); err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, count, rows.Err()
}
