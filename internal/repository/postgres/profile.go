package postgres

import (
	"context"
	"database/sql"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, city, street, zipcode, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	p.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, p.UserID, p.City, p.Street, p.Zipcode, p.CreatedOn).Scan(&p.ID)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT p.id, p.user_id, u.username, u.email, COALESCE(p.city, ''), COALESCE(p.street, ''), COALESCE(p.zipcode, ''), p.created_on
	          FROM profiles p JOIN users u ON p.user_id = u.id WHERE p.user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Username, &p.Email, &p.City, &p.Street, &p.Zipcode, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}
