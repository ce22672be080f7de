package repository

import (
	"context"
	"time"

	"storefront-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByUserID resolves the caller's own profile. Returns sql.ErrNoRows
	// when no profile exists for the user.
	GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// List returns active products matching the filter, ordered by id
	// ascending.
	List(ctx context.Context, filter domain.ProductFilter, page, pageSize int32) ([]domain.Product, int32, error)
	// ListRentReady returns rentable products regardless of is_active.
	ListRentReady(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)
}

type OrderRepository interface {
	// CreateWithItems persists the order and its line items in a single
	// transaction.
	CreateWithItems(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	ListByProfile(ctx context.Context, profileID int32, page, pageSize int32) ([]domain.Order, int32, error)
}

type RentalRepository interface {
	// CreateWithReservation atomically reserves the product (conditional
	// update of rented_until guarded by its null-ness) and inserts the
	// rental row. Returns domain.ErrProductNotRentable when the guard
	// fails.
	CreateWithReservation(ctx context.Context, rental *domain.RentProduct) error
	GetByID(ctx context.Context, id int32) (*domain.RentProduct, error)
	// Return marks the rental returned and clears the product's
	// rented_until in one transaction.
	Return(ctx context.Context, rentalID int32, returnedOn time.Time) error
	List(ctx context.Context, page, pageSize int32) ([]domain.RentProduct, int32, error)
	ListByProfile(ctx context.Context, profileID int32, page, pageSize int32) ([]domain.RentProduct, int32, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentProduct, error)
	// ReleaseExpiredReservations clears rented_until on products whose
	// reservation has lapsed but whose rental row is already returned.
	ReleaseExpiredReservations(ctx context.Context, asOf time.Time) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int32) (*domain.Comment, error)
	// List returns comments matching the filter, newest first.
	List(ctx context.Context, filter domain.CommentFilter, page, pageSize int32) ([]domain.Comment, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	MarkSent(ctx context.Context, id string, sentOn time.Time) error
	MarkFailed(ctx context.Context, id string, lastError string) error
	// ListUndelivered returns PENDING and FAILED rows created before the
	// cutoff, oldest first.
	ListUndelivered(ctx context.Context, cutoff time.Time, limit int32) ([]domain.Notification, error)
}
