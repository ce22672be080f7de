package postgres

import (
	"database/sql"

	"storefront-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProfileRepository
	repository.ProductRepository
	repository.OrderRepository
	repository.RentalRepository
	repository.CommentRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		ProductRepository:      NewProductRepository(db),
		OrderRepository:        NewOrderRepository(db),
		RentalRepository:       NewRentalRepository(db),
		CommentRepository:      NewCommentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
