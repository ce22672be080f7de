package service

import (
	"context"

	"storefront-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error) // access token
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
}

type CatalogService interface {
	ListCatalog(ctx context.Context, filter domain.ProductFilter, page, pageSize int32) ([]domain.Product, int32, error)
	ListRentReady(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
}

type ProfileService interface {
	GetOwnProfile(ctx context.Context, userID int32) (*domain.Profile, error)
	// GetOwnProfileByUsername resolves the caller's profile when addressed
	// by username. A username that is not the caller's own yields
	// ErrForbidden regardless of whether it exists.
	GetOwnProfileByUsername(ctx context.Context, userID int32, username string) (*domain.Profile, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID int32, shipping domain.ShippingAddress, items []domain.OrderItemInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error)
	GetOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, userID, productID int32) (*domain.RentProduct, error)
	ReturnRental(ctx context.Context, userID, rentalID int32) (*domain.RentProduct, error)
	ListRentals(ctx context.Context, page, pageSize int32) ([]domain.RentProduct, int32, error)
	ListMyRentals(ctx context.Context, userID int32, page, pageSize int32) ([]domain.RentProduct, int32, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, userID, productID int32, body string) (*domain.Comment, error)
	ListComments(ctx context.Context, filter domain.CommentFilter, page, pageSize int32) ([]domain.Comment, int32, error)
	GetComment(ctx context.Context, id int32) (*domain.Comment, error)
}

// NotificationDispatcher hands a committed outbox row to the async mail
// queue. Satisfied by *mailer.Queue.
type NotificationDispatcher interface {
	Enqueue(note domain.Notification)
}
