package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	noteRepo    repository.NotificationRepository
	dispatcher  NotificationDispatcher
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	profileRepo repository.ProfileRepository,
	noteRepo repository.NotificationRepository,
	dispatcher NotificationDispatcher,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		profileRepo: profileRepo,
		noteRepo:    noteRepo,
		dispatcher:  dispatcher,
	}
}

// CreateOrder places an order for the caller. The owner profile is resolved
// once and threaded through; the order and its line items commit in one
// transaction, then an outbox row is written and the email is dispatched
// asynchronously. Delivery failure never fails the order.
func (s *orderService) CreateOrder(ctx context.Context, userID int32, shipping domain.ShippingAddress, items []domain.OrderItemInput) (*domain.Order, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order has no line items", domain.ErrValidation)
	}

	order := &domain.Order{
		ProfileID: profile.ID,
		City:      shipping.City,
		Street:    shipping.Street,
		Zipcode:   shipping.Zipcode,
	}
	for _, in := range items {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
		product, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", in.ProductID, notFound(err))
		}
		order.Items = append(order.Items, domain.OrderProduct{
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       in.Quantity,
			UnitPriceCents: product.PriceCents, // price snapshot
		})
		order.PriceCents += product.PriceCents * in.Quantity
	}

	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	// The notification binds strictly to the order created in this call.
	// The outbox row is written after the order commits so a delivery
	// failure can never roll the order back; the cron runner redelivers
	// whatever the mail queue does not get out.
	note := domain.Notification{
		ID:        uuid.NewString(),
		Recipient: profile.Email,
		Subject:   fmt.Sprintf("Your order #%d has been placed!", order.ID),
		Body:      composeOrderConfirmation(profile, order),
		Status:    domain.NotificationStatusPending,
	}
	if err := s.noteRepo.Create(ctx, &note); err != nil {
		logger.Error("Failed to record order notification", "order_id", order.ID, "error", err)
	}
	s.dispatcher.Enqueue(note)

	logger.Info("Order created", "order_id", order.ID, "profile_id", profile.ID, "price_cents", order.PriceCents)
	return order, nil
}

// ListOrders returns only the caller's orders, id ascending. Listing has no
// side effects.
func (s *orderService) ListOrders(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, notFound(err)
	}
	return s.orderRepo.ListByProfile(ctx, profile.ID, page, pageSize)
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err)
	}
	if order.ProfileID != profile.ID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func composeOrderConfirmation(profile *domain.Profile, order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, your order for %s has been placed successfully.\n\n", profile.Username, formatCents(order.PriceCents))
	fmt.Fprintf(&b, "Shipping address: %s, %s, %s\n\nPurchased:\n", order.City, order.Street, order.Zipcode)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%s %s each, quantity: %d\n", item.ProductName, formatCents(item.UnitPriceCents), item.Quantity)
	}
	return b.String()
}

func formatCents(cents int32) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
