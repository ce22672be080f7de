package service

import (
	"context"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	profileRepo repository.ProfileRepository
	periodDays  int
}

func NewRentalService(rentalRepo repository.RentalRepository, profileRepo repository.ProfileRepository, periodDays int) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		profileRepo: profileRepo,
		periodDays:  periodDays,
	}
}

// CreateRental rents a product to the caller. The availability check and the
// reservation are one atomic conditional update, so a product can never be
// double-booked by concurrent requests.
func (s *rentalService) CreateRental(ctx context.Context, userID, productID int32) (*domain.RentProduct, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}

	rental := &domain.RentProduct{
		ProfileID: profile.ID,
		ProductID: productID,
		DueOn:     time.Now().AddDate(0, 0, s.periodDays),
	}
	if err := s.rentalRepo.CreateWithReservation(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "product_id", productID, "profile_id", profile.ID)
	return rental, nil
}

// ReturnRental marks the caller's rental returned and releases the product.
func (s *rentalService) ReturnRental(ctx context.Context, userID, rentalID int32) (*domain.RentProduct, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, notFound(err)
	}
	if rental.ProfileID != profile.ID {
		return nil, domain.ErrForbidden
	}

	returnedOn := time.Now()
	if err := s.rentalRepo.Return(ctx, rentalID, returnedOn); err != nil {
		return nil, err
	}
	rental.ReturnedOn = &returnedOn

	logger.Info("Rental returned", "rental_id", rental.ID, "product_id", rental.ProductID)
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, page, pageSize int32) ([]domain.RentProduct, int32, error) {
	return s.rentalRepo.List(ctx, page, pageSize)
}

func (s *rentalService) ListMyRentals(ctx context.Context, userID int32, page, pageSize int32) ([]domain.RentProduct, int32, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, notFound(err)
	}
	return s.rentalRepo.ListByProfile(ctx, profile.ID, page, pageSize)
}
