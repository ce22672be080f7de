package service

import (
	"context"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// ListCatalog returns active products narrowed by the filter, id ascending.
// Absent filter fields are no-ops; an empty result is not an error.
func (s *catalogService) ListCatalog(ctx context.Context, filter domain.ProductFilter, page, pageSize int32) ([]domain.Product, int32, error) {
	return s.productRepo.List(ctx, filter, page, pageSize)
}

// ListRentReady is the permission-free rental listing: rentable products
// only, without the is_active requirement.
func (s *catalogService) ListRentReady(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	return s.productRepo.ListRentReady(ctx, page, pageSize)
}

func (s *catalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}
