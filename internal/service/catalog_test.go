package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/domain"
)

func TestCatalogService_ListCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("FiltersComposed", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewCatalogService(productRepo)

		filter := domain.ProductFilter{Category: "tools", Name: "drill", RentableOnly: true}
		productRepo.On("List", ctx, filter, int32(1), int32(30)).
			Return([]domain.Product{{ID: 2, Name: "Power Drill", Category: "tools"}}, int32(1), nil)

		products, count, err := svc.ListCatalog(ctx, filter, 1, 30)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), count)
		assert.Len(t, products, 1)
	})

	t.Run("EmptyResultIsNotAnError", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewCatalogService(productRepo)

		productRepo.On("List", ctx, domain.ProductFilter{}, int32(1), int32(30)).
			Return([]domain.Product{}, int32(0), nil)

		products, count, err := svc.ListCatalog(ctx, domain.ProductFilter{}, 1, 30)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
		assert.Empty(t, products)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewCatalogService(productRepo)

		productRepo.On("GetBySlug", ctx, "power-drill").
			Return(&domain.Product{ID: 2, Slug: "power-drill"}, nil)

		p, err := svc.GetProduct(ctx, "power-drill")
		assert.NoError(t, err)
		assert.Equal(t, "power-drill", p.Slug)
	})

	t.Run("NotFound", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewCatalogService(productRepo)

		productRepo.On("GetBySlug", ctx, "gone").Return(nil, sql.ErrNoRows)

		_, err := svc.GetProduct(ctx, "gone")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
