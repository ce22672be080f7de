package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront-backend/internal/domain"
)

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		commentRepo := new(MockCommentRepo)
		productRepo := new(MockProductRepo)
		svc := NewCommentService(commentRepo, productRepo)

		productRepo.On("GetByID", ctx, int32(3)).Return(&domain.Product{ID: 3}, nil)
		commentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Comment).ID = 8
			}).Return(nil)

		comment, err := svc.CreateComment(ctx, 1, 3, "Solid value")
		assert.NoError(t, err)
		assert.Equal(t, int32(8), comment.ID)
		// The owner is the authenticated user, never client input.
		assert.Equal(t, int32(1), comment.UserID)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		commentRepo := new(MockCommentRepo)
		productRepo := new(MockProductRepo)
		svc := NewCommentService(commentRepo, productRepo)

		_, err := svc.CreateComment(ctx, 1, 3, "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)
		commentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		commentRepo := new(MockCommentRepo)
		productRepo := new(MockProductRepo)
		svc := NewCommentService(commentRepo, productRepo)

		productRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateComment(ctx, 1, 99, "hello")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	ctx := context.Background()

	commentRepo := new(MockCommentRepo)
	productRepo := new(MockProductRepo)
	svc := NewCommentService(commentRepo, productRepo)

	filter := domain.CommentFilter{ProductID: 3, OwnerUsername: "alice"}
	commentRepo.On("List", ctx, filter, int32(1), int32(30)).
		Return([]domain.Comment{{ID: 2, ProductID: 3, Username: "alice"}}, int32(1), nil)

	comments, count, err := svc.ListComments(ctx, filter, 1, 30)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), count)
	assert.Len(t, comments, 1)
}
