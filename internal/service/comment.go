package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
}

func NewCommentService(commentRepo repository.CommentRepository, productRepo repository.ProductRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		productRepo: productRepo,
	}
}

// CreateComment posts a comment as the caller. The owner is always the
// authenticated user, never client-supplied.
func (s *commentService) CreateComment(ctx context.Context, userID, productID int32, body string) (*domain.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body is empty", domain.ErrValidation)
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, notFound(err))
	}

	comment := &domain.Comment{
		ProductID: productID,
		UserID:    userID,
		Body:      body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments is public: anyone may read, filtered by product and/or owner,
// newest first.
func (s *commentService) ListComments(ctx context.Context, filter domain.CommentFilter, page, pageSize int32) ([]domain.Comment, int32, error) {
	return s.commentRepo.List(ctx, filter, page, pageSize)
}

func (s *commentService) GetComment(ctx context.Context, id int32) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}
