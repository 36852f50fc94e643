package services

import (
	"context"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type CategoryService interface {
	GetByID(ctx context.Context, id uint) (*types.CategoryResponse, error)
	List(ctx context.Context) ([]types.CategoryResponse, error)
	Refresh(ctx context.Context) error
}

type categoryService struct {
	log   *logger.Logger
	cache *CategoryCache
}

func NewCategoryService(baseLog *logger.Logger, cache *CategoryCache) CategoryService {
	return &categoryService{
		log:   baseLog.With("service", "CategoryService"),
		cache: cache,
	}
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*types.CategoryResponse, error) {
	category, ok := s.cache.FindByID(id)
	if !ok {
		return nil, apierr.NotFound("Category", id)
	}
	return &types.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) List(ctx context.Context) ([]types.CategoryResponse, error) {
	categories := s.cache.All()
	out := make([]types.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, types.CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return out, nil
}

func (s *categoryService) Refresh(ctx context.Context) error {
	if err := s.cache.Refresh(ctx); err != nil {
		s.log.Error("refresh failed", "error", err)
		return err
	}
	return nil
}
