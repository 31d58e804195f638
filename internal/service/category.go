package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/repository"
)

type CategoryService struct {
	repo   CategoryRepository
	cache  CategoryCache
	logger *zap.Logger
}

// NewCategoryService creates a CategoryService. cache may be nil.
func NewCategoryService(repo CategoryRepository, cache CategoryCache, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns all categories, serving from the cache when possible.
// Cache failures are logged and never fail the call.
func (s *CategoryService) List(ctx context.Context) ([]entities.Category, error) {
	if s.cache != nil {
		categories, ok, err := s.cache.GetCategories(ctx)
		if err != nil {
			s.logger.Warn("failed to read categories from cache", zap.Error(err))
		}
		if ok {
			return categories, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if s.cache != nil && len(categories) > 0 {
		if err := s.cache.SetCategories(ctx, categories); err != nil {
			s.logger.Warn("failed to cache categories", zap.Error(err))
		}
	}

	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int) (*entities.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}
