package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context, search string) ([]*entity.Category, error) {
	categories, err := s.categories.List(ctx, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing categories")
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*entity.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating category")
		return nil, err
	}
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating category %d", category.ID)
		}
		return nil, err
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting category %d", id)
		return err
	}
	return nil
}
