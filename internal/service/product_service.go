package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/storage"
)

type ProductService struct {
	menu   repository.MenuRepository
	images storage.ImageStore
}

func NewProductService(menu repository.MenuRepository, images storage.ImageStore) *ProductService {
	return &ProductService{menu: menu, images: images}
}

func (s *ProductService) List(ctx context.Context, search string) ([]*entity.MenuItem, error) {
	items, err := s.menu.List(ctx, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing menu items")
		return nil, err
	}
	return items, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

// Create stores the uploaded image first, then the row. A create without
// an image leaves the path empty.
func (s *ProductService) Create(ctx context.Context, item *entity.MenuItem, image *multipart.FileHeader) (*entity.MenuItem, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if item.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}

	if image != nil {
		path, err := s.images.Save(image)
		if err != nil {
			logger.Error().Err(err).Msg("Error storing product image")
			return nil, err
		}
		item.ImagePath = path
	}

	item.CreatedAt = time.Now()
	created, err := s.menu.Create(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating menu item")
		return nil, err
	}

	return created, nil
}

// Update preserves the previous image path when no new file is uploaded.
func (s *ProductService) Update(ctx context.Context, item *entity.MenuItem, image *multipart.FileHeader) (*entity.MenuItem, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if item.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}

	existing, err := s.menu.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	if image != nil {
		path, err := s.images.Save(image)
		if err != nil {
			logger.Error().Err(err).Msg("Error storing product image")
			return nil, err
		}
		item.ImagePath = path
	} else {
		item.ImagePath = existing.ImagePath
	}

	updated, err := s.menu.Update(ctx, item)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating menu item %d", item.ID)
		}
		return nil, err
	}

	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting menu item %d", id)
		return err
	}
	return nil
}
