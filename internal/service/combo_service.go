package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

type ComboService struct {
	combos repository.ComboRepository
}

func NewComboService(combos repository.ComboRepository) *ComboService {
	return &ComboService{combos: combos}
}

func (s *ComboService) List(ctx context.Context, search string) ([]*entity.Combo, error) {
	combos, err := s.combos.List(ctx, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing combos")
		return nil, err
	}
	return combos, nil
}

func (s *ComboService) GetByID(ctx context.Context, id int) (*entity.Combo, error) {
	return s.combos.GetByID(ctx, id)
}

func (s *ComboService) Create(ctx context.Context, combo *entity.Combo) (*entity.Combo, error) {
	if combo.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	combo.CreatedAt = time.Now()
	created, err := s.combos.Create(ctx, combo)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating combo")
		return nil, err
	}
	return created, nil
}

func (s *ComboService) Update(ctx context.Context, combo *entity.Combo) (*entity.Combo, error) {
	if combo.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	updated, err := s.combos.Update(ctx, combo)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating combo %d", combo.ID)
		}
		return nil, err
	}
	return updated, nil
}

func (s *ComboService) Delete(ctx context.Context, id int) error {
	if err := s.combos.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting combo %d", id)
		return err
	}
	return nil
}
