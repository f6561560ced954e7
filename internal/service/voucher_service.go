package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

type VoucherService struct {
	vouchers repository.VoucherRepository
}

func NewVoucherService(vouchers repository.VoucherRepository) *VoucherService {
	return &VoucherService{vouchers: vouchers}
}

func (s *VoucherService) List(ctx context.Context, search string) ([]*entity.Voucher, error) {
	vouchers, err := s.vouchers.List(ctx, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing vouchers")
		return nil, err
	}
	return vouchers, nil
}

func (s *VoucherService) GetByID(ctx context.Context, id int) (*entity.Voucher, error) {
	return s.vouchers.GetByID(ctx, id)
}

// Create does not check the code for uniqueness; duplicate codes are
// allowed.
func (s *VoucherService) Create(ctx context.Context, voucher *entity.Voucher) (*entity.Voucher, error) {
	if voucher.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}

	voucher.CreatedAt = time.Now()
	created, err := s.vouchers.Create(ctx, voucher)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating voucher")
		return nil, err
	}
	return created, nil
}

func (s *VoucherService) Update(ctx context.Context, voucher *entity.Voucher) (*entity.Voucher, error) {
	if voucher.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}

	updated, err := s.vouchers.Update(ctx, voucher)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating voucher %d", voucher.ID)
		}
		return nil, err
	}
	return updated, nil
}

func (s *VoucherService) Delete(ctx context.Context, id int) error {
	if err := s.vouchers.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting voucher %d", id)
		return err
	}
	return nil
}
