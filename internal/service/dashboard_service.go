package service

import (
	"context"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

type DashboardService struct {
	dashboard repository.DashboardRepository
}

func NewDashboardService(dashboard repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

func (s *DashboardService) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing dashboard summary")
		return nil, err
	}
	return summary, nil
}
