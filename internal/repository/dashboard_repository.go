package repository

import (
	"context"
	"database/sql"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

// DashboardRepository runs the landing-page aggregates. Every call hits the
// tables directly; the numbers are always current.
type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

func (r *DashboardRepository) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	summary := &entity.DashboardSummary{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &summary.TotalUsers},
		{`SELECT COUNT(*) FROM orders`, &summary.TotalOrders},
		{`SELECT COUNT(*) FROM menu_items`, &summary.TotalProducts},
		{`SELECT COUNT(*) FROM categories`, &summary.TotalCategories},
		{`SELECT COUNT(*) FROM vouchers`, &summary.TotalVouchers},
		{`SELECT COUNT(*) FROM combos`, &summary.TotalCombos},
		{`SELECT COUNT(DISTINCT name) FROM menu_item_sizes`, &summary.TotalSizes},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	// Revenue counts only completed orders and is zero when none exist.
	revenueQuery := `
		SELECT COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE s.name = ?`
	err := r.db.QueryRowContext(ctx, revenueQuery, entity.StatusCompleted).Scan(&summary.TotalRevenue)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
