package entity

// DashboardSummary is recomputed from the full table contents on every
// request; nothing here is cached.
type DashboardSummary struct {
	TotalUsers      int     `json:"total_users"`
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
	TotalVouchers   int     `json:"total_vouchers"`
	TotalCombos     int     `json:"total_combos"`
	TotalSizes      int     `json:"total_sizes"`
}
