package models

// DashboardSummary is the GET /api/dashboard response. Unlike the
// entity endpoints the analytics endpoints use snake_case keys.
type DashboardSummary struct {
	TotalProduced Amount `json:"total_produced"`
	TotalSold     Amount `json:"total_sold"`
	TotalWasted   Amount `json:"total_wasted"`
	TotalRevenue  Amount `json:"total_revenue"`
	ActiveAlerts  int    `json:"active_alerts"`
}

// ProductionSuggestion is one row of GET /api/production/suggestions:
// a recommended production quantity derived from recent sales history.
type ProductionSuggestion struct {
	FoodID            int    `json:"FoodID"`
	FoodName          string `json:"FoodName"`
	AvgDailySales     Amount `json:"AvgDailySales"`
	SuggestedQuantity Amount `json:"SuggestedQuantity"`
	Confidence        string `json:"Confidence,omitempty"`
}

// WastageSummary holds the day-level totals of a wastage analytics response.
type WastageSummary struct {
	TotalPrepared     Amount `json:"total_prepared"`
	TotalSold         Amount `json:"total_sold"`
	TotalWasted       Amount `json:"total_wasted"`
	WastagePercentage Amount `json:"wastage_percentage"`
}

// WastagePoint is one per-item bar of the wastage chart data.
type WastagePoint struct {
	FoodName string `json:"FoodName"`
	Prepared Amount `json:"Prepared"`
	Sold     Amount `json:"Sold"`
	Wasted   Amount `json:"Wasted"`
}

// WastageAnalytics is the GET /api/wastage/analytics response for one date.
type WastageAnalytics struct {
	Date      string         `json:"date"`
	Summary   WastageSummary `json:"summary"`
	Alerts    []Alert        `json:"alerts"`
	ChartData []WastagePoint `json:"chart_data"`
}
