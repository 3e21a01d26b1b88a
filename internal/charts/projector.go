// Package charts projects snapshot data into the flat series the bar chart
// component renders. Projections are pure: the same snapshot always yields
// the same series, and missing or unparsable numbers come through as zero.
package charts

import (
	"strings"

	"github.com/canteenms/canteenms/internal/models"
)

// CostPricePoint is one bar group of the food cost/price comparison chart.
type CostPricePoint struct {
	Name     string
	Category string
	Cost     float64
	Price    float64
}

// CostPriceSeries projects food items into cost/price bar groups in snapshot
// order. Amounts the backend sent malformed are already zero, never NaN.
func CostPriceSeries(items []models.FoodItem) []CostPricePoint {
	out := make([]CostPricePoint, 0, len(items))
	for _, f := range items {
		out = append(out, CostPricePoint{
			Name:     f.FoodName,
			Category: f.CategoryName,
			Cost:     f.CostPerUnit.Float(),
			Price:    f.SellingPricePerUnit.Float(),
		})
	}
	return out
}

// DistributionPoint is one bar of the alert type distribution chart.
type DistributionPoint struct {
	Label string
	Count int
}

// AlertTypeDistribution counts alerts per type. Labels are the wire types
// with underscores spaced out and uppercased ("low_stock" -> "LOW STOCK"),
// ordered by first appearance in the alert list.
func AlertTypeDistribution(alerts []models.Alert) []DistributionPoint {
	index := make(map[string]int)
	var out []DistributionPoint
	for _, a := range alerts {
		label := strings.ToUpper(strings.ReplaceAll(a.AlertType, "_", " "))
		if i, ok := index[label]; ok {
			out[i].Count++
			continue
		}
		index[label] = len(out)
		out = append(out, DistributionPoint{Label: label, Count: 1})
	}
	return out
}

// WastageGroup is one bar group of the prepared/sold/wasted chart.
type WastageGroup struct {
	Name     string
	Prepared float64
	Sold     float64
	Wasted   float64
}

// WastageSeries projects the backend's per-item wastage rows into bar
// groups, preserving backend order.
func WastageSeries(points []models.WastagePoint) []WastageGroup {
	out := make([]WastageGroup, 0, len(points))
	for _, p := range points {
		out = append(out, WastageGroup{
			Name:     p.FoodName,
			Prepared: p.Prepared.Float(),
			Sold:     p.Sold.Float(),
			Wasted:   p.Wasted.Float(),
		})
	}
	return out
}

// Width returns the chart width for n bar groups: perGroup columns each,
// capped at max so wide datasets scroll instead of overflowing.
func Width(n, perGroup, max int) int {
	w := n * perGroup
	if w > max {
		return max
	}
	return w
}
