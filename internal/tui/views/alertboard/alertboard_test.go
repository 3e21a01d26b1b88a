package alertboard

import (
	"strings"
	"testing"

	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/store"
)

func amountPtr(v float64) *models.Amount {
	a := models.Amount(v)
	return &a
}

func seededStore() *store.Store {
	s := store.New()
	s.Alerts = []models.Alert{
		{
			AlertID:           1,
			AlertType:         "high_wastage",
			Severity:          models.SeverityCritical,
			FoodName:          "Veg Thali",
			AlertMessage:      "Wastage above threshold",
			AlertDate:         "2026-08-27",
			WastagePercentage: amountPtr(28),
		},
		{
			AlertID:      2,
			AlertType:    "low_stock",
			Severity:     models.SeverityMedium,
			FoodName:     "Masala Tea",
			AlertMessage: "Stock below minimum",
			AlertDate:    "2026-08-27",
		},
		{
			AlertID:      3,
			AlertType:    "high_wastage",
			Severity:     models.SeverityLow,
			FoodName:     "Samosa",
			AlertMessage: "Wastage trending up",
			AlertDate:    "2026-08-26",
		},
	}
	return s
}

func TestView_RenderLoading(t *testing.T) {
	view := NewView()
	output := view.Render(false, nil)

	if !strings.Contains(output, "ACTIVE ALERTS") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Loading") {
		t.Error("expected loading state")
	}
}

func TestView_Refresh_PreservesBackendOrder(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "")

	alert, ok := view.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if alert.AlertID != 1 {
		t.Errorf("first selected alert = %d, want backend-first", alert.AlertID)
	}

	view.MoveDown()
	alert, _ = view.Selected()
	if alert.AlertID != 2 {
		t.Errorf("selection after MoveDown = %d", alert.AlertID)
	}
}

func TestView_Refresh_AppendsWastagePercentage(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "")

	output := view.Render(true, nil)
	if !strings.Contains(output, "(28%)") {
		t.Error("expected wastage percentage suffix on the message")
	}
}

func TestView_RenderResolvingMarker(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "")

	output := view.Render(true, func(alertID int) bool { return alertID == 1 })
	if !strings.Contains(output, "Resolving alert 1") {
		t.Error("expected in-flight resolve marker for the selected alert")
	}
}

func TestView_ToggleChartShowsDistribution(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "")
	view.ToggleChart()

	output := view.Render(true, nil)
	if !strings.Contains(output, "Alerts by type") {
		t.Error("expected distribution chart mode")
	}
	if !strings.Contains(output, "HIGH WASTAGE") {
		t.Error("expected humanized alert type label")
	}
}

func TestView_EmptyState(t *testing.T) {
	view := NewView()
	view.Refresh(store.New(), "")

	output := view.Render(true, nil)
	if !strings.Contains(output, "No active alerts") {
		t.Error("expected empty state message")
	}
}
