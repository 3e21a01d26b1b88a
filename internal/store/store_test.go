package store

import (
	"testing"

	"github.com/canteenms/canteenms/internal/models"
)

func TestAlertByID(t *testing.T) {
	s := New()
	s.Alerts = []models.Alert{
		{AlertID: 1, AlertType: "low_stock"},
		{AlertID: 2, AlertType: "high_wastage"},
	}

	a, ok := s.AlertByID(2)
	if !ok || a.AlertType != "high_wastage" {
		t.Errorf("AlertByID(2) = %+v, %v", a, ok)
	}
	if _, ok := s.AlertByID(99); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestFoodByID(t *testing.T) {
	s := New()
	s.FoodItems = []models.FoodItem{
		{FoodID: 7, FoodName: "Dal"},
		{FoodID: 9, FoodName: "Rice"},
	}

	f, ok := s.FoodByID(9)
	if !ok || f.FoodName != "Rice" {
		t.Errorf("FoodByID(9) = %+v, %v", f, ok)
	}
	if _, ok := s.FoodByID(1); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestLoadedTracking(t *testing.T) {
	s := New()
	if s.Loaded(Dashboard) {
		t.Error("fresh store should have nothing loaded")
	}
	s.MarkLoaded(Dashboard)
	if !s.Loaded(Dashboard) {
		t.Error("MarkLoaded not reflected")
	}
	if s.Loaded(Alerts) {
		t.Error("unrelated collection marked loaded")
	}
}
