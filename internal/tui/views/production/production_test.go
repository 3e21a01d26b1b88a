package production

import (
	"strings"
	"testing"

	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/store"
)

func seededStore() *store.Store {
	s := store.New()
	s.FoodItems = []models.FoodItem{
		{FoodID: 1, FoodName: "Masala Tea", UnitSymbol: "cup"},
		{FoodID: 2, FoodName: "Veg Thali", UnitSymbol: "plate"},
	}
	s.Staff = []models.StaffMember{{StaffID: 1, StaffName: "Ramesh"}}
	s.Suggestions = []models.ProductionSuggestion{
		{FoodID: 2, FoodName: "Veg Thali", AvgDailySales: 42, SuggestedQuantity: 50, Confidence: "high"},
	}
	return s
}

func TestView_RenderLoading(t *testing.T) {
	view := NewView()
	output := view.Render(store.New(), false)

	if !strings.Contains(output, "PRODUCTION LOG") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Loading") {
		t.Error("expected loading state")
	}
}

func TestView_Refresh_SuggestionHints(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore())

	output := view.Render(seededStore(), true)
	if !strings.Contains(output, "sugg 50") {
		t.Error("expected suggestion hint on the food option")
	}
	if !strings.Contains(output, "SUGGESTED QUANTITIES") {
		t.Error("expected suggestion panel")
	}
	if !strings.Contains(output, "42") {
		t.Error("expected average daily sales in the panel")
	}
	if !strings.Contains(output, "plate") {
		t.Error("expected the unit symbol next to the suggested quantity")
	}
}

func TestView_SubmitSyncsController(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore())

	// food -> date -> quantity
	view.HandleKey("tab")
	view.HandleKey("tab")
	view.HandleKey("5")
	view.HandleKey("0")

	if !view.HandleKey("ctrl+s") {
		t.Fatal("expected submit")
	}

	ctrl := view.Controller()
	if got := ctrl.Get(forms.FieldQuantity); got != "50" {
		t.Errorf("quantity = %q", got)
	}
	if got := ctrl.Get(forms.FieldFoodID); got != "1" {
		t.Errorf("food id = %q", got)
	}
	if ctrl.Get(forms.FieldDate) == "" {
		t.Error("expected date seeded with today")
	}
}

func TestView_SucceedClearsOneShotFieldsOnly(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore())

	view.HandleKey("tab")
	view.HandleKey("tab")
	view.HandleKey("9")
	view.HandleKey("ctrl+s")

	ctrl := view.Controller()
	if err := ctrl.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	view.Succeed()

	if got := ctrl.Get(forms.FieldQuantity); got != "" {
		t.Errorf("quantity after save = %q, want cleared", got)
	}
	if ctrl.Get(forms.FieldDate) == "" {
		t.Error("expected date to stay sticky")
	}
	if got := ctrl.Get(forms.FieldFoodID); got != "1" {
		t.Errorf("food selection after save = %q, want sticky", got)
	}
}

func TestView_RefreshPreservesSelection(t *testing.T) {
	view := NewView()
	s := seededStore()
	view.Refresh(s)

	// Move the food selection to the second option, then refresh.
	view.HandleKey("right")
	view.Refresh(s)

	view.HandleKey("ctrl+s")
	if got := view.Controller().Get(forms.FieldFoodID); got != "2" {
		t.Errorf("food id after refresh = %q, want 2", got)
	}
}
