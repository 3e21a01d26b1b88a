package sales

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
		{FoodID: 1, FoodName: "Masala Tea", SellingPricePerUnit: models.Amount(10)},
		{FoodID: 2, FoodName: "Veg Thali", SellingPricePerUnit: models.Amount(60)},
	}
	s.Staff = []models.StaffMember{{StaffID: 3, StaffName: "Sunita"}}
	s.Dashboard = models.DashboardSummary{TotalSold: 120, TotalRevenue: 1850}
	return s
}

func TestView_RenderLoading(t *testing.T) {
	view := NewView()
	output := view.Render(store.New(), false, "$")

	if !strings.Contains(output, "SALES ENTRY") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Loading") {
		t.Error("expected loading state")
	}
}

func TestView_Refresh_OptionsCarryPrices(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "$")

	output := view.Render(seededStore(), true, "$")
	if !strings.Contains(output, "Masala Tea @ $10.00") {
		t.Error("expected price-labelled food option")
	}
	if !strings.Contains(output, "TODAY SO FAR") {
		t.Error("expected running totals panel")
	}
	if !strings.Contains(output, "$1850.00") {
		t.Error("expected revenue in the totals panel")
	}
}

func TestView_SubmitSyncsController(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "$")

	// food -> date -> quantity
	view.HandleKey("tab")
	view.HandleKey("tab")
	view.HandleKey("8")

	if !view.HandleKey("ctrl+s") {
		t.Fatal("expected submit")
	}

	ctrl := view.Controller()
	if got := ctrl.Get(forms.FieldQuantity); got != "8" {
		t.Errorf("quantity = %q", got)
	}
	if got := ctrl.Get(forms.FieldFoodID); got != "1" {
		t.Errorf("food id = %q", got)
	}
}

func TestView_SucceedKeepsStickySelections(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "$")

	view.HandleKey("tab")
	view.HandleKey("tab")
	view.HandleKey("8")
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
}

func TestView_BusyFreezesInput(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "$")
	view.SetBusy(true)

	if view.HandleKey("ctrl+s") {
		t.Error("expected frozen form to swallow submit")
	}

	view.SetBusy(false)
	view.HandleKey("tab")
	view.HandleKey("tab")
	view.HandleKey("2")
	if !view.HandleKey("ctrl+s") {
		t.Error("expected submit after unfreeze")
	}
}
