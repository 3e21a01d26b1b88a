package food

import (
	"strings"
	"testing"

	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/store"
)

func seededStore() *store.Store {
	s := store.New()
	s.Categories = []models.Category{{CategoryID: 1, CategoryName: "Beverages"}}
	s.Units = []models.Unit{{UnitID: 1, UnitName: "Piece", UnitSymbol: "pc"}}
	s.Suppliers = []models.Supplier{{SupplierID: 1, SupplierName: "Fresh Farms"}}
	s.FoodItems = []models.FoodItem{
		{
			FoodID:              1,
			FoodName:            "Masala Tea",
			CategoryName:        "Beverages",
			UnitSymbol:          "cup",
			CostPerUnit:         models.Amount(4),
			SellingPricePerUnit: models.Amount(10),
			SupplierName:        "Fresh Farms",
		},
		{
			FoodID:              2,
			FoodName:            "Veg Thali",
			CategoryName:        "Meals",
			UnitSymbol:          "plate",
			CostPerUnit:         models.Amount(35),
			SellingPricePerUnit: models.Amount(60),
		},
	}
	return s
}

func TestView_New(t *testing.T) {
	view := NewView()
	if view == nil {
		t.Fatal("expected non-nil view")
	}
	if view.table == nil {
		t.Fatal("expected non-nil table")
	}
}

func TestView_RenderLoading(t *testing.T) {
	view := NewView()
	output := view.Render(false)

	if !strings.Contains(output, "FOOD MANAGEMENT") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Loading") {
		t.Error("expected loading state before the snapshot arrives")
	}
}

func TestView_Refresh_RowsWithDenormalizedNames(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "$")
	output := view.Render(true)

	for _, want := range []string{"Masala Tea", "Beverages", "$10.00", "Fresh Farms"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	// Missing supplier shows the placeholder
	if !strings.Contains(output, "N/A") {
		t.Error("expected N/A for a missing supplier")
	}
}

func TestView_ToggleChart(t *testing.T) {
	view := NewView()
	view.Refresh(seededStore(), "$")
	view.ToggleChart()

	output := view.Render(true)
	if !strings.Contains(output, "Cost vs selling price") {
		t.Error("expected chart mode after toggle")
	}

	view.ToggleChart()
	if strings.Contains(view.Render(true), "Cost vs selling price") {
		t.Error("expected table mode after second toggle")
	}
}

func TestView_OpenForm(t *testing.T) {
	view := NewView()
	view.OpenForm(seededStore())

	if !view.FormOpen() {
		t.Fatal("expected form open")
	}
	if view.Controller() == nil {
		t.Fatal("expected a controller for the open form")
	}
	if !strings.Contains(view.Render(true), "ADD FOOD ITEM") {
		t.Error("expected form title in output")
	}
}

func TestView_FormSubmitSyncsController(t *testing.T) {
	view := NewView()
	view.OpenForm(seededStore())

	// Name input has initial focus
	for _, r := range "Samosa" {
		view.HandleFormKey(string(r))
	}
	submitted, cancelled := view.HandleFormKey("ctrl+s")
	if !submitted || cancelled {
		t.Fatalf("submitted=%v cancelled=%v", submitted, cancelled)
	}

	ctrl := view.Controller()
	if got := ctrl.Get(forms.FieldFoodName); got != "Samosa" {
		t.Errorf("food name = %q", got)
	}
	if got := ctrl.Get(forms.FieldCategoryID); got != "1" {
		t.Errorf("category id = %q, want the selected lookup id", got)
	}
}

func TestView_FormCancelCloses(t *testing.T) {
	view := NewView()
	view.OpenForm(seededStore())

	submitted, cancelled := view.HandleFormKey("esc")
	if submitted || !cancelled {
		t.Fatalf("submitted=%v cancelled=%v", submitted, cancelled)
	}
	if view.FormOpen() {
		t.Error("expected form closed after cancel")
	}
}

func TestView_SucceedClosesForm(t *testing.T) {
	view := NewView()
	view.OpenForm(seededStore())

	view.Succeed()
	if view.FormOpen() {
		t.Error("expected form closed after a successful save")
	}
}
