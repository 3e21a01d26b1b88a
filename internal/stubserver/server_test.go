package stubserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canteenms/canteenms/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp
}

// postJSON posts a draft and decodes the mutation envelope.
func postJSON(t *testing.T, url string, body any) (int, mutationEnvelope) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var env mutationEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding %s envelope: %v", url, err)
	}
	return resp.StatusCode, env
}

type mutationEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func TestSeedCollectionsServed(t *testing.T) {
	srv := newTestServer(t)

	var cats []models.Category
	getJSON(t, srv.URL+"/api/categories", &cats)
	if len(cats) == 0 {
		t.Error("no categories served")
	}

	var items []models.FoodItem
	getJSON(t, srv.URL+"/api/fooditems", &items)
	if len(items) != 6 {
		t.Errorf("expected 6 seeded food items, got %d", len(items))
	}
	if items[0].CategoryName == "" || items[0].UnitSymbol == "" {
		t.Error("denormalized names missing from food items")
	}
}

func TestAlertsLimit(t *testing.T) {
	srv := newTestServer(t)

	var all []models.Alert
	getJSON(t, srv.URL+"/api/alerts", &all)
	if len(all) != 3 {
		t.Fatalf("expected 3 seeded alerts, got %d", len(all))
	}

	var limited []models.Alert
	getJSON(t, srv.URL+"/api/alerts?limit=2", &limited)
	if len(limited) != 2 {
		t.Errorf("limit=2 returned %d alerts", len(limited))
	}
	if limited[0].AlertID != all[0].AlertID {
		t.Error("limit must be a prefix of the full ordering")
	}
}

func TestCreateFoodItemDenormalizesNames(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv.URL+"/api/fooditems", models.FoodItemDraft{
		FoodName:    "Lemon Juice",
		CategoryID:  "3",
		UnitID:      "2",
		SupplierID:  "1",
		CostPerUnit: "0.50",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", status, env.Success)
	}

	var items []models.FoodItem
	getJSON(t, srv.URL+"/api/fooditems", &items)
	last := items[len(items)-1]
	if last.FoodName != "Lemon Juice" {
		t.Fatalf("new item not appended: %+v", last)
	}
	if last.CategoryName != "Beverages" || last.UnitSymbol != "L" || last.SupplierName != "Fresh Farms Co" {
		t.Errorf("denormalized names wrong: %+v", last)
	}
}

func TestCreateFoodItemRejectsUnknownCategory(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv.URL+"/api/fooditems", models.FoodItemDraft{
		FoodName:   "Mystery",
		CategoryID: "99",
		UnitID:     "1",
	})
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if env.Success || env.Error == "" {
		t.Errorf("rejection envelope = %+v, want success=false with error text", env)
	}
}

func TestProductionRejectsNonPositiveQuantity(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv.URL+"/api/production", models.ProductionDraft{
		FoodID: "1", Date: "2026-08-28", Quantity: "0",
	})
	if status != http.StatusBadRequest || env.Success {
		t.Errorf("status = %d, success = %v, want a 400 rejection", status, env.Success)
	}

	status, env = postJSON(t, srv.URL+"/api/production", models.ProductionDraft{
		FoodID: "1", Date: "2026-08-28", Quantity: "25",
	})
	if status != http.StatusOK || !env.Success {
		t.Errorf("status = %d, success = %v, want a success envelope", status, env.Success)
	}
}

func TestSalesUpdatesDashboard(t *testing.T) {
	srv := newTestServer(t)

	var before models.DashboardSummary
	getJSON(t, srv.URL+"/api/dashboard", &before)

	status, env := postJSON(t, srv.URL+"/api/sales", models.SalesDraft{
		FoodID: "1", Date: "2026-08-28", Quantity: "10",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", status, env.Success)
	}

	var after models.DashboardSummary
	getJSON(t, srv.URL+"/api/dashboard", &after)
	if after.TotalSold != before.TotalSold+10 {
		t.Errorf("TotalSold = %v, want %v", after.TotalSold, before.TotalSold+10)
	}
	// Steamed Rice sells at 3.00
	if after.TotalRevenue != before.TotalRevenue+30 {
		t.Errorf("TotalRevenue = %v, want %v", after.TotalRevenue, before.TotalRevenue+30)
	}
}

func TestResolveRemovesAlert(t *testing.T) {
	srv := newTestServer(t)

	status, env := postJSON(t, srv.URL+"/api/alerts/2/resolve", models.ResolveRequest{
		ResolvedBy: 1, ResolutionNotes: "Resolved via terminal",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", status, env.Success)
	}

	var after []models.Alert
	getJSON(t, srv.URL+"/api/alerts", &after)
	for _, a := range after {
		if a.AlertID == 2 {
			t.Error("resolved alert still listed")
		}
	}
	if len(after) != 2 {
		t.Errorf("expected 2 alerts after resolve, got %d", len(after))
	}

	status, env = postJSON(t, srv.URL+"/api/alerts/2/resolve", models.ResolveRequest{ResolvedBy: 1})
	if status != http.StatusNotFound || env.Success {
		t.Errorf("second resolve status = %d, success = %v, want a 404 rejection", status, env.Success)
	}
}

func TestWastageAnalyticsShape(t *testing.T) {
	srv := newTestServer(t)

	var w models.WastageAnalytics
	getJSON(t, srv.URL+"/api/wastage/analytics?date=2026-08-27", &w)

	if w.Date != "2026-08-27" {
		t.Errorf("date = %q", w.Date)
	}
	if len(w.ChartData) == 0 {
		t.Fatal("no chart data")
	}
	if w.Summary.TotalPrepared == 0 || w.Summary.WastagePercentage == 0 {
		t.Errorf("summary not computed: %+v", w.Summary)
	}
}
