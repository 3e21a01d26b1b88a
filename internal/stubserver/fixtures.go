package stubserver

import "github.com/canteenms/canteenms/internal/models"

func amountPtr(v models.Amount) *models.Amount { return &v }

// seed returns the deterministic development dataset. IDs are stable so
// client tests can assert against them.
func seed() *dataset {
	return &dataset{
		nextFoodID:  7,
		nextAlertID: 4,
		categories: []models.Category{
			{CategoryID: 1, CategoryName: "Staples", Description: "Rice, breads, and grains"},
			{CategoryID: 2, CategoryName: "Curries", Description: "Vegetable and meat curries"},
			{CategoryID: 3, CategoryName: "Beverages", Description: "Hot and cold drinks"},
			{CategoryID: 4, CategoryName: "Snacks", Description: "Fried and baked snacks"},
		},
		units: []models.Unit{
			{UnitID: 1, UnitName: "Kilogram", UnitSymbol: "kg", UnitType: "weight"},
			{UnitID: 2, UnitName: "Litre", UnitSymbol: "L", UnitType: "volume"},
			{UnitID: 3, UnitName: "Piece", UnitSymbol: "pc", UnitType: "count"},
			{UnitID: 4, UnitName: "Plate", UnitSymbol: "plate", UnitType: "count"},
		},
		suppliers: []models.Supplier{
			{SupplierID: 1, SupplierName: "Fresh Farms Co", ContactPerson: "R. Mehta", Phone: "555-0101", IsActive: true},
			{SupplierID: 2, SupplierName: "City Wholesale", ContactPerson: "A. Khan", Phone: "555-0102", IsActive: true},
		},
		staff: []models.StaffMember{
			{StaffID: 1, StaffName: "Priya Nair", Position: "Head Cook", Department: "Kitchen", IsActive: true},
			{StaffID: 2, StaffName: "Tom Okafor", Position: "Cook", Department: "Kitchen", IsActive: true},
			{StaffID: 3, StaffName: "Lena Fischer", Position: "Server", Department: "Service", IsActive: true},
		},
		foodItems: []models.FoodItem{
			{FoodID: 1, FoodName: "Steamed Rice", CategoryID: 1, UnitID: 1, SupplierID: intPtr(1),
				CostPerUnit: 1.20, SellingPricePerUnit: 3.00, MinStockLevel: 10, MaxStockLevel: 100,
				IsActive: true, CategoryName: "Staples", UnitName: "Kilogram", UnitSymbol: "kg", SupplierName: "Fresh Farms Co"},
			{FoodID: 2, FoodName: "Chicken Curry", CategoryID: 2, UnitID: 4, SupplierID: intPtr(2),
				CostPerUnit: 2.80, SellingPricePerUnit: 6.50, MinStockLevel: 5, MaxStockLevel: 60,
				IsActive: true, CategoryName: "Curries", UnitName: "Plate", UnitSymbol: "plate", SupplierName: "City Wholesale"},
			{FoodID: 3, FoodName: "Dal Tadka", CategoryID: 2, UnitID: 4, SupplierID: intPtr(1),
				CostPerUnit: 1.10, SellingPricePerUnit: 4.00, MinStockLevel: 5, MaxStockLevel: 60,
				IsActive: true, CategoryName: "Curries", UnitName: "Plate", UnitSymbol: "plate", SupplierName: "Fresh Farms Co"},
			{FoodID: 4, FoodName: "Masala Tea", CategoryID: 3, UnitID: 2, SupplierID: nil,
				CostPerUnit: 0.30, SellingPricePerUnit: 1.00, MinStockLevel: 2, MaxStockLevel: 20,
				IsActive: true, CategoryName: "Beverages", UnitName: "Litre", UnitSymbol: "L"},
			{FoodID: 5, FoodName: "Samosa", CategoryID: 4, UnitID: 3, SupplierID: intPtr(2),
				CostPerUnit: 0.40, SellingPricePerUnit: 1.25, MinStockLevel: 20, MaxStockLevel: 200,
				IsActive: true, CategoryName: "Snacks", UnitName: "Piece", UnitSymbol: "pc", SupplierName: "City Wholesale"},
			{FoodID: 6, FoodName: "Veg Biryani", CategoryID: 1, UnitID: 4, SupplierID: intPtr(1),
				CostPerUnit: 2.00, SellingPricePerUnit: 5.50, MinStockLevel: 5, MaxStockLevel: 50,
				IsActive: true, CategoryName: "Staples", UnitName: "Plate", UnitSymbol: "plate", SupplierName: "Fresh Farms Co"},
		},
		alerts: []models.Alert{
			{AlertID: 1, FoodID: 2, AlertType: "high_wastage", Severity: models.SeverityCritical,
				AlertMessage: "Chicken Curry wastage at 32% yesterday", AlertDate: "2026-08-27",
				WastagePercentage: amountPtr(32), FoodName: "Chicken Curry", CategoryName: "Curries"},
			{AlertID: 2, FoodID: 1, AlertType: "low_stock", Severity: models.SeverityHigh,
				AlertMessage: "Steamed Rice below minimum stock level", AlertDate: "2026-08-28",
				FoodName: "Steamed Rice", CategoryName: "Staples"},
			{AlertID: 3, FoodID: 5, AlertType: "high_wastage", Severity: models.SeverityMedium,
				AlertMessage: "Samosa wastage at 14% yesterday", AlertDate: "2026-08-27",
				WastagePercentage: amountPtr(14), FoodName: "Samosa", CategoryName: "Snacks"},
		},
		suggestions: []models.ProductionSuggestion{
			{FoodID: 1, FoodName: "Steamed Rice", AvgDailySales: 42, SuggestedQuantity: 46, Confidence: "high"},
			{FoodID: 2, FoodName: "Chicken Curry", AvgDailySales: 28, SuggestedQuantity: 30, Confidence: "high"},
			{FoodID: 5, FoodName: "Samosa", AvgDailySales: 110, SuggestedQuantity: 120, Confidence: "medium"},
		},
		dashboard: models.DashboardSummary{
			TotalProduced: 412,
			TotalSold:     371,
			TotalWasted:   41,
			TotalRevenue:  1482.50,
			ActiveAlerts:  3,
		},
		wastageChart: []models.WastagePoint{
			{FoodName: "Steamed Rice", Prepared: 50, Sold: 44, Wasted: 6},
			{FoodName: "Chicken Curry", Prepared: 34, Sold: 23, Wasted: 11},
			{FoodName: "Dal Tadka", Prepared: 30, Sold: 28, Wasted: 2},
			{FoodName: "Samosa", Prepared: 130, Sold: 112, Wasted: 18},
		},
	}
}

func intPtr(v int) *int { return &v }
