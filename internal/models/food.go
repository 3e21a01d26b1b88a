package models

// FoodItem is a menu item as returned by GET /api/fooditems. The backend
// denormalizes the category, unit, and supplier names for display; those
// names are treated as opaque display strings, never as a second source
// of truth for the referenced lookup records.
type FoodItem struct {
	FoodID              int    `json:"FoodID"`
	FoodName            string `json:"FoodName"`
	CategoryID          int    `json:"CategoryID"`
	UnitID              int    `json:"UnitID"`
	SupplierID          *int   `json:"SupplierID,omitempty"`
	CostPerUnit         Amount `json:"CostPerUnit"`
	SellingPricePerUnit Amount `json:"SellingPricePerUnit"`
	MinStockLevel       Amount `json:"MinStockLevel,omitempty"`
	MaxStockLevel       Amount `json:"MaxStockLevel,omitempty"`
	IsActive            bool   `json:"IsActive,omitempty"`

	// Denormalized display names.
	CategoryName string `json:"CategoryName,omitempty"`
	UnitName     string `json:"UnitName,omitempty"`
	UnitSymbol   string `json:"UnitSymbol,omitempty"`
	SupplierName string `json:"SupplierName,omitempty"`
}

// FoodItemDraft is the POST /api/fooditems request body. Field values are
// carried as the user typed them; the backend owns coercion and rejection.
type FoodItemDraft struct {
	FoodName     string `json:"food_name"`
	CategoryID   string `json:"category_id"`
	UnitID       string `json:"unit_id"`
	SupplierID   string `json:"supplier_id,omitempty"`
	CostPerUnit  string `json:"cost_per_unit,omitempty"`
	SellingPrice string `json:"selling_price,omitempty"`
	MinStock     string `json:"min_stock,omitempty"`
	MaxStock     string `json:"max_stock,omitempty"`
}

// ProductionDraft is the POST /api/production request body.
type ProductionDraft struct {
	FoodID    string `json:"food_id"`
	Date      string `json:"date"`
	Quantity  string `json:"quantity"`
	StaffID   string `json:"staff_id,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// SalesDraft is the POST /api/sales request body.
type SalesDraft struct {
	FoodID   string `json:"food_id"`
	Date     string `json:"date"`
	Quantity string `json:"quantity"`
	StaffID  string `json:"staff_id,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
