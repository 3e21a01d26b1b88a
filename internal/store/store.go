// Package store holds the client-side snapshot of backend state. The store
// is the single source of truth for every view; it is written only from the
// TUI event loop, so it carries no locks.
package store

import "github.com/canteenms/canteenms/internal/models"

// Collection identifies one independently fetched slice of backend state.
type Collection int

const (
	Categories Collection = iota
	Units
	Suppliers
	Staff
	FoodItems
	Dashboard
	Alerts
	Suggestions
	Wastage
)

// String returns the collection name used in logs.
func (c Collection) String() string {
	switch c {
	case Categories:
		return "categories"
	case Units:
		return "units"
	case Suppliers:
		return "suppliers"
	case Staff:
		return "staff"
	case FoodItems:
		return "fooditems"
	case Dashboard:
		return "dashboard"
	case Alerts:
		return "alerts"
	case Suggestions:
		return "suggestions"
	case Wastage:
		return "wastage"
	default:
		return "unknown"
	}
}

// Store is the in-memory snapshot of backend data. A failed refresh never
// clears a field: the prior snapshot survives until a fetch succeeds.
type Store struct {
	Categories  []models.Category
	Units       []models.Unit
	Suppliers   []models.Supplier
	Staff       []models.StaffMember
	FoodItems   []models.FoodItem
	Dashboard   models.DashboardSummary
	Alerts      []models.Alert
	Suggestions []models.ProductionSuggestion
	Wastage     models.WastageAnalytics

	loaded map[Collection]bool
}

// New returns an empty store.
func New() *Store {
	return &Store{loaded: make(map[Collection]bool)}
}

// MarkLoaded records that a collection has been populated at least once.
func (s *Store) MarkLoaded(c Collection) {
	s.loaded[c] = true
}

// Loaded reports whether a collection has ever been populated.
func (s *Store) Loaded(c Collection) bool {
	return s.loaded[c]
}

// FoodByID looks up a food item by its backend ID.
func (s *Store) FoodByID(id int) (models.FoodItem, bool) {
	for _, f := range s.FoodItems {
		if f.FoodID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

// AlertByID looks up an alert by its backend ID.
func (s *Store) AlertByID(id int) (models.Alert, bool) {
	for _, a := range s.Alerts {
		if a.AlertID == id {
			return a, true
		}
	}
	return models.Alert{}, false
}

// SuggestionFor returns the suggested production quantity for a food item.
func (s *Store) SuggestionFor(foodID int) (models.ProductionSuggestion, bool) {
	for _, sg := range s.Suggestions {
		if sg.FoodID == foodID {
			return sg, true
		}
	}
	return models.ProductionSuggestion{}, false
}
