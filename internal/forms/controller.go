// Package forms implements the shared form lifecycle used by the data-entry
// screens: field editing, client-side validation, single-flight submission,
// and the per-form reset behavior after a successful save.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/util"
)

// Field names. Drafts use the same snake_case names on the wire.
const (
	FieldFoodName     = "food_name"
	FieldCategoryID   = "category_id"
	FieldUnitID       = "unit_id"
	FieldSupplierID   = "supplier_id"
	FieldCostPerUnit  = "cost_per_unit"
	FieldSellingPrice = "selling_price"
	FieldMinStock     = "min_stock"
	FieldMaxStock     = "max_stock"

	FieldFoodID    = "food_id"
	FieldDate      = "date"
	FieldQuantity  = "quantity"
	FieldStaffID   = "staff_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldNotes     = "notes"
)

// Kind selects which form a Controller manages.
type Kind int

const (
	FoodItem Kind = iota
	Production
	Sales
)

// String returns the form name used in logs.
func (k Kind) String() string {
	switch k {
	case FoodItem:
		return "food_item"
	case Production:
		return "production"
	default:
		return "sales"
	}
}

// policy describes the per-form validation and reset rules. Production and
// sales keep the food, date, and staff selections sticky across saves so an
// operator can log several entries for the same service without re-picking;
// the food item form starts blank each time.
type policy struct {
	required       []string
	positive       []string
	resetAll       bool
	clearOnSuccess []string
	seedDate       bool
}

var policies = map[Kind]policy{
	FoodItem: {
		required: []string{FieldFoodName, FieldCategoryID, FieldUnitID},
		resetAll: true,
	},
	Production: {
		required:       []string{FieldFoodID, FieldQuantity},
		positive:       []string{FieldQuantity},
		clearOnSuccess: []string{FieldQuantity, FieldNotes},
		seedDate:       true,
	},
	Sales: {
		required:       []string{FieldFoodID, FieldQuantity},
		positive:       []string{FieldQuantity},
		clearOnSuccess: []string{FieldQuantity, FieldNotes},
		seedDate:       true,
	},
}

// ErrBusy is returned when a submit is attempted while one is in flight.
var ErrBusy = errors.New("submission already in flight")

// ValidationError lists the fields that failed client-side checks.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Controller manages one form's values and submission lifecycle. Values are
// kept as the user typed them; the backend owns coercion.
type Controller struct {
	kind   Kind
	values map[string]string
	busy   bool
}

// NewController creates a controller for the given form kind. Forms with a
// date field are seeded with the local calendar date.
func NewController(kind Kind) *Controller {
	c := &Controller{kind: kind, values: make(map[string]string)}
	if policies[kind].seedDate {
		c.values[FieldDate] = util.Today()
	}
	return c
}

// Kind returns the form kind.
func (c *Controller) Kind() Kind {
	return c.kind
}

// Set stores a field value. Edits while a submit is in flight are ignored.
func (c *Controller) Set(field, value string) {
	if c.busy {
		return
	}
	c.values[field] = value
}

// Get returns a field value.
func (c *Controller) Get(field string) string {
	return c.values[field]
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	return c.busy
}

// Validate runs the client-side checks: required fields present and the
// quantity a strictly positive number. Every other field passes through as
// typed; the backend owns its validation. Returns a *ValidationError or nil.
func (c *Controller) Validate() error {
	p := policies[c.kind]
	verr := &ValidationError{}

	for _, f := range p.required {
		if strings.TrimSpace(c.values[f]) == "" {
			verr.Missing = append(verr.Missing, f)
		}
	}

	for _, f := range p.positive {
		v := strings.TrimSpace(c.values[f])
		if v == "" {
			continue
		}
		if _, err := util.ParsePositive(v); err != nil {
			verr.Invalid = append(verr.Invalid, f)
		}
	}

	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return verr
	}
	return nil
}

// BeginSubmit validates and marks the form busy. It returns ErrBusy if a
// submission is already in flight and a *ValidationError if the form fails
// client-side checks; in both cases no network request should be made.
func (c *Controller) BeginSubmit() error {
	if c.busy {
		return ErrBusy
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.busy = true
	return nil
}

// Succeed clears the busy flag and applies the form's reset policy: the food
// item form is wiped, production and sales clear only quantity and notes.
func (c *Controller) Succeed() {
	c.busy = false
	p := policies[c.kind]
	if p.resetAll {
		c.values = make(map[string]string)
		if p.seedDate {
			c.values[FieldDate] = util.Today()
		}
		return
	}
	for _, f := range p.clearOnSuccess {
		delete(c.values, f)
	}
}

// Fail clears the busy flag and preserves every value so the operator can
// correct and resubmit.
func (c *Controller) Fail() {
	c.busy = false
}

// FoodItemDraft builds the POST body for a food item form.
func (c *Controller) FoodItemDraft() (models.FoodItemDraft, error) {
	if c.kind != FoodItem {
		return models.FoodItemDraft{}, fmt.Errorf("not a food item form")
	}
	return models.FoodItemDraft{
		FoodName:     strings.TrimSpace(c.values[FieldFoodName]),
		CategoryID:   c.values[FieldCategoryID],
		UnitID:       c.values[FieldUnitID],
		SupplierID:   c.values[FieldSupplierID],
		CostPerUnit:  c.values[FieldCostPerUnit],
		SellingPrice: c.values[FieldSellingPrice],
		MinStock:     c.values[FieldMinStock],
		MaxStock:     c.values[FieldMaxStock],
	}, nil
}

// ProductionDraft builds the POST body for a production form.
func (c *Controller) ProductionDraft() (models.ProductionDraft, error) {
	if c.kind != Production {
		return models.ProductionDraft{}, fmt.Errorf("not a production form")
	}
	return models.ProductionDraft{
		FoodID:    c.values[FieldFoodID],
		Date:      c.values[FieldDate],
		Quantity:  c.values[FieldQuantity],
		StaffID:   c.values[FieldStaffID],
		StartTime: c.values[FieldStartTime],
		EndTime:   c.values[FieldEndTime],
		Notes:     c.values[FieldNotes],
	}, nil
}

// SalesDraft builds the POST body for a sales form.
func (c *Controller) SalesDraft() (models.SalesDraft, error) {
	if c.kind != Sales {
		return models.SalesDraft{}, fmt.Errorf("not a sales form")
	}
	return models.SalesDraft{
		FoodID:   c.values[FieldFoodID],
		Date:     c.values[FieldDate],
		Quantity: c.values[FieldQuantity],
		StaffID:  c.values[FieldStaffID],
		Notes:    c.values[FieldNotes],
	}, nil
}
