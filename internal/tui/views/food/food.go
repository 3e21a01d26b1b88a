// Package food provides the food item management views: the item list with
// its cost/price chart, and the add-item form.
package food

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/charts"
	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/tui/components"
	"github.com/canteenms/canteenms/internal/util"
)

// chart sizing: columns per item group, capped for narrow terminals
const (
	chartColsPerItem = 4
	chartMaxCols     = 48
)

// View is the food management screen.
type View struct {
	table *components.Table
	chart *components.BarChart

	ctrl     *forms.Controller
	form     *components.Form
	name     *components.Input
	category *components.Select
	unit     *components.Select
	supplier *components.Select
	cost     *components.Input
	price    *components.Input
	minStock *components.Input
	maxStock *components.Input

	showForm  bool
	showChart bool
}

// NewView creates the food view.
func NewView() *View {
	table := components.NewTable([]components.Column{
		{Title: "Name", Width: 22},
		{Title: "Category", Width: 12},
		{Title: "Unit", Width: 8},
		{Title: "Cost", Width: 9, Align: lipgloss.Right},
		{Title: "Price", Width: 9, Align: lipgloss.Right},
		{Title: "Supplier", Width: 18},
	})
	table.SetVisibleRows(14)
	table.Focus(true)

	return &View{
		table: table,
		chart: components.NewBarChart(chartMaxCols),
	}
}

// Refresh rebuilds the list and chart from the current snapshot.
func (v *View) Refresh(s *store.Store, currency string) {
	rows := make([][]string, len(s.FoodItems))
	for i, f := range s.FoodItems {
		supplier := "N/A"
		if f.SupplierName != "" {
			supplier = f.SupplierName
		}
		rows[i] = []string{
			f.FoodName,
			f.CategoryName,
			f.UnitSymbol,
			util.FormatMoney(currency, f.CostPerUnit.Float()),
			util.FormatMoney(currency, f.SellingPricePerUnit.Float()),
			supplier,
		}
	}
	v.table.SetRows(rows)

	series := charts.CostPriceSeries(s.FoodItems)
	groups := make([]components.BarGroup, len(series))
	for i, p := range series {
		groups[i] = components.BarGroup{
			Label: p.Name,
			Series: []components.BarSeries{
				{Name: "Cost", Value: p.Cost, Color: lipgloss.Color("#FFAA00")},
				{Name: "Price", Value: p.Price, Color: lipgloss.Color("#00FF00")},
			},
		}
	}
	v.chart.SetGroups(groups)
	v.chart.SetBarWidth(charts.Width(len(series), chartColsPerItem, chartMaxCols))
}

// MoveUp moves the list selection up.
func (v *View) MoveUp() { v.table.MoveUp() }

// MoveDown moves the list selection down.
func (v *View) MoveDown() { v.table.MoveDown() }

// ToggleChart switches between the table and the cost/price chart.
func (v *View) ToggleChart() {
	v.showChart = !v.showChart
}

// FormOpen reports whether the add form is active.
func (v *View) FormOpen() bool {
	return v.showForm
}

// Controller returns the active form controller, or nil when no form is
// open.
func (v *View) Controller() *forms.Controller {
	return v.ctrl
}

// OpenForm builds a fresh add-item form over the current lookup snapshot.
func (v *View) OpenForm(s *store.Store) {
	v.ctrl = forms.NewController(forms.FoodItem)

	v.name = components.NewInput("Food Name").SetRequired(true).SetWidth(24)
	v.category = components.NewSelect("Category", lookupOptions(len(s.Categories), func(i int) (string, int) {
		return s.Categories[i].CategoryName, s.Categories[i].CategoryID
	}))
	v.unit = components.NewSelect("Unit", lookupOptions(len(s.Units), func(i int) (string, int) {
		return s.Units[i].UnitName, s.Units[i].UnitID
	}))

	supplierOpts := []components.Option{{Label: "none", Value: ""}}
	for _, sup := range s.Suppliers {
		supplierOpts = append(supplierOpts, components.Option{
			Label: sup.SupplierName,
			Value: strconv.Itoa(sup.SupplierID),
		})
	}
	v.supplier = components.NewSelect("Supplier", supplierOpts)

	v.cost = components.NewInput("Cost/Unit").SetWidth(10)
	v.price = components.NewInput("Selling Price").SetWidth(10)
	v.minStock = components.NewInput("Min Stock").SetWidth(10)
	v.maxStock = components.NewInput("Max Stock").SetWidth(10)

	v.form = components.NewForm("ADD FOOD ITEM")
	v.form.AddField(v.name).
		AddField(v.category).
		AddField(v.unit).
		AddField(v.supplier).
		AddField(v.cost).
		AddField(v.price).
		AddField(v.minStock).
		AddField(v.maxStock)

	v.showForm = true
}

func lookupOptions(n int, get func(i int) (string, int)) []components.Option {
	opts := make([]components.Option, n)
	for i := 0; i < n; i++ {
		label, id := get(i)
		opts[i] = components.Option{Label: label, Value: strconv.Itoa(id)}
	}
	return opts
}

// HandleFormKey forwards a key to the form. It reports whether the form was
// submitted or cancelled by this key.
func (v *View) HandleFormKey(key string) (submitted, cancelled bool) {
	v.form.HandleKey(key)

	if v.form.IsCancelled() {
		v.closeForm()
		return false, true
	}

	if v.form.IsSubmitted() {
		v.form.ClearSubmitted()
		v.syncController()
		return true, false
	}

	return false, false
}

// syncController copies the widget values into the form controller.
func (v *View) syncController() {
	v.ctrl.Set(forms.FieldFoodName, v.name.Value())
	v.ctrl.Set(forms.FieldCategoryID, v.category.Value())
	v.ctrl.Set(forms.FieldUnitID, v.unit.Value())
	v.ctrl.Set(forms.FieldSupplierID, v.supplier.Value())
	v.ctrl.Set(forms.FieldCostPerUnit, v.cost.Value())
	v.ctrl.Set(forms.FieldSellingPrice, v.price.Value())
	v.ctrl.Set(forms.FieldMinStock, v.minStock.Value())
	v.ctrl.Set(forms.FieldMaxStock, v.maxStock.Value())
}

// SetBusy freezes or unfreezes the form during submission.
func (v *View) SetBusy(busy bool) {
	if v.form != nil {
		v.form.SetBusy(busy)
	}
}

// SetError shows an error line on the form, preserving every field.
func (v *View) SetError(msg string) {
	if v.form != nil {
		v.form.SetError(msg)
	}
}

// Succeed closes the form; a saved food item starts the next entry from a
// blank form.
func (v *View) Succeed() {
	if v.ctrl != nil {
		v.ctrl.Succeed()
	}
	v.closeForm()
}

func (v *View) closeForm() {
	v.showForm = false
	v.form = nil
	v.ctrl = nil
}

// Render renders the food screen.
func (v *View) Render(loaded bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	if v.showForm {
		return v.form.Render()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== FOOD MANAGEMENT ==="))
	b.WriteString("\n\n")

	switch {
	case !loaded:
		b.WriteString(labelStyle.Render("Loading..."))
		b.WriteString("\n")
	case v.showChart:
		b.WriteString(labelStyle.Render("Cost vs selling price"))
		b.WriteString("\n\n")
		b.WriteString(v.chart.Render())
		b.WriteString("\n")
	case v.table.Empty():
		b.WriteString(labelStyle.Render("No food items found."))
		b.WriteString("\n")
	default:
		b.WriteString(v.table.Render())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d items", v.table.RowCount())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Up/Down:Select  a:Add Item  g:Chart"))

	return b.String()
}
