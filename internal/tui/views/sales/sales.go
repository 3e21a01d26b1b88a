// Package sales provides the sales logging screen.
package sales

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/tui/components"
	"github.com/canteenms/canteenms/internal/util"
)

// View is the sales logging screen. Like production, the form stays mounted
// so consecutive sales for the same service share food, date, and staff.
type View struct {
	ctrl *forms.Controller
	form *components.Form

	food     *components.Select
	date     *components.Input
	quantity *components.Input
	staff    *components.Select
	notes    *components.Input

	built bool
}

// NewView creates the sales view.
func NewView() *View {
	return &View{ctrl: forms.NewController(forms.Sales)}
}

// Controller returns the form controller.
func (v *View) Controller() *forms.Controller {
	return v.ctrl
}

// Refresh rebuilds the selects from the snapshot.
func (v *View) Refresh(s *store.Store, currency string) {
	foodOpts := make([]components.Option, len(s.FoodItems))
	for i, f := range s.FoodItems {
		foodOpts[i] = components.Option{
			Label: fmt.Sprintf("%s @ %s", f.FoodName, util.FormatMoney(currency, f.SellingPricePerUnit.Float())),
			Value: strconv.Itoa(f.FoodID),
		}
	}

	staffOpts := []components.Option{{Label: "unassigned", Value: ""}}
	for _, st := range s.Staff {
		staffOpts = append(staffOpts, components.Option{
			Label: st.StaffName,
			Value: strconv.Itoa(st.StaffID),
		})
	}

	if !v.built {
		v.build(foodOpts, staffOpts)
		return
	}
	v.food.SetOptions(foodOpts)
	v.staff.SetOptions(staffOpts)
}

func (v *View) build(foodOpts, staffOpts []components.Option) {
	v.food = components.NewSelect("Food Item", foodOpts)
	v.date = components.NewInput("Date").SetWidth(12).SetValue(v.ctrl.Get(forms.FieldDate))
	v.quantity = components.NewInput("Quantity").SetRequired(true).SetWidth(10)
	v.staff = components.NewSelect("Staff", staffOpts)
	v.notes = components.NewInput("Notes").SetWidth(32)

	v.form = components.NewForm("RECORD SALE")
	v.form.AddField(v.food).
		AddField(v.date).
		AddField(v.quantity).
		AddField(v.staff).
		AddField(v.notes)

	v.built = true
}

// HandleKey forwards a key to the form and reports a submit.
func (v *View) HandleKey(key string) (submitted bool) {
	if v.form == nil {
		return false
	}
	v.form.HandleKey(key)
	v.form.ClearCancelled()

	if v.form.IsSubmitted() {
		v.form.ClearSubmitted()
		v.syncController()
		return true
	}
	return false
}

func (v *View) syncController() {
	v.ctrl.Set(forms.FieldFoodID, v.food.Value())
	v.ctrl.Set(forms.FieldDate, v.date.Value())
	v.ctrl.Set(forms.FieldQuantity, v.quantity.Value())
	v.ctrl.Set(forms.FieldStaffID, v.staff.Value())
	v.ctrl.Set(forms.FieldNotes, v.notes.Value())
}

// SetBusy freezes or unfreezes the form during submission.
func (v *View) SetBusy(busy bool) {
	if v.form != nil {
		v.form.SetBusy(busy)
	}
}

// SetError shows the backend's rejection text on the form.
func (v *View) SetError(msg string) {
	if v.form != nil {
		v.form.SetError(msg)
	}
}

// Succeed applies the post-save reset: quantity and notes clear, the rest
// stays sticky.
func (v *View) Succeed() {
	v.ctrl.Succeed()
	v.quantity.SetValue("")
	v.notes.SetValue("")
	if v.form != nil {
		v.form.SetError("")
	}
}

// Render renders the sales screen.
func (v *View) Render(s *store.Store, loaded bool, currency string) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== SALES ENTRY ==="))
	b.WriteString("\n\n")

	if !loaded {
		b.WriteString(labelStyle.Render("Loading..."))
		return b.String()
	}

	if v.form != nil {
		b.WriteString(v.form.Render())
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("TODAY SO FAR"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Sold: ") + valueStyle.Render(fmt.Sprintf("%.0f", s.Dashboard.TotalSold.Float())))
	b.WriteString(labelStyle.Render("   Revenue: ") + valueStyle.Render(util.FormatMoney(currency, s.Dashboard.TotalRevenue.Float())))
	b.WriteString("\n")

	return b.String()
}
