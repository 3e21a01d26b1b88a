// Package production provides the production logging screen: the entry form
// alongside the backend's quantity suggestions.
package production

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/forms"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/tui/components"
)

// View is the production logging screen. The form stays mounted across
// saves so the food, date, and staff selections carry over to the next
// entry.
type View struct {
	ctrl *forms.Controller
	form *components.Form

	food      *components.Select
	date      *components.Input
	quantity  *components.Input
	staff     *components.Select
	startTime *components.Input
	endTime   *components.Input
	notes     *components.Input

	built bool
}

// NewView creates the production view.
func NewView() *View {
	return &View{ctrl: forms.NewController(forms.Production)}
}

// Controller returns the form controller.
func (v *View) Controller() *forms.Controller {
	return v.ctrl
}

// Refresh rebuilds the selects from the snapshot, preserving the current
// selections and typed values.
func (v *View) Refresh(s *store.Store) {
	foodOpts := make([]components.Option, len(s.FoodItems))
	for i, f := range s.FoodItems {
		label := f.FoodName
		if sg, ok := s.SuggestionFor(f.FoodID); ok {
			label = fmt.Sprintf("%s (sugg %.0f)", f.FoodName, sg.SuggestedQuantity.Float())
		}
		foodOpts[i] = components.Option{Label: label, Value: strconv.Itoa(f.FoodID)}
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
	v.startTime = components.NewInput("Start Time").SetWidth(7).SetPlaceholder("HH:MM")
	v.endTime = components.NewInput("End Time").SetWidth(7).SetPlaceholder("HH:MM")
	v.notes = components.NewInput("Notes").SetWidth(32)

	v.form = components.NewForm("LOG PRODUCTION")
	v.form.AddField(v.food).
		AddField(v.date).
		AddField(v.quantity).
		AddField(v.staff).
		AddField(v.startTime).
		AddField(v.endTime).
		AddField(v.notes)

	v.built = true
}

// HandleKey forwards a key to the form and reports a submit.
func (v *View) HandleKey(key string) (submitted bool) {
	if v.form == nil {
		return false
	}
	v.form.HandleKey(key)
	v.form.ClearCancelled() // esc is screen navigation here, not form cancel

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
	v.ctrl.Set(forms.FieldStartTime, v.startTime.Value())
	v.ctrl.Set(forms.FieldEndTime, v.endTime.Value())
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

// Succeed applies the post-save reset: quantity and notes clear for the
// next batch, everything else stays put.
func (v *View) Succeed() {
	v.ctrl.Succeed()
	v.quantity.SetValue("")
	v.notes.SetValue("")
	if v.form != nil {
		v.form.SetError("")
	}
}

// Render renders the production screen.
func (v *View) Render(s *store.Store, loaded bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== PRODUCTION LOG ==="))
	b.WriteString("\n\n")

	if !loaded {
		b.WriteString(labelStyle.Render("Loading..."))
		return b.String()
	}

	if v.form != nil {
		b.WriteString(v.form.Render())
		b.WriteString("\n\n")
	}

	// Suggestion panel
	if len(s.Suggestions) > 0 {
		b.WriteString(labelStyle.Render("SUGGESTED QUANTITIES (from recent sales)"))
		b.WriteString("\n")
		for _, sg := range s.Suggestions {
			unit := ""
			if f, ok := s.FoodByID(sg.FoodID); ok {
				unit = " " + f.UnitSymbol
			}
			line := fmt.Sprintf("  %-22s avg %6.1f/day   suggest %6.1f%s", sg.FoodName,
				sg.AvgDailySales.Float(), sg.SuggestedQuantity.Float(), unit)
			b.WriteString(valueStyle.Render(line))
			if sg.Confidence != "" {
				b.WriteString(labelStyle.Render("  (" + sg.Confidence + ")"))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
