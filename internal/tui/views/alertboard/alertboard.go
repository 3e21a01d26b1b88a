// Package alertboard provides the active alert screen with its type
// distribution chart and the resolve action.
package alertboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/charts"
	"github.com/canteenms/canteenms/internal/models"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/tui/components"
	"github.com/canteenms/canteenms/internal/util"
)

// View is the active alerts screen.
type View struct {
	table  *components.Table
	chart  *components.BarChart
	alerts []models.Alert

	showChart bool
}

// NewView creates the alert board.
func NewView() *View {
	table := components.NewTable([]components.Column{
		{Title: "Sev", Width: 9},
		{Title: "Type", Width: 14},
		{Title: "Food", Width: 18},
		{Title: "Message", Width: 40},
		{Title: "Date", Width: 12},
	})
	table.SetVisibleRows(14)
	table.Focus(true)

	return &View{
		table: table,
		chart: components.NewBarChart(30),
	}
}

// Refresh rebuilds the board from the alert snapshot, preserving backend
// order.
func (v *View) Refresh(s *store.Store, dateLayout string) {
	v.alerts = s.Alerts

	rows := make([][]string, len(s.Alerts))
	for i, a := range s.Alerts {
		msg := a.AlertMessage
		if a.WastagePercentage != nil {
			msg = fmt.Sprintf("%s (%.0f%%)", a.AlertMessage, a.WastagePercentage.Float())
		}
		rows[i] = []string{
			strings.ToUpper(string(a.Severity)),
			a.AlertType,
			a.FoodName,
			msg,
			util.FormatDisplayDate(a.AlertDate, dateLayout),
		}
	}
	v.table.SetRows(rows)

	dist := charts.AlertTypeDistribution(s.Alerts)
	groups := make([]components.BarGroup, len(dist))
	for i, d := range dist {
		groups[i] = components.BarGroup{
			Label: d.Label,
			Series: []components.BarSeries{
				{Name: "count", Value: float64(d.Count), Color: lipgloss.Color("#FFAA00")},
			},
		}
	}
	v.chart.SetGroups(groups)
}

// MoveUp moves the selection up.
func (v *View) MoveUp() { v.table.MoveUp() }

// MoveDown moves the selection down.
func (v *View) MoveDown() { v.table.MoveDown() }

// ToggleChart switches between the alert list and the distribution chart.
func (v *View) ToggleChart() {
	v.showChart = !v.showChart
}

// Selected returns the alert under the cursor.
func (v *View) Selected() (models.Alert, bool) {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.alerts) {
		return v.alerts[idx], true
	}
	return models.Alert{}, false
}

// Render renders the alert board.
func (v *View) Render(loaded bool, resolving func(alertID int) bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	busyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== ACTIVE ALERTS ==="))
	b.WriteString("\n\n")

	switch {
	case !loaded:
		b.WriteString(labelStyle.Render("Loading..."))
		b.WriteString("\n")
	case v.showChart:
		b.WriteString(labelStyle.Render("Alerts by type"))
		b.WriteString("\n\n")
		b.WriteString(v.chart.Render())
		b.WriteString("\n")
	case v.table.Empty():
		b.WriteString(labelStyle.Render("No active alerts."))
		b.WriteString("\n")
	default:
		b.WriteString(v.table.Render())
		b.WriteString("\n")
		if alert, ok := v.Selected(); ok && resolving != nil && resolving(alert.AlertID) {
			b.WriteString(busyStyle.Render("Resolving alert " + strconv.Itoa(alert.AlertID) + "..."))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Up/Down:Select  r:Resolve  g:Chart"))

	return b.String()
}
