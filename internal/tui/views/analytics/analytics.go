// Package analytics provides the wastage analytics screen: date selection,
// day summary, and the prepared/sold/wasted chart.
package analytics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/charts"
	"github.com/canteenms/canteenms/internal/store"
	"github.com/canteenms/canteenms/internal/tui/components"
	"github.com/canteenms/canteenms/internal/util"
)

const (
	chartColsPerItem = 6
	chartMaxCols     = 40
)

// View is the wastage analytics screen.
type View struct {
	date      string
	dateInput *components.Input
	editing   bool
	chart     *components.BarChart
}

// NewView creates the analytics view with the local calendar date selected.
func NewView() *View {
	return &View{
		date:  util.Today(),
		chart: components.NewBarChart(chartMaxCols),
	}
}

// Date returns the selected analytics date.
func (v *View) Date() string {
	return v.date
}

// Editing reports whether the date input is capturing keys.
func (v *View) Editing() bool {
	return v.editing
}

// StartDateEdit opens the date input seeded with the current date.
func (v *View) StartDateEdit() {
	v.dateInput = components.NewInput("Date").SetWidth(12).SetValue(v.date)
	v.dateInput.Focus(true)
	v.editing = true
}

// HandleDateKey forwards a key to the date input. It reports whether a new
// date was committed; the caller re-fetches analytics when it is.
func (v *View) HandleDateKey(key string) (committed bool) {
	switch key {
	case "esc":
		v.editing = false
		v.dateInput = nil
		return false
	case "enter":
		value := strings.TrimSpace(v.dateInput.Value())
		v.editing = false
		v.dateInput = nil
		if value == "" || value == v.date {
			return false
		}
		v.date = value
		return true
	default:
		v.dateInput.HandleKey(key)
		return false
	}
}

// Refresh rebuilds the chart from the wastage snapshot.
func (v *View) Refresh(s *store.Store) {
	series := charts.WastageSeries(s.Wastage.ChartData)
	groups := make([]components.BarGroup, len(series))
	for i, g := range series {
		groups[i] = components.BarGroup{
			Label: g.Name,
			Series: []components.BarSeries{
				{Name: "Prepared", Value: g.Prepared, Color: lipgloss.Color("#00AA00")},
				{Name: "Sold", Value: g.Sold, Color: lipgloss.Color("#00FF00")},
				{Name: "Wasted", Value: g.Wasted, Color: lipgloss.Color("#FF4444")},
			},
		}
	}
	v.chart.SetGroups(groups)
	v.chart.SetBarWidth(charts.Width(len(series), chartColsPerItem, chartMaxCols))
}

// Render renders the analytics screen.
func (v *View) Render(s *store.Store, loaded bool, dateLayout string) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== WASTAGE ANALYTICS ==="))
	b.WriteString("\n\n")

	if v.editing {
		b.WriteString(v.dateInput.Render())
		b.WriteString("\n\n")
	} else {
		b.WriteString(labelStyle.Render("Date: "))
		b.WriteString(valueStyle.Render(util.FormatDisplayDate(v.date, dateLayout)))
		b.WriteString("\n\n")
	}

	if !loaded {
		b.WriteString(labelStyle.Render("Loading..."))
		return b.String()
	}

	w := s.Wastage
	b.WriteString(labelStyle.Render("SUMMARY"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s    %s %s    %s %s\n",
		labelStyle.Render("Prepared:"), valueStyle.Render(fmt.Sprintf("%.0f", w.Summary.TotalPrepared.Float())),
		labelStyle.Render("Sold:"), valueStyle.Render(fmt.Sprintf("%.0f", w.Summary.TotalSold.Float())),
		labelStyle.Render("Wasted:"), warnStyle.Render(fmt.Sprintf("%.0f", w.Summary.TotalWasted.Float()))))
	b.WriteString(labelStyle.Render("  Wastage rate: "))
	b.WriteString(warnStyle.Render(fmt.Sprintf("%.1f%%", w.Summary.WastagePercentage.Float())))
	b.WriteString("\n\n")

	if v.chart.Empty() {
		b.WriteString(labelStyle.Render("No wastage data for this date."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.chart.Render())
		b.WriteString("\n")
	}

	if len(w.Alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("ALERTS FOR THIS DATE"))
		b.WriteString("\n")
		for _, alert := range w.Alerts {
			b.WriteString(warnStyle.Render("  " + strings.ToUpper(string(alert.Severity)) + "  "))
			b.WriteString(valueStyle.Render(alert.AlertMessage))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("d:Change Date"))

	return b.String()
}
