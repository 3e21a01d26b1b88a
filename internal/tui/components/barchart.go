package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarSeries is one labelled value within a bar group.
type BarSeries struct {
	Name  string
	Value float64
	Color lipgloss.Color
}

// BarGroup is one labelled cluster of bars.
type BarGroup struct {
	Label  string
	Series []BarSeries
}

// BarChart renders horizontal grouped bar charts in plain text. Bars scale
// against the largest value in the chart so groups stay comparable.
type BarChart struct {
	groups   []BarGroup
	barWidth int

	labelStyle lipgloss.Style
	axisStyle  lipgloss.Style
	valueStyle lipgloss.Style
}

// NewBarChart creates an empty chart with the given bar width in columns.
func NewBarChart(barWidth int) *BarChart {
	if barWidth < 10 {
		barWidth = 10
	}
	return &BarChart{
		barWidth:   barWidth,
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true),
		axisStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#006600")),
		valueStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	}
}

// SetGroups replaces the chart data.
func (c *BarChart) SetGroups(groups []BarGroup) {
	c.groups = groups
}

// SetBarWidth sets the bar width in columns.
func (c *BarChart) SetBarWidth(w int) {
	if w >= 10 {
		c.barWidth = w
	}
}

// Empty reports whether the chart has no data.
func (c *BarChart) Empty() bool {
	return len(c.groups) == 0
}

func (c *BarChart) maxValue() float64 {
	var max float64
	for _, g := range c.groups {
		for _, s := range g.Series {
			if s.Value > max {
				max = s.Value
			}
		}
	}
	return max
}

// Render renders the chart. Each group shows its label followed by one bar
// line per series.
func (c *BarChart) Render() string {
	if len(c.groups) == 0 {
		return c.axisStyle.Render("no data")
	}

	max := c.maxValue()

	// Widest series name for alignment
	nameWidth := 0
	for _, g := range c.groups {
		for _, s := range g.Series {
			if len(s.Name) > nameWidth {
				nameWidth = len(s.Name)
			}
		}
	}

	var b strings.Builder
	for gi, g := range c.groups {
		b.WriteString(c.labelStyle.Render(g.Label))
		b.WriteString("\n")

		for _, s := range g.Series {
			filled := 0
			if max > 0 {
				filled = int(s.Value / max * float64(c.barWidth))
			}
			if filled > c.barWidth {
				filled = c.barWidth
			}
			if s.Value > 0 && filled == 0 {
				filled = 1
			}

			bar := strings.Repeat("█", filled) + strings.Repeat("░", c.barWidth-filled)
			barStyle := lipgloss.NewStyle().Foreground(s.Color)

			b.WriteString(fmt.Sprintf("  %-*s ", nameWidth, s.Name))
			b.WriteString(barStyle.Render(bar))
			b.WriteString(" ")
			b.WriteString(c.valueStyle.Render(formatBarValue(s.Value)))
			b.WriteString("\n")
		}

		if gi < len(c.groups)-1 {
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatBarValue trims trailing zeros from whole-number values.
func formatBarValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
