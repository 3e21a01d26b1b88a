package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel renders a bordered panel with a title inset into the top border.
func (t *Theme) Panel(title, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.SecondaryColor).
		Width(width - 2). // -2 for border chars
		Padding(0, 1)

	rendered := style.Render(content)

	// Replace top border segment with title
	lines := strings.Split(rendered, "\n")
	if len(lines) > 0 && len(title) > 0 {
		topLine := lines[0]
		titleRendered := t.Accent.Bold(true).Render(" " + title + " ")
		titleWidth := lipgloss.Width(titleRendered)
		topLineWidth := lipgloss.Width(topLine)
		if titleWidth+4 < topLineWidth {
			lines[0] = string([]rune(topLine)[:2]) + titleRendered + string([]rune(topLine)[2+titleWidth:])
		}
		rendered = strings.Join(lines, "\n")
	}

	return rendered
}

// ProgressBar renders a text-based progress bar colored by fill ratio.
func (t *Theme) ProgressBar(value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	ratio := value / max
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	barWidth := width - 2 // for [ and ]
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(ratio * float64(barWidth))
	empty := barWidth - filled

	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"

	switch {
	case ratio > 0.6:
		return t.Error.Render(bar)
	case ratio > 0.3:
		return t.Warning.Render(bar)
	default:
		return t.Success.Render(bar)
	}
}

// Truncate shortens a string to fit within maxWidth, adding ellipsis if needed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return s[:maxWidth]
	}
	runes := []rune(s)
	if len(runes) > maxWidth-1 {
		runes = runes[:maxWidth-1]
	}
	return string(runes) + "…"
}

// PadRight pads a string to the given width with spaces.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft pads a string to the given width with spaces on the left.
func PadLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// centerBlock centers a block of text in the terminal. Falls back to the
// block itself before the first WindowSizeMsg arrives.
func centerBlock(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// ContentWidth returns the usable content width, capped between min and max.
func ContentWidth(termWidth, minWidth, maxWidth int) int {
	w := termWidth
	if w < minWidth {
		w = minWidth
	}
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w
}

// ContentHeight returns the usable content height after subtracting chrome.
// chromeLines is the total lines used by header, notice bar, footer, and
// separators.
func ContentHeight(termHeight, chromeLines int) int {
	h := termHeight - chromeLines
	if h < 5 {
		h = 5
	}
	return h
}
