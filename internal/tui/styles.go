// Package tui provides the terminal user interface for the canteen
// management terminal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/canteenms/canteenms/internal/config"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	// Colors (raw values for reference)
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	ForegroundColor lipgloss.Color
	ErrorColor      lipgloss.Color
	WarningColor    lipgloss.Color
	SuccessColor    lipgloss.Color
	MutedColor      lipgloss.Color

	// Base styles
	Base lipgloss.Style
	Bold lipgloss.Style

	// Color styles (for direct use)
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Header     lipgloss.Style
	Footer     lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Box        lipgloss.Style
	Selected   lipgloss.Style
	Focused    lipgloss.Style
	Disabled   lipgloss.Style
	Notice     lipgloss.Style
	NoticeWarn lipgloss.Style
	NoticeErr  lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusKey     lipgloss.Style
	StatusDivider lipgloss.Style
}

// NewTheme creates a new theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeAmber:
		return newAmberTheme()
	case config.ColorSchemeWhite:
		return newWhiteTheme()
	default:
		return newGreenPhosphorTheme()
	}
}

// newGreenPhosphorTheme creates the classic green phosphor terminal theme.
func newGreenPhosphorTheme() *Theme {
	return buildTheme(
		lipgloss.Color("#00FF00"), // primary
		lipgloss.Color("#00AA00"), // secondary
		lipgloss.Color("#66FF66"), // accent
		lipgloss.Color("#000000"), // background
		lipgloss.Color("#00FF00"), // foreground
		lipgloss.Color("#006600"), // muted
		lipgloss.Color("#FF4444"), // error
		lipgloss.Color("#FFAA00"), // warning
		lipgloss.Color("#00FF00"), // success
	)
}

// newAmberTheme creates an amber/orange phosphor terminal theme.
func newAmberTheme() *Theme {
	return buildTheme(
		lipgloss.Color("#FFAA00"),
		lipgloss.Color("#AA7700"),
		lipgloss.Color("#FFCC66"),
		lipgloss.Color("#000000"),
		lipgloss.Color("#FFAA00"),
		lipgloss.Color("#664400"),
		lipgloss.Color("#FF4444"),
		lipgloss.Color("#FFFF00"),
		lipgloss.Color("#FFAA00"),
	)
}

// newWhiteTheme creates a white/monochrome terminal theme.
func newWhiteTheme() *Theme {
	return buildTheme(
		lipgloss.Color("#FFFFFF"),
		lipgloss.Color("#AAAAAA"),
		lipgloss.Color("#FFFFFF"),
		lipgloss.Color("#000000"),
		lipgloss.Color("#FFFFFF"),
		lipgloss.Color("#666666"),
		lipgloss.Color("#FF4444"),
		lipgloss.Color("#FFAA00"),
		lipgloss.Color("#00FF00"),
	)
}

func buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor lipgloss.Color) *Theme {
	t := &Theme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		ForegroundColor: foreground,
		MutedColor:      muted,
		ErrorColor:      errorColor,
		WarningColor:    warningColor,
		SuccessColor:    successColor,
	}

	t.Base = lipgloss.NewStyle().Foreground(foreground)
	t.Bold = t.Base.Bold(true)

	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	// Header - top bar with canteen info
	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	// Footer - bottom status bar
	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	// Title - main headings
	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	// Subtitle - secondary headings
	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().Foreground(secondary)
	t.Value = lipgloss.NewStyle().Foreground(primary)

	// Box - bordered container
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	// Selected - highlighted item
	t.Selected = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Bold(true)

	// Focused - focused input
	t.Focused = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	// Disabled - inactive elements
	t.Disabled = lipgloss.NewStyle().Foreground(muted)

	// Notices
	t.Notice = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.NoticeWarn = lipgloss.NewStyle().
		Foreground(warningColor).
		Bold(true)

	t.NoticeErr = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	// Table styles
	t.TableHeader = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(secondary).
		BorderBottom(true).
		Padding(0, 1)

	t.TableRow = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.TableRowAlt = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// Box characters for drawing
const (
	BoxHorizontal       = "─"
	BoxDoubleHorizontal = "═"
)

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += BoxHorizontal
	}
	return t.Secondary.Render(line)
}

// DrawDoubleLine draws a double horizontal line.
func (t *Theme) DrawDoubleLine(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += BoxDoubleHorizontal
	}
	return t.Primary.Render(line)
}
