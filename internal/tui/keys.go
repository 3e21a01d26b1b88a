package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Navigation
	Up   Key
	Down Key

	// Actions
	Select Key
	Back   Key
	Quit   Key
	Help   Key

	// Function keys for screen navigation
	F1 Key
	F2 Key
	F3 Key
	F4 Key
	F5 Key
	F6 Key
	F7 Key
	F8 Key

	// Form navigation
	Tab      Key
	ShiftTab Key
	Enter    Key
	Escape   Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: Key{
			Keys:    []string{"up", "k"},
			Help:    "up",
			Enabled: true,
		},
		Down: Key{
			Keys:    []string{"down", "j"},
			Help:    "down",
			Enabled: true,
		},

		Select: Key{
			Keys:    []string{"enter", " "},
			Help:    "select",
			Enabled: true,
		},
		Back: Key{
			Keys:    []string{"esc", "backspace"},
			Help:    "back",
			Enabled: true,
		},
		Quit: Key{
			Keys:    []string{"q", "ctrl+c"},
			Help:    "quit",
			Enabled: true,
		},
		Help: Key{
			Keys:    []string{"?", "f1"},
			Help:    "help",
			Enabled: true,
		},

		F1: Key{
			Keys:    []string{"f1"},
			Help:    "Help",
			Enabled: true,
		},
		F2: Key{
			Keys:    []string{"f2"},
			Help:    "Dashboard",
			Enabled: true,
		},
		F3: Key{
			Keys:    []string{"f3"},
			Help:    "Food",
			Enabled: true,
		},
		F4: Key{
			Keys:    []string{"f4"},
			Help:    "Production",
			Enabled: true,
		},
		F5: Key{
			Keys:    []string{"f5"},
			Help:    "Sales",
			Enabled: true,
		},
		F6: Key{
			Keys:    []string{"f6"},
			Help:    "Analytics",
			Enabled: true,
		},
		F7: Key{
			Keys:    []string{"f7"},
			Help:    "Alerts",
			Enabled: true,
		},
		F8: Key{
			Keys:    []string{"f8"},
			Help:    "Quit",
			Enabled: true,
		},

		Tab: Key{
			Keys:    []string{"tab"},
			Help:    "next field",
			Enabled: true,
		},
		ShiftTab: Key{
			Keys:    []string{"shift+tab"},
			Help:    "prev field",
			Enabled: true,
		},
		Enter: Key{
			Keys:    []string{"enter"},
			Help:    "confirm",
			Enabled: true,
		},
		Escape: Key{
			Keys:    []string{"esc"},
			Help:    "cancel",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F8.Matches(msg)
}

// IsFunctionKey checks if the key message is a function key.
func (km KeyMap) IsFunctionKey(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.F1, km.F2, km.F3, km.F4, km.F5, km.F6, km.F7, km.F8)
}

// FunctionKeyScreen returns the screen a function key navigates to.
func (km KeyMap) FunctionKeyScreen(msg tea.KeyMsg) (Screen, bool) {
	switch {
	case km.F1.Matches(msg):
		return ScreenHelp, true
	case km.F2.Matches(msg):
		return ScreenDashboard, true
	case km.F3.Matches(msg):
		return ScreenFood, true
	case km.F4.Matches(msg):
		return ScreenProduction, true
	case km.F5.Matches(msg):
		return ScreenSales, true
	case km.F6.Matches(msg):
		return ScreenAnalytics, true
	case km.F7.Matches(msg):
		return ScreenAlerts, true
	default:
		return ScreenDashboard, false
	}
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[F1]Help [F2]Dashboard [F3]Food [F4]Production [F5]Sales [F6]Analytics [F7]Alerts [F8]Quit"
}
