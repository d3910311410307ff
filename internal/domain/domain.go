// Package domain holds the value types shared by the store, the tiles and
// the CLI. Nothing here performs I/O.
package domain

import "github.com/charmbracelet/lipgloss"

// App is one URL handler the picker can open a link with.
type App struct {
	ID        string
	Name      string
	Command   string // launch command or bundle name, see launcher
	IsVisible bool
	IsFav     bool
	Hotkey    string // "" or a single character
	SortOrder int
}

// Mode is the UI-wide interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Theme carries the colours tiles read from the store.
type Theme struct {
	Accent lipgloss.Color
}

// DefaultTheme is the Catppuccin Mocha pink accent.
func DefaultTheme() Theme {
	return Theme{Accent: lipgloss.Color("#f5c2e7")}
}

// Modifiers are the modifier keys held when a tile was activated.
type Modifiers struct {
	Alt   bool
	Shift bool
}

// Favorite returns the favourite app, if any.
func Favorite(apps []App) (App, bool) {
	for _, a := range apps {
		if a.IsFav {
			return a, true
		}
	}
	return App{}, false
}

// ByHotkey returns the app bound to key.
func ByHotkey(apps []App, key string) (App, bool) {
	if key == "" {
		return App{}, false
	}
	for _, a := range apps {
		if a.Hotkey == key {
			return a, true
		}
	}
	return App{}, false
}

// FindByID returns the index of the app with id, or -1.
func FindByID(apps []App, id string) int {
	for i, a := range apps {
		if a.ID == id {
			return i
		}
	}
	return -1
}
