// Package intent defines the typed user actions a tile emits. Intents carry
// no behaviour; the store decides what they mean.
package intent

// Intent is one of TileActivated, HotkeyChanged, FavoriteToggled or
// VisibilityToggled.
type Intent interface {
	Target() string
	isIntent()
}

// TileActivated asks for URL to be opened with the app.
type TileActivated struct {
	URL     string
	AppID   string
	IsAlt   bool
	IsShift bool
}

// HotkeyChanged carries the raw value of a tile's hotkey input.
type HotkeyChanged struct {
	AppID string
	Value string
}

type FavoriteToggled struct {
	AppID string
}

type VisibilityToggled struct {
	AppID string
}

func (i TileActivated) Target() string     { return i.AppID }
func (i HotkeyChanged) Target() string     { return i.AppID }
func (i FavoriteToggled) Target() string   { return i.AppID }
func (i VisibilityToggled) Target() string { return i.AppID }

func (TileActivated) isIntent()     {}
func (HotkeyChanged) isIntent()     {}
func (FavoriteToggled) isIntent()   {}
func (VisibilityToggled) isIntent() {}

// Sink receives intents. Emission is fire-and-forget.
type Sink func(Intent)

// Discard drops every intent.
func Discard(Intent) {}

// Name is a short label for logs.
func Name(i Intent) string {
	switch i.(type) {
	case TileActivated:
		return "tile_activated"
	case HotkeyChanged:
		return "hotkey_changed"
	case FavoriteToggled:
		return "favorite_toggled"
	case VisibilityToggled:
		return "visibility_toggled"
	default:
		return "unknown"
	}
}
