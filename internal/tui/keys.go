package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeNormal = "normal"
	scopeEdit   = "edit"
)

const (
	actionQuit       = "quit"
	actionToggleEdit = "toggle-edit"
	actionLeaveEdit  = "leave-edit"
	actionLeft       = "left"
	actionRight      = "right"
	actionUp         = "up"
	actionDown       = "down"
	actionNext       = "next"
	actionPrev       = "prev"
	actionActivate   = "activate"
	actionFavorite   = "favorite"
	actionVisibility = "visibility"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to msg in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.Action(msg, scope)
	return ok && got == action
}

// DefaultKeyBindings leaves every letter and digit free for app hotkeys.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter", "alt+enter"}, Action: actionActivate, Description: "open", Scopes: []string{scopeNormal}},
		{Keys: []string{"left"}, Action: actionLeft, Description: "move", Scopes: []string{"*"}},
		{Keys: []string{"right"}, Action: actionRight, Scopes: []string{"*"}},
		{Keys: []string{"up"}, Action: actionUp, Scopes: []string{"*"}},
		{Keys: []string{"down"}, Action: actionDown, Scopes: []string{"*"}},
		{Keys: []string{"tab"}, Action: actionNext, Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: actionPrev, Scopes: []string{"*"}},
		{Keys: []string{"ctrl+e"}, Action: actionToggleEdit, Description: "edit", Scopes: []string{scopeNormal}},
		{Keys: []string{"ctrl+e", "esc"}, Action: actionLeaveEdit, Description: "done", Scopes: []string{scopeEdit}},
		{Keys: []string{"ctrl+s"}, Action: actionFavorite, Description: "favourite", Scopes: []string{scopeEdit}},
		{Keys: []string{"ctrl+v"}, Action: actionVisibility, Description: "show/hide", Scopes: []string{scopeEdit}},
		{Keys: []string{"esc", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeNormal}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Scopes: []string{scopeEdit}},
	}
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
