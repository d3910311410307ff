package tui

import (
	"testing"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+s"}, Action: actionFavorite, Scopes: []string{scopeEdit}},
		{Keys: []string{"tab"}, Action: actionNext, Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, actionFavorite, scopeEdit) {
		t.Fatalf("expected ctrl+s in edit scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, actionFavorite, scopeNormal) {
		t.Fatalf("did not expect ctrl+s in normal scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyTab}, actionNext, scopeNormal) {
		t.Fatalf("expected tab to match wildcard scope")
	}
}

func TestKeyRegistryUnscopedBinding(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{{Keys: []string{"ctrl+q"}, Action: actionQuit}})
	if got := len(reg.BindingsForScope(scopeEdit)); got != 1 {
		t.Fatalf("unscoped binding should apply everywhere, got %d", got)
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlQ}, actionQuit, scopeNormal) {
		t.Fatalf("expected ctrl+q to quit")
	}
}

func TestDefaultBindingsLeaveHotkeysFree(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, r := range "abcdefghijklmnopqrstuvwxyz0123456789" {
		for _, scope := range []string{scopeNormal, scopeEdit} {
			for _, k := range []rune{r, unicode.ToUpper(r)} {
				if action, ok := reg.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}}, scope); ok {
					t.Fatalf("%q is bound to %s in %s scope", k, action, scope)
				}
			}
		}
	}
}

func TestEscLeavesEditBeforeQuitting(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	if !reg.IsAction(esc, actionLeaveEdit, scopeEdit) {
		t.Fatalf("esc should leave edit mode")
	}
	if !reg.IsAction(esc, actionQuit, scopeNormal) {
		t.Fatalf("esc should quit in normal mode")
	}
}
