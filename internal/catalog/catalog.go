// Package catalog ships the built-in list of URL handlers and the id → icon
// lookup used by tiles.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed apps.toml
var defaultCatalog []byte

// BrokenGlyph is shown for ids without an icon.
const BrokenGlyph = "▫"

// Entry is one catalogue record.
type Entry struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Glyph   string `toml:"glyph"`
	Darwin  string `toml:"darwin"`
	Linux   string `toml:"linux"`
	Windows string `toml:"windows"`
}

// Command returns the launch command for goos, or "" when the app does not
// exist on that platform.
func (e Entry) Command(goos string) string {
	switch goos {
	case "darwin":
		return e.Darwin
	case "windows":
		return e.Windows
	default:
		return e.Linux
	}
}

type catalogFile struct {
	App []Entry `toml:"app"`
}

var glyphs map[string]string

func init() {
	entries, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded apps.toml: %v", err))
	}
	glyphs = make(map[string]string, len(entries))
	for _, e := range entries {
		glyphs[e.ID] = e.Glyph
	}
}

// Parse decodes a catalogue document.
func Parse(data []byte) ([]Entry, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(f.App))
	for i, e := range f.App {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("app[%d]: id and name are required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("app[%d]: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
	}
	return f.App, nil
}

// Default returns the embedded catalogue.
func Default() []Entry {
	entries, _ := Parse(defaultCatalog)
	return entries
}

// ForPlatform returns the entries that can be launched on goos.
func ForPlatform(goos string) []Entry {
	var out []Entry
	for _, e := range Default() {
		if e.Command(goos) != "" {
			out = append(out, e)
		}
	}
	return out
}

// Glyph resolves the icon for an app id. Unknown ids get BrokenGlyph rather
// than an error so one bad entry never breaks the grid.
func Glyph(id string) string {
	if g, ok := glyphs[id]; ok && g != "" {
		return g
	}
	return BrokenGlyph
}
