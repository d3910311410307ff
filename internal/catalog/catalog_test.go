package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogParses(t *testing.T) {
	entries := Default()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		require.NotEmpty(t, e.ID)
		require.NotEmpty(t, e.Name)
		require.NotEqual(t, BrokenGlyph, Glyph(e.ID), "glyph for %s", e.ID)
	}
}

func TestForPlatformSkipsMissingCommands(t *testing.T) {
	for _, e := range ForPlatform("linux") {
		require.NotEqual(t, "safari", e.ID)
	}
	var hasSafari bool
	for _, e := range ForPlatform("darwin") {
		if e.ID == "safari" {
			hasSafari = true
		}
	}
	require.True(t, hasSafari)
}

func TestGlyphUnknownID(t *testing.T) {
	require.Equal(t, BrokenGlyph, Glyph("no-such-app"))
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("[[app]]\nname = \"x\"\n"))
	require.Error(t, err)

	_, err = Parse([]byte("[[app]]\nid = \"a\"\nname = \"A\"\n[[app]]\nid = \"a\"\nname = \"B\"\n"))
	require.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("not toml ="))
	require.Error(t, err)
}
