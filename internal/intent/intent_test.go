package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameAndTarget(t *testing.T) {
	tests := []struct {
		in   Intent
		name string
	}{
		{TileActivated{AppID: "ff", URL: "https://go.dev"}, "tile_activated"},
		{HotkeyChanged{AppID: "ff", Value: "f"}, "hotkey_changed"},
		{FavoriteToggled{AppID: "ff"}, "favorite_toggled"},
		{VisibilityToggled{AppID: "ff"}, "visibility_toggled"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.name, Name(tt.in))
		require.Equal(t, "ff", tt.in.Target())
	}
}

func TestSinkCollects(t *testing.T) {
	var got []Intent
	var sink Sink = func(i Intent) { got = append(got, i) }
	sink(FavoriteToggled{AppID: "a"})
	Discard(FavoriteToggled{AppID: "b"})
	require.Equal(t, []Intent{FavoriteToggled{AppID: "a"}}, got)
}
