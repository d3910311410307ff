package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/browserpick/internal/database"
	"github.com/jask/browserpick/internal/database/repository"
	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/intent"
	"github.com/jask/browserpick/internal/launcher"
)

type fakeLauncher struct {
	reqs []launcher.Request
	err  error
}

func (f *fakeLauncher) Open(_ context.Context, req launcher.Request) error {
	f.reqs = append(f.reqs, req)
	return f.err
}

func testApps() []domain.App {
	return []domain.App{
		{ID: "a1", Name: "Mail", IsVisible: true, Command: "mail"},
		{ID: "ff", Name: "Firefox", IsVisible: true, Command: "firefox", Hotkey: "f"},
		{ID: "ch", Name: "Chrome", IsVisible: false, Command: "chrome", IsFav: true},
	}
}

func newMemStore(t *testing.T, l launcher.Launcher) *Store {
	t.Helper()
	s := New(context.Background(), Options{URL: "https://example.com", Launcher: l})
	s.SetApps(testApps())
	return s
}

func TestActivateOpensAndDismisses(t *testing.T) {
	l := &fakeLauncher{}
	s := newMemStore(t, l)

	s.Dispatch(intent.TileActivated{URL: "https://example.com", AppID: "ff", IsAlt: true})

	require.Len(t, l.reqs, 1)
	require.Equal(t, "ff", l.reqs[0].App.ID)
	require.True(t, l.reqs[0].Background)
	require.Equal(t, "https://example.com", l.reqs[0].URL)
	snap := s.Snapshot()
	require.True(t, snap.Dismissed)
	require.False(t, snap.StatusErr)
}

func TestActivateShiftKeepsPickerOpen(t *testing.T) {
	s := newMemStore(t, &fakeLauncher{})
	s.Dispatch(intent.TileActivated{AppID: "ff", IsShift: true})
	require.False(t, s.Snapshot().Dismissed)
}

func TestActivateIgnoredInEditMode(t *testing.T) {
	l := &fakeLauncher{}
	s := newMemStore(t, l)
	s.ToggleEditMode()
	s.Dispatch(intent.TileActivated{AppID: "ff"})
	require.Empty(t, l.reqs)
	require.False(t, s.Snapshot().Dismissed)
}

func TestActivateLauncherFailure(t *testing.T) {
	s := newMemStore(t, &fakeLauncher{err: errors.New("not installed")})
	s.Dispatch(intent.TileActivated{AppID: "ff"})
	snap := s.Snapshot()
	require.False(t, snap.Dismissed)
	require.True(t, snap.StatusErr)
	require.Contains(t, snap.Status, "not installed")
}

func TestActivateUnknownApp(t *testing.T) {
	l := &fakeLauncher{}
	s := newMemStore(t, l)
	s.Dispatch(intent.TileActivated{AppID: "missing"})
	require.Empty(t, l.reqs)
	require.True(t, s.Snapshot().StatusErr)
}

func TestNormalizeHotkey(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", true},
		{"m", "m", true},
		{"M", "m", true},
		{"7", "7", true},
		{"é", "é", true},
		{"!", "", false},
		{" ", "", false},
		{"\t", "", false},
		{"ab", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeHotkey(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestHotkeyChangedIsUnique(t *testing.T) {
	s := newMemStore(t, nil)
	s.Dispatch(intent.HotkeyChanged{AppID: "a1", Value: "F"})

	apps := s.Snapshot().Apps
	require.Equal(t, "f", apps[0].Hotkey)
	require.Empty(t, apps[1].Hotkey, "previous owner loses the hotkey")

	s.Dispatch(intent.HotkeyChanged{AppID: "a1", Value: ""})
	require.Empty(t, s.Snapshot().Apps[0].Hotkey)
}

func TestHotkeyChangedRejectsSymbolsButNotifies(t *testing.T) {
	s := newMemStore(t, nil)
	var got []State
	unsub := s.Subscribe(func(st State) { got = append(got, st) })
	defer unsub()

	s.Dispatch(intent.HotkeyChanged{AppID: "ff", Value: "?"})
	require.Len(t, got, 1)
	require.Equal(t, "f", got[0].Apps[1].Hotkey)
	require.True(t, got[0].StatusErr)
}

func TestHotkeySpaceDoesNotClear(t *testing.T) {
	s := newMemStore(t, nil)
	s.Dispatch(intent.HotkeyChanged{AppID: "ff", Value: " "})
	snap := s.Snapshot()
	require.Equal(t, "f", snap.Apps[1].Hotkey)
	require.True(t, snap.StatusErr)
}

func TestFavoriteToggledIsExclusive(t *testing.T) {
	s := newMemStore(t, nil)

	s.Dispatch(intent.FavoriteToggled{AppID: "a1"})
	fav, ok := domain.Favorite(s.Snapshot().Apps)
	require.True(t, ok)
	require.Equal(t, "a1", fav.ID)
	require.False(t, s.Snapshot().Apps[2].IsFav)

	s.Dispatch(intent.FavoriteToggled{AppID: "a1"})
	_, ok = domain.Favorite(s.Snapshot().Apps)
	require.False(t, ok)
}

func TestVisibilityToggled(t *testing.T) {
	s := newMemStore(t, nil)
	s.Dispatch(intent.VisibilityToggled{AppID: "ch"})
	require.True(t, s.Snapshot().Apps[2].IsVisible)
	s.Dispatch(intent.VisibilityToggled{AppID: "ch"})
	require.False(t, s.Snapshot().Apps[2].IsVisible)
}

func TestSubscribeUnsubscribe(t *testing.T) {
	s := newMemStore(t, nil)
	calls := 0
	unsub := s.Subscribe(func(State) { calls++ })

	s.SetURL("https://other.example")
	require.Equal(t, 1, calls)

	unsub()
	unsub()
	s.ToggleEditMode()
	require.Equal(t, 1, calls)
	require.Equal(t, domain.ModeEdit, s.Snapshot().Mode)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newMemStore(t, nil)
	snap := s.Snapshot()
	snap.Apps[0].Name = "changed"
	require.Equal(t, "Mail", s.Snapshot().Apps[0].Name)
}

func TestPersistentStore(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenAndMigrate(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(ctx, db, "linux"))

	apps := repository.NewAppRepo(db)
	launches := repository.NewLaunchRepo(db)
	s := New(ctx, Options{URL: "https://go.dev", Apps: apps, Launches: launches, Launcher: &fakeLauncher{}})
	require.NoError(t, s.Load())
	require.NotEmpty(t, s.Snapshot().Apps)

	s.Dispatch(intent.HotkeyChanged{AppID: "firefox", Value: "x"})
	s.Dispatch(intent.FavoriteToggled{AppID: "brave"})
	s.Dispatch(intent.VisibilityToggled{AppID: "edge"})
	s.Dispatch(intent.TileActivated{URL: "https://go.dev", AppID: "firefox"})

	ff, err := apps.Get(ctx, "firefox")
	require.NoError(t, err)
	require.Equal(t, "x", ff.Hotkey)
	brave, err := apps.Get(ctx, "brave")
	require.NoError(t, err)
	require.True(t, brave.IsFav)
	edge, err := apps.Get(ctx, "edge")
	require.NoError(t, err)
	require.False(t, edge.IsVisible)

	recent, err := launches.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "https://go.dev", recent[0].URL)

	reloaded := New(ctx, Options{Apps: apps})
	require.NoError(t, reloaded.Load())
	require.Equal(t, s.Snapshot().Apps, reloaded.Snapshot().Apps)
}

func TestDefaultThemeAndSetTheme(t *testing.T) {
	s := newMemStore(t, nil)
	require.Equal(t, domain.DefaultTheme(), s.Snapshot().Theme)

	s.SetTheme(domain.Theme{Accent: "#89b4fa"})
	require.Equal(t, "#89b4fa", string(s.Snapshot().Theme.Accent))
}
