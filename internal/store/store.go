// Package store is the observable application state. Tiles read immutable
// snapshots through Subscribe and send intents through Dispatch; nothing else
// mutates State.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jask/browserpick/internal/database/repository"
	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/launcher"
	"github.com/jask/browserpick/internal/logging"
)

// State is one snapshot of the application.
type State struct {
	URL       string
	Mode      domain.Mode
	Theme     domain.Theme
	Apps      []domain.App
	Status    string
	StatusErr bool
	// Dismissed is set once a URL has been opened and the picker should close.
	Dismissed bool
}

// AppRepo is the persistence the store needs for apps.
type AppRepo interface {
	List(ctx context.Context) ([]repository.App, error)
	SetHotkey(ctx context.Context, id, key string) error
	SetFavorite(ctx context.Context, id string) error
	SetVisible(ctx context.Context, id string, visible bool) error
}

// LaunchLog records opened URLs.
type LaunchLog interface {
	Insert(ctx context.Context, l repository.Launch) (repository.Launch, error)
}

// Options configures a Store. Apps and Launches may be nil for an in-memory
// store.
type Options struct {
	URL      string
	Theme    domain.Theme
	Apps     AppRepo
	Launches LaunchLog
	Launcher launcher.Launcher
	Logger   *log.Logger
	KeepOpen bool
}

// Store owns State.
type Store struct {
	ctx      context.Context
	apps     AppRepo
	launches LaunchLog
	launcher launcher.Launcher
	log      *log.Logger
	keepOpen bool

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

func New(ctx context.Context, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	theme := opts.Theme
	if theme.Accent == "" {
		theme = domain.DefaultTheme()
	}
	return &Store{
		ctx:       ctx,
		apps:      opts.Apps,
		launches:  opts.Launches,
		launcher:  opts.Launcher,
		log:       logger,
		keepOpen:  opts.KeepOpen,
		state:     State{URL: opts.URL, Theme: theme},
		listeners: make(map[int]func(State)),
	}
}

// Load replaces the app list with the persisted one.
func (s *Store) Load() error {
	if s.apps == nil {
		return nil
	}
	rows, err := s.apps.List(s.ctx)
	if err != nil {
		return fmt.Errorf("load apps: %w", err)
	}
	apps := make([]domain.App, 0, len(rows))
	for _, r := range rows {
		apps = append(apps, fromRow(r))
	}
	s.update(func(st *State) { st.Apps = apps })
	return nil
}

// SetApps replaces the app list without touching persistence.
func (s *Store) SetApps(apps []domain.App) {
	apps = slices.Clone(apps)
	s.update(func(st *State) { st.Apps = apps })
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.Apps = slices.Clone(s.state.Apps)
	return st
}

// Subscribe registers fn to receive every new snapshot. The returned func
// unregisters it and is safe to call more than once.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) SetURL(url string) {
	s.update(func(st *State) { st.URL = url })
}

func (s *Store) SetTheme(t domain.Theme) {
	s.update(func(st *State) { st.Theme = t })
}

func (s *Store) SetMode(m domain.Mode) {
	s.update(func(st *State) { st.Mode = m })
}

func (s *Store) ToggleEditMode() {
	s.update(func(st *State) {
		if st.Mode == domain.ModeEdit {
			st.Mode = domain.ModeNormal
			st.Status = ""
			return
		}
		st.Mode = domain.ModeEdit
		st.Status = "edit mode: set hotkeys, favourite and visibility"
		st.StatusErr = false
	})
}

// update applies fn under the lock and then notifies listeners outside it.
func (s *Store) update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	listeners := make([]func(State), 0, len(s.listeners))
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func fromRow(r repository.App) domain.App {
	return domain.App{
		ID:        r.ID,
		Name:      r.Name,
		Command:   r.Command,
		IsVisible: r.IsVisible,
		IsFav:     r.IsFav,
		Hotkey:    r.Hotkey,
		SortOrder: r.SortOrder,
	}
}
