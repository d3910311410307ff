package store

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jask/browserpick/internal/database/repository"
	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/intent"
	"github.com/jask/browserpick/internal/launcher"
)

// Dispatch handles one intent. It never returns an error: failures are
// logged and reported through State.Status.
func (s *Store) Dispatch(i intent.Intent) {
	s.log.Debug("intent", "kind", intent.Name(i), "app", i.Target())
	switch in := i.(type) {
	case intent.TileActivated:
		s.activate(in)
	case intent.HotkeyChanged:
		s.changeHotkey(in)
	case intent.FavoriteToggled:
		s.toggleFavorite(in)
	case intent.VisibilityToggled:
		s.toggleVisibility(in)
	}
}

func (s *Store) activate(in intent.TileActivated) {
	snap := s.Snapshot()
	if snap.Mode == domain.ModeEdit {
		s.log.Debug("activation ignored in edit mode", "app", in.AppID)
		return
	}
	idx := domain.FindByID(snap.Apps, in.AppID)
	if idx < 0 {
		s.fail("unknown app "+in.AppID, nil)
		return
	}
	app := snap.Apps[idx]

	if s.launcher != nil {
		req := launcher.Request{App: app, URL: in.URL, Background: in.IsAlt}
		if err := s.launcher.Open(s.ctx, req); err != nil {
			s.fail("could not open "+app.Name, err)
			return
		}
	}
	s.log.Info("opened", "app", app.ID, "url", in.URL, "background", in.IsAlt, "keep_open", in.IsShift)

	if s.launches != nil {
		if _, err := s.launches.Insert(s.ctx, repository.Launch{AppID: app.ID, URL: in.URL, Background: in.IsAlt}); err != nil {
			s.log.Warn("record launch", "app", app.ID, "err", err)
		}
	}

	keepOpen := in.IsShift || s.keepOpen
	s.update(func(st *State) {
		st.Status = "opened in " + app.Name
		st.StatusErr = false
		st.Dismissed = !keepOpen
	})
}

// NormalizeHotkey lower-cases value and reports whether it is an acceptable
// hotkey: empty, or a single letter or digit. Whitespace is not empty.
func NormalizeHotkey(value string) (string, bool) {
	v := strings.ToLower(value)
	if v == "" {
		return "", true
	}
	if utf8.RuneCountInString(v) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(v)
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return "", false
	}
	return v, true
}

func (s *Store) changeHotkey(in intent.HotkeyChanged) {
	key, ok := NormalizeHotkey(in.Value)
	if !ok {
		// notify anyway so the tile's input falls back to the stored value
		s.update(func(st *State) {
			st.Status = "hotkey must be a single letter or digit"
			st.StatusErr = true
		})
		return
	}
	if s.apps != nil {
		if err := s.apps.SetHotkey(s.ctx, in.AppID, key); err != nil {
			s.fail("could not save hotkey", err)
			return
		}
	}
	s.update(func(st *State) {
		idx := domain.FindByID(st.Apps, in.AppID)
		if idx < 0 {
			return
		}
		apps := slices.Clone(st.Apps)
		if key != "" {
			for i := range apps {
				if i != idx && apps[i].Hotkey == key {
					apps[i].Hotkey = ""
				}
			}
		}
		apps[idx].Hotkey = key
		st.Apps = apps
		st.Status = ""
		st.StatusErr = false
	})
}

func (s *Store) toggleFavorite(in intent.FavoriteToggled) {
	snap := s.Snapshot()
	idx := domain.FindByID(snap.Apps, in.AppID)
	if idx < 0 {
		s.fail("unknown app "+in.AppID, nil)
		return
	}
	newFav := in.AppID
	if snap.Apps[idx].IsFav {
		newFav = ""
	}
	if s.apps != nil {
		if err := s.apps.SetFavorite(s.ctx, newFav); err != nil {
			s.fail("could not save favourite", err)
			return
		}
	}
	s.update(func(st *State) {
		apps := slices.Clone(st.Apps)
		for i := range apps {
			apps[i].IsFav = apps[i].ID == newFav
		}
		st.Apps = apps
	})
}

func (s *Store) toggleVisibility(in intent.VisibilityToggled) {
	snap := s.Snapshot()
	idx := domain.FindByID(snap.Apps, in.AppID)
	if idx < 0 {
		s.fail("unknown app "+in.AppID, nil)
		return
	}
	visible := !snap.Apps[idx].IsVisible
	if s.apps != nil {
		if err := s.apps.SetVisible(s.ctx, in.AppID, visible); err != nil {
			s.fail("could not save visibility", err)
			return
		}
	}
	s.update(func(st *State) {
		apps := slices.Clone(st.Apps)
		if i := domain.FindByID(apps, in.AppID); i >= 0 {
			apps[i].IsVisible = visible
		}
		st.Apps = apps
	})
}

func (s *Store) fail(msg string, err error) {
	if err != nil {
		s.log.Error(msg, "err", err)
		msg += ": " + err.Error()
	} else {
		s.log.Warn(msg)
	}
	s.update(func(st *State) {
		st.Status = msg
		st.StatusErr = true
	})
}
