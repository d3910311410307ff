package repository

import (
	"errors"
	"time"
)

// ErrAppNotFound is returned when an app id has no row.
var ErrAppNotFound = errors.New("app not found")

// App represents an apps row.
type App struct {
	ID        string
	Name      string
	Command   string
	IsVisible bool
	IsFav     bool
	Hotkey    string
	SortOrder int
}

// Launch represents one opened URL.
type Launch struct {
	ID         string
	AppID      string
	URL        string
	Background bool
	LaunchedAt time.Time
}
