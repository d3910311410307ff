package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// LaunchRepo records opened URLs.
type LaunchRepo struct {
	db *sql.DB
}

func NewLaunchRepo(db *sql.DB) *LaunchRepo { return &LaunchRepo{db: db} }

// Insert stores l, assigning an id and timestamp when missing.
func (r *LaunchRepo) Insert(ctx context.Context, l Launch) (Launch, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.LaunchedAt.IsZero() {
		l.LaunchedAt = time.Now().UTC().Truncate(time.Second)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO launches(id, app_id, url, background, launched_at) VALUES (?, ?, ?, ?, ?)
	`, l.ID, l.AppID, l.URL, l.Background, l.LaunchedAt)
	return l, err
}

// Recent returns the newest launches first.
func (r *LaunchRepo) Recent(ctx context.Context, limit int) ([]Launch, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, app_id, url, background, launched_at FROM launches
	ORDER BY launched_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Launch
	for rows.Next() {
		var l Launch
		if err := rows.Scan(&l.ID, &l.AppID, &l.URL, &l.Background, &l.LaunchedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
