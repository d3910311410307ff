package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AppRepo handles apps.
type AppRepo struct {
	db *sql.DB
}

func NewAppRepo(db *sql.DB) *AppRepo { return &AppRepo{db: db} }

const appColumns = `id, name, command, is_visible, is_fav, hotkey, sort_order`

func (r *AppRepo) Upsert(ctx context.Context, a App) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO apps(id, name, command, is_visible, is_fav, hotkey, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name, command=excluded.command, is_visible=excluded.is_visible,
	 is_fav=excluded.is_fav, hotkey=excluded.hotkey, sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, a.ID, a.Name, a.Command, a.IsVisible, a.IsFav, a.Hotkey, a.SortOrder)
	return err
}

func (r *AppRepo) Get(ctx context.Context, id string) (App, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+appColumns+` FROM apps WHERE id = ?`, id)
	a, err := scanApp(row)
	if errors.Is(err, sql.ErrNoRows) {
		return App{}, fmt.Errorf("%s: %w", id, ErrAppNotFound)
	}
	return a, err
}

func (r *AppRepo) List(ctx context.Context) ([]App, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+appColumns+` FROM apps ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []App
	for rows.Next() {
		a, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM apps`).Scan(&n)
	return n, err
}

// SetHotkey assigns key to id and clears it from any other app, so a hotkey
// always has at most one owner.
func (r *AppRepo) SetHotkey(ctx context.Context, id, key string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if key != "" {
		if _, err := tx.ExecContext(ctx, `UPDATE apps SET hotkey = '', updated_at=CURRENT_TIMESTAMP WHERE hotkey = ? AND id <> ?`, key, id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	res, err := tx.ExecContext(ctx, `UPDATE apps SET hotkey = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, key, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := requireRow(res, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// SetFavorite makes id the only favourite. An empty id clears it.
func (r *AppRepo) SetFavorite(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE apps SET is_fav = 0, updated_at=CURRENT_TIMESTAMP WHERE is_fav = 1`); err != nil {
		_ = tx.Rollback()
		return err
	}
	if id != "" {
		res, err := tx.ExecContext(ctx, `UPDATE apps SET is_fav = 1, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, id)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := requireRow(res, id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *AppRepo) SetVisible(ctx context.Context, id string, visible bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE apps SET is_visible = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, visible, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApp(s rowScanner) (App, error) {
	var a App
	err := s.Scan(&a.ID, &a.Name, &a.Command, &a.IsVisible, &a.IsFav, &a.Hotkey, &a.SortOrder)
	return a, err
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrAppNotFound)
	}
	return nil
}
