package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Reset wipes launch history and app settings, then reseeds the catalogue
// for goos. The schema is kept so a running picker can continue.
func Reset(ctx context.Context, db *sql.DB, goos string) error {
	if db == nil {
		return fmt.Errorf("reset: db not configured")
	}
	if err := WithTx(db, func(tx *sql.Tx) error {
		for _, t := range []string{"launches", "apps"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = db.ExecContext(ctx, "VACUUM")
	return SeedDefaults(ctx, db, goos)
}
