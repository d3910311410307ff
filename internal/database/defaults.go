package database

import (
	"context"
	"database/sql"

	"github.com/jask/browserpick/internal/catalog"
	"github.com/jask/browserpick/internal/database/repository"
)

// SeedDefaults fills an empty database from the built-in catalogue for goos.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, goos string) error {
	appRepo := repository.NewAppRepo(db)
	n, err := appRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for idx, e := range catalog.ForPlatform(goos) {
		app := repository.App{
			ID:        e.ID,
			Name:      e.Name,
			Command:   e.Command(goos),
			IsVisible: true,
			SortOrder: idx,
		}
		if err := appRepo.Upsert(ctx, app); err != nil {
			return err
		}
	}
	return nil
}
