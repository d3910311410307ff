package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/browserpick/internal/config"
	"github.com/jask/browserpick/internal/database"
	"github.com/jask/browserpick/internal/database/repository"
	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/launcher"
	"github.com/jask/browserpick/internal/logging"
	"github.com/jask/browserpick/internal/store"
)

// env is everything a command needs once config, logging and the database
// are up.
type env struct {
	cfg      config.Config
	log      *log.Logger
	db       *sql.DB
	apps     *repository.AppRepo
	launches *repository.LaunchRepo
	launcher launcher.Launcher
	logFile  io.Closer
}

type envFunc func(ctx context.Context, cfgFile string) (*env, error)

func newEnv(ctx context.Context, cfgFile string) (*env, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, logFile, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.OpenAndMigrate(cfg.Database.Path)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	if err := database.SeedDefaults(ctx, db, runtime.GOOS); err != nil {
		_ = db.Close()
		_ = logFile.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	logger.Debug("ready", "db", cfg.Database.Path)
	return &env{
		cfg:      cfg,
		log:      logger,
		db:       db,
		apps:     repository.NewAppRepo(db),
		launches: repository.NewLaunchRepo(db),
		launcher: launcher.New(),
		logFile:  logFile,
	}, nil
}

func (e *env) Close() error {
	dbErr := e.db.Close()
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
	return dbErr
}

// store builds and loads the application store for url.
func (e *env) store(ctx context.Context, url string) (*store.Store, error) {
	s := store.New(ctx, store.Options{
		URL:      url,
		Theme:    domain.Theme{Accent: lipgloss.Color(e.cfg.UI.Accent)},
		Apps:     e.apps,
		Launches: e.launches,
		Launcher: e.launcher,
		Logger:   e.log,
		KeepOpen: e.cfg.Launch.KeepOpen,
	})
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}
