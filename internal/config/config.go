package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	UI       UIConfig       `toml:"ui"`
	Launch   LaunchConfig   `toml:"launch"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent    string `toml:"accent"`
	TileWidth int    `mapstructure:"tile_width" toml:"tile_width"`
	Columns   int    `toml:"columns"` // 0 = fit to terminal width
}

// LaunchConfig controls what happens after a URL is opened.
type LaunchConfig struct {
	KeepOpen bool `mapstructure:"keep_open" toml:"keep_open"`
}

// LogConfig holds the log file location and level.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// MinTileWidth is the narrowest tile that still fits both overlay buttons.
const MinTileWidth = 10

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "browserpick", "browserpick.db"))
	v.SetDefault("ui.accent", "#f5c2e7")
	v.SetDefault("ui.tile_width", 14)
	v.SetDefault("ui.columns", 0)
	v.SetDefault("launch.keep_open", false)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "browserpick", "browserpick.log"))
	v.SetDefault("log.level", "info")
}

// Path returns the config file location: BROWSERPICK_CONFIG or the default.
func Path() string {
	if p := os.Getenv("BROWSERPICK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "browserpick", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix BROWSERPICK_.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back to
// BROWSERPICK_CONFIG, then to the default config directory.
func LoadFile(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("BROWSERPICK_CONFIG")
	}
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "browserpick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BROWSERPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit file that does not exist is not an error either
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings the UI cannot work with.
func (c Config) Validate() error {
	if c.UI.TileWidth < MinTileWidth {
		return fmt.Errorf("ui.tile_width must be at least %d, got %d", MinTileWidth, c.UI.TileWidth)
	}
	if c.UI.Columns < 0 {
		return fmt.Errorf("ui.columns must not be negative, got %d", c.UI.Columns)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.tile_width", cfg.UI.TileWidth)
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("launch.keep_open", cfg.Launch.KeepOpen)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
