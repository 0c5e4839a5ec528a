// Package config handles the habit TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all habit configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DataDir overrides where the state database lives.
	DataDir string `toml:"data_dir,omitempty"`
	// WindowRadius is the number of days shown on each side of today
	// in the calendar strip.
	WindowRadius int `toml:"window_radius"`
}

// AppearanceConfig holds theme settings. The active theme itself is
// stored with the tracked data; DefaultTheme only seeds a fresh store.
// Empty means "follow the terminal background".
type AppearanceConfig struct {
	DefaultTheme string `toml:"default_theme,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			WindowRadius: 10,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "habit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "habit")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.WindowRadius < 0 {
		cfg.General.WindowRadius = 0
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataDir resolves the state directory: the config override when set,
// otherwise the XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "habit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "habit")
}

// StatePath returns the full path to the state database.
func StatePath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "habit.db")
}
