// Package cmd implements the habit CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/theirongolddev/habit/internal/config"
	"github.com/theirongolddev/habit/internal/model"
	"github.com/theirongolddev/habit/internal/store"
	"github.com/theirongolddev/habit/internal/syncer"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "habit",
	Short: "Personal daily habit tracker",
	Long:  "Track hydration, workouts, reading, and clean eating, one day at a time.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "State directory (default: XDG data dir)")
}

// loadConfig reads the config file, applying the --data-dir override.
// Config errors degrade to defaults; a broken config file must not
// make the tracker unusable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  config: %v (using defaults)\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// defaultTheme resolves the theme used when none is stored yet: the
// config pin when set, otherwise the terminal background.
func defaultTheme(cfg config.Config) model.Theme {
	if t := model.Theme(cfg.Appearance.DefaultTheme); t.Valid() {
		return t
	}
	if lipgloss.HasDarkBackground() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// openController is the shared startup path for one-shot commands:
// open the store, run the initial load, and hand back a ready
// controller plus a cleanup that flushes pending saves.
func openController(ctx context.Context, cfg config.Config) (*syncer.Controller, func(), error) {
	st, err := store.Open(config.StatePath(cfg), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("opening state: %w", err)
	}

	ctrl := syncer.New(st, nil)
	ctrl.Load(ctx, defaultTheme(cfg))

	cleanup := func() {
		ctrl.Close()
		_ = st.Close()
	}
	return ctrl, cleanup, nil
}
