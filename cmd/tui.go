package cmd

import (
	"fmt"

	"github.com/theirongolddev/habit/internal/config"
	"github.com/theirongolddev/habit/internal/store"
	"github.com/theirongolddev/habit/internal/syncer"
	"github.com/theirongolddev/habit/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive tracker",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The TUI performs the initial load itself, showing a spinner and
	// keeping controls inert until the ledger state is known.
	st, err := store.Open(config.StatePath(cfg), nil)
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	ctrl := syncer.New(st, nil)
	defer func() {
		ctrl.Close()
		_ = st.Close()
	}()

	app := tui.NewApp(ctrl, cfg.General.WindowRadius, defaultTheme(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
