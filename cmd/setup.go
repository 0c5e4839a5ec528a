package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habit/internal/config"
	"github.com/theirongolddev/habit/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ctrl, cleanup, err := openController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	name := ctrl.Profile().Name
	themeName := string(ctrl.Theme())
	radius := fmt.Sprintf("%d", cfg.General.WindowRadius)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				CharLimit(40).
				Value(&name),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Light", "light"),
					huh.NewOption("Dark", "dark"),
				).
				Value(&themeName),
			huh.NewSelect[string]().
				Title("Calendar window (days each side of today)").
				Options(
					huh.NewOption("5", "5"),
					huh.NewOption("10", "10"),
					huh.NewOption("15", "15"),
				).
				Value(&radius),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	p := ctrl.Profile()
	if n := strings.TrimSpace(name); n != "" {
		p.Name = n
	}
	if err := ctrl.SetProfile(p); err != nil {
		return err
	}
	if err := ctrl.SetTheme(model.ParseTheme(themeName, ctrl.Theme())); err != nil {
		return err
	}

	switch radius {
	case "5":
		cfg.General.WindowRadius = 5
	case "15":
		cfg.General.WindowRadius = 15
	default:
		cfg.General.WindowRadius = 10
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  All set, %s. Run `habit` to see today.\n", p.Name)
	fmt.Println()
	return nil
}
