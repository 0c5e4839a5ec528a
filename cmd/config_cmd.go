package cmd

import (
	"fmt"

	"github.com/theirongolddev/habit/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    State database: %s\n", config.StatePath(cfg))
	fmt.Printf("    Window radius:  %d\n", cfg.General.WindowRadius)
	fmt.Println()

	fmt.Println("  [Appearance]")
	if cfg.Appearance.DefaultTheme != "" {
		fmt.Printf("    Default theme: %s\n", cfg.Appearance.DefaultTheme)
	} else {
		fmt.Println("    Default theme: follow terminal background")
	}
	fmt.Println()

	fmt.Println("  Run `habit setup` to reconfigure.")
	return nil
}
