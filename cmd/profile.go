package cmd

import (
	"fmt"

	"github.com/theirongolddev/habit/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagProfileName string
	flagProfileDay  int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the user profile",
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagProfileName, "name", "", "Set the display name")
	profileCmd.Flags().IntVar(&flagProfileDay, "day", 0, "Set the day counter")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ctrl, cleanup, err := openController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	p := ctrl.Profile()
	changed := false
	if flagProfileName != "" {
		p.Name = flagProfileName
		changed = true
	}
	if flagProfileDay > 0 {
		p.CurrentDay = flagProfileDay
		changed = true
	}
	if changed {
		if err := ctrl.SetProfile(p); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  Name:      %s\n", cli.RenderValue(p.Name))
	fmt.Printf("  Day:       %s\n", cli.RenderValue(fmt.Sprintf("%d", p.CurrentDay)))
	fmt.Printf("  Started:   %s\n", cli.RenderMuted(cli.FormatDate(p.StartDate)))
	fmt.Printf("  Theme:     %s\n", cli.RenderMuted(string(ctrl.Theme())))
	fmt.Println()
	return nil
}
