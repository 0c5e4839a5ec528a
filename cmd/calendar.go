package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/habit/internal/cli"
	"github.com/theirongolddev/habit/internal/model"
	"github.com/theirongolddev/habit/internal/window"

	"github.com/spf13/cobra"
)

var flagRadius int

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the date strip with logged-day markers",
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().IntVarP(&flagRadius, "radius", "r", 0, "Days on each side of today (default from config)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ctrl, cleanup, err := openController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	radius := cfg.General.WindowRadius
	if flagRadius > 0 {
		radius = flagRadius
	}
	win := window.New(time.Now(), radius)

	fmt.Println()
	fmt.Println(cli.RenderHeader("  CALENDAR"))
	fmt.Println()

	for _, d := range win.Days() {
		mark := " "
		if ctrl.HasEntry(d) {
			mark = cli.RenderAccent("•")
		}

		line := fmt.Sprintf("%s  %s %2d %s  %s",
			model.DayKey(d), cli.FormatDayOfWeek(d), d.Day(), cli.FormatMonth(d), mark)
		switch {
		case win.IsToday(d):
			fmt.Printf("  %s %s\n", cli.RenderAccent("▶"), cli.RenderValue(line))
		default:
			fmt.Printf("    %s\n", cli.RenderMuted(line))
		}
	}

	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderDim(fmt.Sprintf("%d days logged in this window", countLogged(ctrl, win))))
	fmt.Println()
	return nil
}

type entryChecker interface {
	HasEntry(time.Time) bool
}

func countLogged(ctrl entryChecker, win *window.Window) int {
	n := 0
	for _, d := range win.Days() {
		if ctrl.HasEntry(d) {
			n++
		}
	}
	return n
}
