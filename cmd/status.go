package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/habit/internal/cli"
	"github.com/theirongolddev/habit/internal/model"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's progress",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ctrl, cleanup, err := openController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	now := time.Now()
	rec := ctrl.Record(now)
	profile := ctrl.Profile()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Good %s, %s!", cli.Greeting(now), profile.Name)))
	fmt.Println()
	fmt.Printf("  %s · Day %d\n", cli.RenderMuted(cli.FormatDate(now)), profile.CurrentDay)
	fmt.Println()

	for _, m := range model.Metrics {
		if !m.Counted() {
			continue
		}
		cur := rec.Count(m)
		fmt.Println(cli.MetricRow(
			metricLabel(m),
			cli.Bar(cur, m.Max(), 10),
			cli.FormatCount(cur, m.Max()),
			m.Unit(),
		))
	}
	fmt.Printf("  %s%s\n", cli.RenderMuted(padLabel("Clean food")), cleanFoodText(rec))
	fmt.Println()

	if !ctrl.HasEntry(now) {
		fmt.Println(cli.RenderDim("  Nothing logged yet today. Try `habit log hydration +`."))
		fmt.Println()
	}
	return nil
}

func metricLabel(m model.Metric) string {
	switch m {
	case model.Hydration:
		return "Hydration"
	case model.Workouts:
		return "Workouts"
	case model.Reading:
		return "Reading"
	default:
		return "Clean food"
	}
}

func cleanFoodText(rec model.Record) string {
	if rec.CleanFood {
		return cli.RenderGood("Ate on-plan ✓")
	}
	return cli.RenderDim("not yet checked")
}

func padLabel(s string) string {
	for len(s) < 12 {
		s += " "
	}
	return s
}
