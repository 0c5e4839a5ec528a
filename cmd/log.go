package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/habit/internal/cli"
	"github.com/theirongolddev/habit/internal/ledger"
	"github.com/theirongolddev/habit/internal/model"

	"github.com/spf13/cobra"
)

var flagLogDate string

var logCmd = &cobra.Command{
	Use:   "log <metric> [+|-|value]",
	Short: "Log progress for a metric",
	Long: `Log progress for one of today's metrics.

  habit log hydration +     one more glass
  habit log reading -       one page fewer
  habit log workouts 2      set the session count
  habit log clean           toggle the clean-food flag

Only today can be edited; past and future days are read-only.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagLogDate, "date", "", "Target day (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	metric, err := model.ParseMetric(args[0])
	if err != nil {
		return err
	}

	target := time.Now()
	if flagLogDate != "" {
		target, err = model.ParseDayKey(flagLogDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	cfg := loadConfig()
	ctrl, cleanup, err := openController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var rec model.Record
	switch {
	case metric == model.CleanFood:
		rec, err = ctrl.ToggleCleanFood(target)
	case len(args) < 2 || args[1] == "+":
		rec, err = ctrl.Increment(target, metric)
	case args[1] == "-":
		rec, err = ctrl.Decrement(target, metric)
	default:
		value, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return fmt.Errorf("want +, -, or a number, got %q", args[1])
		}
		rec, err = ctrl.Set(target, metric, value)
	}
	if err != nil {
		if errors.Is(err, ledger.ErrNotEditable) {
			return fmt.Errorf("%s is not editable: entries are same-day only", model.DayKey(target))
		}
		return err
	}

	fmt.Println()
	if metric == model.CleanFood {
		fmt.Printf("  Clean food: %s\n", cleanFoodText(rec))
	} else {
		cur := rec.Count(metric)
		fmt.Println(cli.MetricRow(
			metricLabel(metric),
			cli.Bar(cur, metric.Max(), 10),
			cli.FormatCount(cur, metric.Max()),
			metric.Unit(),
		))
	}
	fmt.Println()
	return nil
}
