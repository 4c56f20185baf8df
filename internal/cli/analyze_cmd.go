package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattjessup/slipwatch/internal/cli/formatter"
	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/intelligence"
)

const dateLayout = "2006-01-02"

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		mode    string
		dateStr string
		perTask bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a schedule analysis without going through the resolver",
		Long: `Run one analysis directly against the active plan.

Modes:
  holiday   tasks that start or end on a federal holiday
  weekend   project delay estimate if no weekend work is allowed
  date      tasks active on a specific date (requires --date)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if perTask {
				if mode != "weekend" {
					return fmt.Errorf("--per-task only applies to weekend mode")
				}
				findings, err := app.Analysis.WeekendTaskFindings(ctx)
				if err != nil {
					return err
				}
				if len(findings) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tasks start or end on a weekend.")
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFindings(findings))
				return nil
			}

			intent := intelligence.QueryIntent{}
			switch mode {
			case "holiday":
				intent.Type = domain.QueryHolidayImpact
			case "weekend":
				intent.Type = domain.QueryWeekendImpact
			case "date":
				if dateStr == "" {
					return fmt.Errorf("date mode requires --date YYYY-MM-DD")
				}
				d, err := time.Parse(dateLayout, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				intent.Type = domain.QuerySpecificDate
				intent.SpecificDate = &d
			default:
				return fmt.Errorf("unknown mode %q (want holiday, weekend, or date)", mode)
			}

			result, err := app.Analysis.Analyze(ctx, intent)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnalysis(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "holiday", "analysis mode: holiday, weekend, or date")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "target date for date mode (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&perTask, "per-task", false, "weekend mode: list tasks touching weekends instead of the delay estimate")
	return cmd
}
