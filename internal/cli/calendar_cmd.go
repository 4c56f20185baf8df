package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattjessup/slipwatch/internal/cli/formatter"
	"github.com/mattjessup/slipwatch/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	var (
		fromStr      string
		toStr        string
		nextStr      string
		businessDays bool
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Inspect the working-day calendar",
		Long: `List non-working days in a range (default: the next 90 days),
count business days with --business-days, or find the next working day
after a date with --next.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if nextStr != "" {
				d, err := time.Parse(dateLayout, nextStr)
				if err != nil {
					return fmt.Errorf("parsing --next: %w", err)
				}
				next := app.Calendar.NextWorkingDay(d)
				fmt.Fprintf(out, "Next working day after %s is %s (%s)\n",
					d.Format(dateLayout), next.Format(dateLayout), next.Weekday())
				return nil
			}

			from := domain.DateOnly(time.Now())
			to := from.AddDate(0, 0, 90)
			var err error
			if fromStr != "" {
				if from, err = time.Parse(dateLayout, fromStr); err != nil {
					return fmt.Errorf("parsing --from: %w", err)
				}
			}
			if toStr != "" {
				if to, err = time.Parse(dateLayout, toStr); err != nil {
					return fmt.Errorf("parsing --to: %w", err)
				}
			}

			if businessDays {
				n := app.Calendar.CountBusinessDays(from, to)
				fmt.Fprintf(out, "%d business days between %s and %s\n",
					n, from.Format(dateLayout), to.Format(dateLayout))
				return nil
			}

			days := app.Calendar.EnumerateNonWorking(from, to)
			fmt.Fprint(out, formatter.FormatNonWorkingDays(from, to, days))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD, default +90 days)")
	cmd.Flags().StringVar(&nextStr, "next", "", "print the next working day after this date")
	cmd.Flags().BoolVar(&businessDays, "business-days", false, "count business days in the range instead of listing")
	return cmd
}
