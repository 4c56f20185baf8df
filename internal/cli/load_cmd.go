package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mattjessup/slipwatch/internal/cli/formatter"
)

func newLoadCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "load <file.xlsx>",
		Short: "Import an MS Project Excel export as the active plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// A new import replaces the active plan; ask before doing that
			// interactively.
			if !yes && app.interactive() {
				if current, _, err := app.Plans.ActiveTasks(ctx); err == nil {
					replace := false
					form := huh.NewForm(huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Replace active plan %q?", current.Name)).
							Description("The old plan stays available under 'slipwatch plans'.").
							Value(&replace),
					))
					if err := form.Run(); err != nil {
						return err
					}
					if !replace {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
				}
			}

			res, err := app.Plans.ImportPlan(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "replace the active plan without asking")
	return cmd
}
