package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattjessup/slipwatch/internal/cli/formatter"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List and manage imported plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.ListPlans(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "activate <plan-id>",
			Short: "Make a previously imported plan the active one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Plans.ActivatePlan(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Activated.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <plan-id>",
			Short: "Delete a plan and its tasks",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Plans.DeletePlan(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
				return nil
			},
		},
	)

	return cmd
}

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Show the active plan's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, tasks, err := app.Plans.ActiveTasks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskTable(plan, tasks))
			return nil
		},
	}
}
