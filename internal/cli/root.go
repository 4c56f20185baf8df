package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattjessup/slipwatch/internal/calendar"
	"github.com/mattjessup/slipwatch/internal/service"
)

// App holds references to the services and the calendar oracle used by
// CLI commands.
type App struct {
	Plans    service.PlanService
	Analysis service.AnalysisService
	Calendar calendar.Oracle

	// LLMEnabled controls the hints shown when the resolver is running in
	// keyword-only mode.
	LLMEnabled bool

	// IsInteractive reports whether stdin is a terminal; confirmations are
	// skipped when it is not.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "slipwatch" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "slipwatch",
		Short: "Holiday and weekend exposure analysis for project schedules",
	}

	root.AddCommand(
		newLoadCmd(app),
		newPlansCmd(app),
		newTasksCmd(app),
		newAnalyzeCmd(app),
		newAskCmd(app),
		newCalendarCmd(app),
		newChatCmd(app),
	)

	return root
}
