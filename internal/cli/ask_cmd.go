package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattjessup/slipwatch/internal/cli/formatter"
	"github.com/mattjessup/slipwatch/internal/llm"
	"github.com/mattjessup/slipwatch/internal/repository"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a natural-language question about the active plan",
		Long: `Ask a question in plain English, e.g.:

  slipwatch ask "Which tasks start on a holiday?"
  slipwatch ask "How much would banning weekend work delay us?"
  slipwatch ask "What is happening on July 4th?"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var stopSpinner func()
			if app.LLMEnabled && app.interactive() {
				stopSpinner = formatter.StartSpinner("Thinking...")
			}

			outcome, err := app.Analysis.Ask(cmd.Context(), args[0])
			if stopSpinner != nil {
				stopSpinner()
			}
			if err != nil {
				if errors.Is(err, repository.ErrNoActivePlan) {
					return err
				}
				if errors.Is(err, llm.ErrTimeout) {
					return fmt.Errorf("ask failed: %w (raise SLIPWATCH_LLM_TIMEOUT_MS, e.g. 15000)", err)
				}
				return fmt.Errorf("ask failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAskOutcome(outcome))
			return nil
		},
	}
}
