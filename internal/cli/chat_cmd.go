package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive question loop over the active plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("chat requires an interactive terminal; use 'slipwatch ask' instead")
			}
			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}
