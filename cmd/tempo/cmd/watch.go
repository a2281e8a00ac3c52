package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tempo/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run a stopwatch and log the elapsed time",
	Long: `Run a stopwatch against a module. Stopping the clock logs the elapsed
time as an entry (rounded to the minute, never below one minute).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.NewModel(appStore).WithView(tui.ViewWatch)
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
