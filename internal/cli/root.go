package cli

import (
	"github.com/spf13/cobra"
)

// App holds the hosting-shell configuration shared by all commands.
type App struct {
	// ExportDir is where export commands and the TUI write plan files.
	ExportDir string

	// IsInteractive reports whether stdin is attached to a terminal,
	// gating the TUI entrypoint.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "campaignforge" command and registers all
// subcommands against the provided App. Running the bare command on a
// terminal launches the interactive wizard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "campaignforge",
		Short: "Multi-platform campaign builder and prompt sequencer",
		Long: `Campaignforge collects campaign parameters through a guided wizard and
derives a sequential prompt script for generative-text tools plus a
week-indexed execution timeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runWizard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPromptsCmd(app),
		newTimelineCmd(app),
		newExportCmd(app),
	)

	return root
}
