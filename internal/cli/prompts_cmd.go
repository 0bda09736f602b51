package cli

import (
	"fmt"

	"github.com/alexanderramin/campaignforge/internal/cli/formatter"
	"github.com/alexanderramin/campaignforge/internal/generation"
	"github.com/spf13/cobra"
)

func newPromptsCmd(app *App) *cobra.Command {
	var flags campaignFlags

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Print the sequential prompt script for a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := flags.toData()
			if err != nil {
				return err
			}

			prompts := generation.GeneratePrompts(data)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrompts(prompts))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
