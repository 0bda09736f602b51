package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/campaignforge/internal/cli/formatter"
	"github.com/alexanderramin/campaignforge/internal/export"
	"github.com/alexanderramin/campaignforge/internal/generation"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var flags campaignFlags
	var csvPath string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the week-indexed execution timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := flags.toData()
			if err != nil {
				return err
			}

			rows := generation.GenerateTimeline(data.CampaignPhases, data.SelectedPlatforms)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(rows))

			if csvPath == "" {
				return nil
			}
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", csvPath, err)
			}
			defer f.Close()
			if err := export.WriteTimelineCSV(f, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", formatter.Dim("Timeline written to "+csvPath))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the timeline to a CSV file")
	return cmd
}
