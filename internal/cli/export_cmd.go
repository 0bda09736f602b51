package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/campaignforge/internal/cli/formatter"
	"github.com/alexanderramin/campaignforge/internal/export"
	"github.com/alexanderramin/campaignforge/internal/generation"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var flags campaignFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the campaign plan (data + prompt script) as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := flags.toData()
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = filepath.Join(app.ExportDir, export.DefaultPlanFile)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			prompts := generation.GeneratePrompts(data)
			if err := export.NewExporter().WritePlan(f, data, prompts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.Dim("Campaign plan written to "+outPath))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default campaign_plan.json in the export directory)")
	return cmd
}
