package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/campaignforge/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine export directory: env var or current working directory.
	exportDir := os.Getenv("CAMPAIGNFORGE_DIR")
	if exportDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("finding working directory: %w", err)
		}
		exportDir = wd
	}
	if stat, err := os.Stat(exportDir); err != nil || !stat.IsDir() {
		return fmt.Errorf("export directory %s does not exist", exportDir)
	}

	app := &cli.App{
		ExportDir: exportDir,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
