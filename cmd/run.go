package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/deck"
)

// runApp opens the deck and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)
	logFile, err := cfg.ResolveLogFile()
	if err != nil {
		return fmt.Errorf("resolve log file: %w", err)
	}

	d, err := deck.Open(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(d, app.Options{LogFile: logFile})
}
