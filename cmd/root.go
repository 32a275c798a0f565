package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/deck"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Front-end interview question deck",
	Long:  "prepdeck: browse, search and quiz yourself on front-end interview questions in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the storage file (overrides PREPDECK_DB env var)")
	rootCmd.PersistentFlags().String("engine", "", "Storage engine: sqlite, json or memory (overrides PREPDECK_ENGINE env var)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies --db and --engine on top.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if e, _ := cmd.Flags().GetString("engine"); e != "" {
		cfg.Engine = e
	}
	return cfg
}

// openDeck opens the configured storage. Callers must Close the deck.
func openDeck(cmd *cobra.Command) (*deck.Deck, error) {
	return deck.Open(loadConfig(cmd))
}
