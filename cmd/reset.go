package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear mastered marks, favorites and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset deletes all progress; pass --yes to confirm")
		}

		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		d.Progress.ResetAll()
		fmt.Fprintln(cmd.OutOrStdout(), "All progress and quiz history cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
