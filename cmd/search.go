package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search question titles and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		keyword := strings.Join(args, " ")
		matches := d.Catalog.Search(keyword)
		out := cmd.OutOrStdout()
		if len(matches) == 0 {
			fmt.Fprintf(out, "No questions match %q\n", keyword)
			return nil
		}

		printMatchHeader(out)
		for _, m := range matches {
			printMatch(out, m, d.Progress.IsMastered(m.Question.ID), d.Progress.IsFavorite(m.Question.ID))
		}
		fmt.Fprintf(out, "\n%d questions\n", len(matches))
		return nil
	},
}
