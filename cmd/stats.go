package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/stats"
	"github.com/abhisek/prepdeck/internal/ui/components"
)

const statsBarWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sum := stats.Summarize(d.Catalog, d.Progress)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s  %s  %9s  %s\n", cell("Category", 16), cell("Progress", statsBarWidth+2), "Mastered", "")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, c := range sum.Categories {
			fmt.Fprintf(out, "%s  %s  %9s  %3.0f%%\n",
				cell(c.Category.Name, 16),
				components.ASCIIBar(c.Mastered, c.Total, statsBarWidth),
				fmt.Sprintf("%d/%d", c.Mastered, c.Total),
				c.Ratio()*100)
		}
		fmt.Fprintln(out, strings.Repeat("─", 70))
		fmt.Fprintf(out, "%s  %s  %9s  %3.0f%%\n",
			cell("Total", 16),
			components.ASCIIBar(sum.Mastered, sum.Total, statsBarWidth),
			fmt.Sprintf("%d/%d", sum.Mastered, sum.Total),
			sum.Ratio()*100)

		fmt.Fprintf(out, "\nFavorites: %d   Quizzes: %d", sum.Favorites, d.History.Count())
		if sum.LastVisit != "" {
			fmt.Fprintf(out, "   Last visit: %s", sum.LastVisit)
		}
		fmt.Fprintln(out)
		return nil
	},
}
