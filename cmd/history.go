package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		entries := d.History.Entries()
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No quiz history yet")
			return nil
		}

		fmt.Fprintf(out, "%s  %-8s  %-9s  %-9s  %s\n", cell("Started", 16), "Duration", "Viewed", "Mastered", "Range")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, e := range entries {
			dur := e.Duration().Round(time.Second)
			fmt.Fprintf(out, "%s  %-8s  %-9s  %-9d  %s\n",
				cell(e.StartTime.Local().Format("2006-01-02 15:04"), 16),
				dur,
				fmt.Sprintf("%d/%d", e.ViewedCount, e.TotalCount),
				e.MasteredCount,
				e.RangeLabel)
		}
		fmt.Fprintf(out, "\n%d runs\n", len(entries))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		n := d.History.Count()
		d.History.Clear()
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries\n", n)
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}
