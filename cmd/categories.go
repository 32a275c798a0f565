package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s  %9s  %s\n", cell("ID", 12), cell("Name", 16), "Questions", "Description")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, c := range d.Catalog.Categories() {
			fmt.Fprintf(out, "%s  %s  %9d  %s\n",
				cell(c.ID, 12), cell(c.Name, 16), len(c.Questions), cell(c.Description, 44))
		}
		fmt.Fprintf(out, "\n%d categories, %d questions\n", len(d.Catalog.Categories()), d.Catalog.TotalCount())
		return nil
	},
}
