package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <category> <question>",
	Short: "Toggle the mastered mark of a question",
	Long:  "Toggle the mastered mark of a question, or its favorite mark with --favorite.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeck(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		l := d.Catalog.QuestionByID(args[0], args[1])
		if !l.Found() {
			return fmt.Errorf("no question %q in category %q", args[1], args[0])
		}
		id := l.Question.ID

		out := cmd.OutOrStdout()
		if fav, _ := cmd.Flags().GetBool("favorite"); fav {
			if d.Progress.ToggleFavorite(id) {
				fmt.Fprintf(out, "%s added to favorites\n", id)
			} else {
				fmt.Fprintf(out, "%s removed from favorites\n", id)
			}
			return nil
		}
		if d.Progress.ToggleMastered(id) {
			fmt.Fprintf(out, "%s marked as mastered\n", id)
		} else {
			fmt.Fprintf(out, "%s no longer mastered\n", id)
		}
		return nil
	},
}

func init() {
	markCmd.Flags().Bool("favorite", false, "Toggle the favorite mark instead")
}
