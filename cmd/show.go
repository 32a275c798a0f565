package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <category> <question>",
	Short: "Print a question with its answer",
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

		style, _ := cmd.Flags().GetString("style")
		if style == "auto" {
			style = detectStyle(os.Stdout)
		}
		width, _ := cmd.Flags().GetInt("width")

		md := render.QuestionMarkdown(l.Question)
		text, err := render.Markdown(md, width, style)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, text)
		fmt.Fprintf(out, "\n%s · %d/%d", l.Category.Name, l.Index+1, len(l.Category.Questions))
		if d.Progress.IsMastered(l.Question.ID) {
			fmt.Fprint(out, " · mastered")
		}
		if d.Progress.IsFavorite(l.Question.ID) {
			fmt.Fprint(out, " · favorite")
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	showCmd.Flags().String("style", "auto", "Markdown style: auto, dark, light, notty or ascii")
	showCmd.Flags().Int("width", 80, "Wrap the answer at this many columns")
}

// detectStyle picks colored output for terminals and plain text otherwise.
func detectStyle(f *os.File) string {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return render.StyleDark
	}
	return render.StyleNoTTY
}
