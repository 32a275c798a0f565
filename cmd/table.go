package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/padding"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/render"
)

// cell fits s into exactly w terminal columns. Wide characters count as
// two columns, so CJK titles line up.
func cell(s string, w int) string {
	return padding.String(render.Truncate(s, w), uint(w))
}

func printMatchHeader(w io.Writer) {
	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		cell("Category", 12), cell("ID", 12), cell("Level", 12), "  ", "Title")
	fmt.Fprintln(w, strings.Repeat("─", 90))
}

func printMatch(w io.Writer, m catalog.Match, mastered, favorite bool) {
	marks := []byte("  ")
	if mastered {
		marks[0] = 'M'
	}
	if favorite {
		marks[1] = 'F'
	}
	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		cell(m.Category.ID, 12), cell(m.Question.ID, 12), cell(m.Question.Difficulty.Label(), 12),
		marks, render.Truncate(m.Question.Title, 48))
}
