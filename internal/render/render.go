// Package render turns questions into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/abhisek/prepdeck/internal/catalog"
)

// Glamour standard style names accepted by Markdown.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty" // no colors, for pipes and files
	StyleASCII = "ascii"
)

// QuestionMarkdown assembles the markdown document shown for q: the title,
// difficulty and tags, the answer, and the code sample if any.
func QuestionMarkdown(q *catalog.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", q.Title)
	fmt.Fprintf(&b, "*%s*", q.Difficulty.Label())
	for _, t := range q.Tags {
		fmt.Fprintf(&b, " `%s`", t)
	}
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(q.Answer))
	b.WriteString("\n")
	if q.HasCode() {
		b.WriteString("\n```javascript\n")
		b.WriteString(strings.TrimRight(q.Code, "\n"))
		b.WriteString("\n```\n")
	}
	return b.String()
}

// AnswerMarkdown is QuestionMarkdown without the title block, for views
// that show the title separately.
func AnswerMarkdown(q *catalog.Question) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(q.Answer))
	b.WriteString("\n")
	if q.HasCode() {
		b.WriteString("\n```javascript\n")
		b.WriteString(strings.TrimRight(q.Code, "\n"))
		b.WriteString("\n```\n")
	}
	return b.String()
}

// Markdown renders md with glamour, wrapped to width. If glamour fails the
// source is returned word-wrapped so there is always something to show.
func Markdown(md string, width int, style string) (string, error) {
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = StyleDark
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(md, width), fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return wordwrap.String(md, width), fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Lines splits rendered text into lines, dropping trailing blank lines.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Truncate shortens s to at most width cells, ending in an ellipsis when
// cut. ANSI sequences are preserved.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
