package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/progress"
)

// Range names the subset of questions a quiz covers. Besides the three
// constants it may be any category ID. It is stored verbatim in history
// entries, so values written by older versions must keep resolving.
type Range string

const (
	RangeAll        Range = "all"
	RangeFavorites  Range = "favorites"
	RangeUnmastered Range = "unmastered"
)

// ErrUnknownRange is returned by Resolve for a range that is neither a
// built-in range nor a category ID.
var ErrUnknownRange = errors.New("unknown quiz range")

// Selection is a resolved range: the questions to step through, in catalog
// order, and a label for display and history.
type Selection struct {
	Range   Range
	Label   string
	Matches []catalog.Match
}

// Len returns the number of questions in the selection.
func (s Selection) Len() int {
	return len(s.Matches)
}

// Option is one entry of the range picker.
type Option struct {
	Range Range
	Label string
	Count int
}

// Resolve returns the questions covered by r. Favorites and unmastered are
// evaluated against p at call time.
func Resolve(c *catalog.Catalog, p *progress.Store, r Range) (Selection, error) {
	switch r {
	case RangeAll:
		return Selection{Range: r, Label: "全部题目", Matches: c.AllMatches()}, nil
	case RangeFavorites:
		return Selection{Range: r, Label: "收藏题目", Matches: filter(c.AllMatches(), func(id string) bool {
			return p.IsFavorite(id)
		})}, nil
	case RangeUnmastered:
		return Selection{Range: r, Label: "未掌握题目", Matches: filter(c.AllMatches(), func(id string) bool {
			return !p.IsMastered(id)
		})}, nil
	}

	cat := c.CategoryByID(string(r))
	if cat == nil {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownRange, string(r))
	}
	matches := make([]catalog.Match, len(cat.Questions))
	for i := range cat.Questions {
		matches[i] = catalog.Match{Question: &cat.Questions[i], Category: cat}
	}
	return Selection{Range: r, Label: cat.Name, Matches: matches}, nil
}

// Options lists the ranges a user can pick from with their current sizes:
// the built-in ranges first, then one per category.
func Options(c *catalog.Catalog, p *progress.Store) []Option {
	ranges := []Range{RangeAll, RangeFavorites, RangeUnmastered}
	for _, cat := range c.Categories() {
		ranges = append(ranges, Range(cat.ID))
	}

	opts := make([]Option, 0, len(ranges))
	for _, r := range ranges {
		sel, err := Resolve(c, p, r)
		if err != nil {
			continue
		}
		opts = append(opts, Option{Range: r, Label: sel.Label, Count: sel.Len()})
	}
	return opts
}

func filter(all []catalog.Match, keep func(id string) bool) []catalog.Match {
	out := make([]catalog.Match, 0, len(all))
	for _, m := range all {
		if keep(m.Question.ID) {
			out = append(out, m)
		}
	}
	return out
}
