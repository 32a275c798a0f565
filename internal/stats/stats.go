// Package stats summarizes completion across the catalog.
package stats

import (
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/progress"
)

// CategoryStats is the completion of one category.
type CategoryStats struct {
	Category *catalog.Category
	Mastered int
	Total    int
}

// Ratio returns Mastered/Total, or 0 for an empty category.
func (c CategoryStats) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Mastered) / float64(c.Total)
}

// Summary is the completion of the whole catalog.
type Summary struct {
	Categories []CategoryStats
	Mastered   int // mastered questions present in the catalog
	Total      int
	Favorites  int
	LastVisit  string
}

// Ratio returns overall Mastered/Total, or 0 for an empty catalog.
func (s Summary) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Mastered) / float64(s.Total)
}

// Summarize computes per-category and overall completion. Marks for IDs
// no longer in the catalog are not counted.
func Summarize(c *catalog.Catalog, p *progress.Store) Summary {
	cats := c.Categories()
	sum := Summary{
		Categories: make([]CategoryStats, 0, len(cats)),
		Favorites:  p.FavoritesCount(),
		LastVisit:  p.LastVisit(),
	}
	for i := range cats {
		ids := c.QuestionIDs(cats[i].ID)
		cs := CategoryStats{
			Category: &cats[i],
			Mastered: p.MasteredCountByIDs(ids),
			Total:    len(ids),
		}
		sum.Categories = append(sum.Categories, cs)
		sum.Mastered += cs.Mastered
		sum.Total += cs.Total
	}
	return sum
}
