package stats

import (
	"bytes"
	"log"
	"testing"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/store"
)

func TestSummarize(t *testing.T) {
	c := catalog.New([]catalog.Category{
		{ID: "css", Name: "CSS", Questions: []catalog.Question{{ID: "css001"}, {ID: "css002"}}},
		{ID: "http", Name: "HTTP", Questions: []catalog.Question{{ID: "http001"}}},
		{ID: "empty", Name: "Empty"},
	})

	var buf bytes.Buffer
	p := progress.New(store.NewMemory(), progress.Options{Logger: log.New(&buf, "", 0)})
	p.ToggleMastered("css001")
	p.ToggleMastered("removed-question")
	p.ToggleFavorite("http001")

	s := Summarize(c, p)

	if s.Mastered != 1 || s.Total != 3 {
		t.Errorf("overall = %d/%d, want 1/3", s.Mastered, s.Total)
	}
	if s.Favorites != 1 {
		t.Errorf("Favorites = %d, want 1", s.Favorites)
	}
	if s.LastVisit == "" {
		t.Error("expected LastVisit to be set after a mutation")
	}
	if len(s.Categories) != 3 {
		t.Fatalf("len(Categories) = %d, want 3", len(s.Categories))
	}

	css := s.Categories[0]
	if css.Category.ID != "css" || css.Mastered != 1 || css.Total != 2 {
		t.Errorf("css = %+v", css)
	}
	if css.Ratio() != 0.5 {
		t.Errorf("css ratio = %v, want 0.5", css.Ratio())
	}
	if r := s.Categories[2].Ratio(); r != 0 {
		t.Errorf("empty category ratio = %v, want 0", r)
	}
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	p := progress.New(store.NewMemory(), progress.Options{Logger: log.New(&buf, "", 0)})

	s := Summarize(catalog.New(nil), p)
	if s.Total != 0 || s.Ratio() != 0 || len(s.Categories) != 0 {
		t.Errorf("Summarize(empty) = %+v", s)
	}
}
