package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/abhisek/prepdeck/internal/schema"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

//go:embed data/catalog.json
var embeddedCatalog []byte

// ErrInvalidCatalog indicates a catalog document that cannot be used.
type ErrInvalidCatalog struct {
	Err error
}

func (e *ErrInvalidCatalog) Error() string {
	return fmt.Sprintf("invalid catalog: %v", e.Err)
}

func (e *ErrInvalidCatalog) Unwrap() error { return e.Err }

// document is the on-disk catalog format.
type document struct {
	Version    string     `json:"version"`
	Categories []Category `json:"categories"`
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         map[string]any{"type": "string", "minLength": 1},
		"title":      map[string]any{"type": "string", "minLength": 1},
		"difficulty": map[string]any{"type": "integer", "enum": []any{1, 2, 3}},
		"tags":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"answer":     map[string]any{"type": "string"},
		"code":       map[string]any{"type": "string"},
	},
	"required": []any{"id", "title", "difficulty", "tags", "answer"},
}

var catalogSchema = &schema.Schema{
	Name: "catalog",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": map[string]any{"type": "string"},
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "minLength": 1},
						"name":        map[string]any{"type": "string"},
						"icon":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"questions":   map[string]any{"type": "array", "items": questionSchema},
					},
					"required": []any{"id", "name", "questions"},
				},
			},
		},
		"required": []any{"version", "categories"},
	},
}

// Load reads and validates a catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc document
	if err := schema.Decode(raw, catalogSchema, &doc); err != nil {
		return nil, &ErrInvalidCatalog{Err: err}
	}

	if !semver.IsValid(doc.Version) {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("version %q is not a semantic version", doc.Version)}
	}
	if major := semver.Major(doc.Version); major != SupportedMajor {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("unsupported catalog version %s (want %s.x)", doc.Version, SupportedMajor)}
	}

	if err := checkUnique(doc.Categories); err != nil {
		return nil, &ErrInvalidCatalog{Err: err}
	}

	return New(doc.Categories), nil
}

// checkUnique rejects duplicate category IDs and duplicate question IDs
// within a category.
func checkUnique(categories []Category) error {
	seenCat := make(map[string]bool, len(categories))
	for _, c := range categories {
		if seenCat[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		seenCat[c.ID] = true

		seenQ := make(map[string]bool, len(c.Questions))
		for _, q := range c.Questions {
			if seenQ[q.ID] {
				return fmt.Errorf("duplicate question id %q in category %q", q.ID, c.ID)
			}
			seenQ[q.ID] = true
		}
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary. It panics if the
// embedded document is invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(embeddedCatalog))
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
