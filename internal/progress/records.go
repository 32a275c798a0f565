package progress

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/abhisek/prepdeck/internal/schema"
	"github.com/abhisek/prepdeck/internal/store"
)

// Storage keys. Each store owns its key exclusively.
const (
	ProgressKey = "frontend-interview-progress"
	HistoryKey  = "frontend-interview-history"
)

// MaxHistory is the number of quiz sessions kept; older ones are evicted.
const MaxHistory = 50

// Record is the persisted progress document.
type Record struct {
	Mastered  []string `json:"mastered"`
	Favorites []string `json:"favorites"`
	LastVisit string   `json:"lastVisit"` // YYYY-MM-DD of the last mutation, empty if never
}

// Options configures a Store or History.
type Options struct {
	// Logger receives load and persist warnings. Default: log.Default().
	Logger *log.Logger

	// Now returns the current time. Default: time.Now.
	Now func() time.Time

	// History is cleared by Store.ResetAll. Ignored by NewHistory.
	History *History
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

var progressSchema = &schema.Schema{
	Name: "progress",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mastered":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"favorites": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"lastVisit": map[string]any{"type": "string"},
		},
		"required": []any{"mastered", "favorites"},
	},
}

var countField = map[string]any{"type": "integer", "minimum": 0}

var historySchema = &schema.Schema{
	Name: "history",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":            map[string]any{"type": "string", "minLength": 1},
				"startTime":     map[string]any{"type": "string"},
				"endTime":       map[string]any{"type": "string"},
				"range":         map[string]any{"type": "string"},
				"rangeLabel":    map[string]any{"type": "string"},
				"totalCount":    countField,
				"masteredCount": countField,
				"viewedCount":   countField,
			},
			"required": []any{
				"id", "startTime", "endTime", "range", "rangeLabel",
				"totalCount", "masteredCount", "viewedCount",
			},
		},
	},
}

// load reads key and decodes it into dst. It reports whether dst was
// filled. Absence is silent; read errors and malformed values are logged
// and treated as absence.
func load(s store.Storage, key string, sch *schema.Schema, dst any, logger *log.Logger) bool {
	raw, ok, err := s.GetItem(context.Background(), key)
	if err != nil {
		logger.Printf("warning: read %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := schema.Decode([]byte(raw), sch, dst); err != nil {
		logger.Printf("warning: discarding stored %s: %v", key, err)
		return false
	}
	return true
}

// save serializes v under key. Failures are logged, not returned: the
// caller's in-memory state stays authoritative for the session.
func save(s store.Storage, key string, v any, logger *log.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Printf("warning: encode %s: %v", key, err)
		return
	}
	if err := s.SetItem(context.Background(), key, string(data)); err != nil {
		logger.Printf("warning: save %s: %v", key, err)
	}
}
