package progress

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/abhisek/prepdeck/internal/store"
)

// isoMillis matches JavaScript's Date.prototype.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Entry is one completed quiz session. Entries are immutable once added.
type Entry struct {
	ID            string
	StartTime     time.Time
	EndTime       time.Time
	Range         string // all, favorites, unmastered, or a category ID
	RangeLabel    string
	TotalCount    int
	MasteredCount int // marked mastered during the session
	ViewedCount   int
}

// EntryInput is an Entry before the history assigns its ID.
type EntryInput struct {
	StartTime     time.Time
	EndTime       time.Time
	Range         string
	RangeLabel    string
	TotalCount    int
	MasteredCount int
	ViewedCount   int
}

// Duration returns how long the session lasted.
func (e Entry) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

type entryJSON struct {
	ID            string `json:"id"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Range         string `json:"range"`
	RangeLabel    string `json:"rangeLabel"`
	TotalCount    int    `json:"totalCount"`
	MasteredCount int    `json:"masteredCount"`
	ViewedCount   int    `json:"viewedCount"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		ID:            e.ID,
		StartTime:     e.StartTime.UTC().Format(isoMillis),
		EndTime:       e.EndTime.UTC().Format(isoMillis),
		Range:         e.Range,
		RangeLabel:    e.RangeLabel,
		TotalCount:    e.TotalCount,
		MasteredCount: e.MasteredCount,
		ViewedCount:   e.ViewedCount,
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(time.RFC3339, raw.StartTime)
	if err != nil {
		return err
	}
	end, err := time.Parse(time.RFC3339, raw.EndTime)
	if err != nil {
		return err
	}
	*e = Entry{
		ID:            raw.ID,
		StartTime:     start,
		EndTime:       end,
		Range:         raw.Range,
		RangeLabel:    raw.RangeLabel,
		TotalCount:    raw.TotalCount,
		MasteredCount: raw.MasteredCount,
		ViewedCount:   raw.ViewedCount,
	}
	return nil
}

// History is the most-recent-first log of completed quiz sessions, capped
// at MaxHistory entries and persisted after every mutation.
type History struct {
	mu      sync.Mutex
	storage store.Storage
	logger  *log.Logger
	now     func() time.Time
	entries []Entry
}

// NewHistory loads the history from storage. A missing or malformed value
// yields an empty history; NewHistory never fails.
func NewHistory(storage store.Storage, opts Options) *History {
	opts = opts.withDefaults()
	h := &History{
		storage: storage,
		logger:  opts.Logger,
		now:     opts.Now,
		entries: []Entry{},
	}

	var entries []Entry
	if load(storage, HistoryKey, historySchema, &entries, opts.Logger) {
		if len(entries) > MaxHistory {
			entries = entries[:MaxHistory]
		}
		h.entries = entries
	}
	return h
}

// Add records a finished session as the newest entry and returns it.
// The ID is the current Unix time in milliseconds, advanced past the newest
// existing ID when the clock has not moved on.
func (h *History) Add(in EntryInput) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Entry{
		ID:            h.nextIDLocked(),
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Range:         in.Range,
		RangeLabel:    in.RangeLabel,
		TotalCount:    in.TotalCount,
		MasteredCount: in.MasteredCount,
		ViewedCount:   in.ViewedCount,
	}

	entries := make([]Entry, 0, min(len(h.entries)+1, MaxHistory))
	entries = append(entries, entry)
	entries = append(entries, h.entries...)
	if len(entries) > MaxHistory {
		entries = entries[:MaxHistory]
	}
	h.entries = entries

	save(h.storage, HistoryKey, h.entries, h.logger)
	return entry
}

// Clear removes every entry and persists the empty list.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = []Entry{}
	save(h.storage, HistoryKey, h.entries, h.logger)
}

// Entries returns a copy of the entries, newest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Count returns the number of entries.
func (h *History) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) nextIDLocked() string {
	id := h.now().UnixMilli()
	if len(h.entries) > 0 {
		if newest, err := strconv.ParseInt(h.entries[0].ID, 10, 64); err == nil && newest >= id {
			id = newest + 1
		}
	}
	return strconv.FormatInt(id, 10)
}
