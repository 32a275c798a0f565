package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrQuotaExceeded is returned when a write would push the stored size past
// the configured quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Quota wraps a Storage and rejects writes once the combined size of the
// keys and values seen through it would exceed a byte limit. Keys that are
// never read or written through the wrapper are not counted.
type Quota struct {
	inner Storage
	limit int

	mu    sync.Mutex
	sizes map[string]int
	used  int
}

var _ Storage = (*Quota)(nil)

// WithQuota limits inner to maxBytes. A non-positive maxBytes returns inner
// unchanged.
func WithQuota(inner Storage, maxBytes int) Storage {
	if maxBytes <= 0 {
		return inner
	}
	return &Quota{inner: inner, limit: maxBytes, sizes: make(map[string]int)}
}

func (q *Quota) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := q.inner.GetItem(ctx, key)
	if err != nil {
		return "", false, err
	}
	q.mu.Lock()
	q.track(key, v, ok)
	q.mu.Unlock()
	return v, ok, nil
}

func (q *Quota) SetItem(ctx context.Context, key, value string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, known := q.sizes[key]; !known {
		prev, ok, err := q.inner.GetItem(ctx, key)
		if err != nil {
			return err
		}
		q.track(key, prev, ok)
	}

	size := len(key) + len(value)
	next := q.used - q.sizes[key] + size
	if next > q.limit {
		return fmt.Errorf("set %q (%d of %d bytes): %w", key, next, q.limit, ErrQuotaExceeded)
	}

	if err := q.inner.SetItem(ctx, key, value); err != nil {
		return err
	}
	q.used = next
	q.sizes[key] = size
	return nil
}

func (q *Quota) RemoveItem(ctx context.Context, key string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.inner.RemoveItem(ctx, key); err != nil {
		return err
	}
	q.used -= q.sizes[key]
	q.sizes[key] = 0
	return nil
}

func (q *Quota) Close() error {
	return q.inner.Close()
}

// track records the size of a value read from the inner storage the first
// time key is seen. Caller holds q.mu.
func (q *Quota) track(key, value string, ok bool) {
	if _, known := q.sizes[key]; known {
		return
	}
	size := 0
	if ok {
		size = len(key) + len(value)
	}
	q.sizes[key] = size
	q.used += size
}
