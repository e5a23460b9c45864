package client

import (
	"sync"

	"github.com/skillforge/dashboard-backend/internal/types"
)

// Feed is the append-only display buffer behind the live activity widget.
// Two sources write into it without coordination: the polled
// /recent-activity snapshot and push events from the SSE stream. There is
// no deduplication between them; the only ordering guarantee is "prepend
// newest, keep at most max".
type Feed struct {
	mu      sync.Mutex
	max     int
	entries []types.ActivityEntry
}

func NewFeed(max int) *Feed {
	if max < 1 {
		max = 1
	}
	return &Feed{max: max, entries: DemoFeed()}
}

// Prepend pushes a new entry to the front, dropping the oldest beyond max.
func (f *Feed) Prepend(entry types.ActivityEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keep := f.entries
	if len(keep) > f.max-1 {
		keep = keep[:f.max-1]
	}
	f.entries = append([]types.ActivityEntry{entry}, keep...)
}

// Replace swaps in a polled snapshot wholesale.
func (f *Feed) Replace(entries []types.ActivityEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(entries) > f.max {
		entries = entries[:f.max]
	}
	f.entries = append([]types.ActivityEntry(nil), entries...)
}

// Entries returns a copy of the current buffer, newest first.
func (f *Feed) Entries() []types.ActivityEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.ActivityEntry(nil), f.entries...)
}
