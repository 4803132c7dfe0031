package search

import (
	"log"
	"sync"

	"reelview/internal/storage"
)

const (
	historyKey = "search-history"

	// maxHistory caps the recency list; the oldest entry is dropped first.
	maxHistory = 8
)

// History is the bounded, deduplicated list of past search queries, most
// recent first.
type History struct {
	mu      sync.RWMutex
	store   *storage.Store
	entries []string
}

// NewHistory creates the history and hydrates it from storage. A missing or
// malformed persisted list starts empty.
func NewHistory(store *storage.Store) *History {
	h := &History{store: store}

	var saved []string
	if _, err := store.Get(historyKey, &saved); err != nil {
		log.Printf("[search] failed to read history, starting empty: %v", err)
		saved = nil
	}
	if len(saved) > maxHistory {
		saved = saved[:maxHistory]
	}
	h.entries = saved
	return h
}

// Record moves query to the front of the list, dropping any earlier
// occurrence and truncating to the cap. Empty queries are ignored.
func (h *History) Record(query string) {
	if query == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]string, 0, len(h.entries)+1)
	entries = append(entries, query)
	for _, entry := range h.entries {
		if entry != query {
			entries = append(entries, entry)
		}
	}
	if len(entries) > maxHistory {
		entries = entries[:maxHistory]
	}
	h.entries = entries

	if err := h.store.Set(historyKey, entries); err != nil {
		log.Printf("[search] failed to persist history: %v", err)
	}
}

// Entries returns the recorded queries, most recent first.
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}
