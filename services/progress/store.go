// Package progress tracks per-media completion percentages and drives the
// simulated playback clock that advances them. The in-memory map is
// authoritative for the running process; each value is persisted as its own
// JSON number document, debounced so rapid ticks collapse into one write.
package progress

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"reelview/internal/storage"
	"reelview/models"
)

// Band limits for the continue-watching view: items strictly inside
// (5, 95) count as in progress.
const (
	continueWatchingMin = 5.0
	continueWatchingMax = 95.0
)

// Store holds completion percentages keyed by media key.
type Store struct {
	mu       sync.Mutex
	store    *storage.Store
	debounce time.Duration
	values   map[string]float64
	pending  map[string]*time.Timer
}

// NewStore creates the store and hydrates it from every persisted progress
// document. Unreadable documents are skipped and logged.
func NewStore(store *storage.Store, debounce time.Duration) *Store {
	s := &Store{
		store:    store,
		debounce: debounce,
		values:   make(map[string]float64),
		pending:  make(map[string]*time.Timer),
	}

	keys, err := store.Keys(storagePrefix)
	if err != nil {
		log.Printf("[progress] failed to list saved progress, starting empty: %v", err)
		return s
	}
	for _, storageKey := range keys {
		var value float64
		if _, err := store.Get(storageKey, &value); err != nil {
			log.Printf("[progress] skipping unreadable record %s: %v", storageKey, err)
			continue
		}
		key := strings.TrimPrefix(storageKey, storagePrefix)
		s.values[key] = clamp(value)
	}
	return s
}

// Get returns the saved percentage for key, zero when absent.
func (s *Store) Get(key string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores a percentage for key, clamped to [0,100], and schedules a
// debounced persist. Returns the clamped value.
func (s *Store) Set(key string, value float64) float64 {
	value = clamp(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	s.schedulePersistLocked(key)
	return value
}

// Advance adds delta to the saved percentage for key and returns the clamped
// result.
func (s *Store) Advance(key string, delta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := clamp(s.values[key] + delta)
	s.values[key] = value
	s.schedulePersistLocked(key)
	return value
}

// Snapshot returns a copy of every tracked percentage.
func (s *Store) Snapshot() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]float64, len(s.values))
	for key, value := range s.values {
		snapshot[key] = value
	}
	return snapshot
}

// Entry is one continue-watching candidate.
type Entry struct {
	Key      string           `json:"key"`
	Kind     models.MediaKind `json:"kind"`
	ID       int64            `json:"id"`
	Progress float64          `json:"progress"`
}

// ContinueWatching returns the items inside the in-progress band, episodes
// deduped to their parent series keeping the furthest-along record, sorted by
// descending progress.
func (s *Store) ContinueWatching() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := make(map[models.MediaKey]Entry)
	for key, value := range s.values {
		if value <= continueWatchingMin || value >= continueWatchingMax {
			continue
		}
		info, ok := ParseKey(key)
		if !ok {
			continue
		}
		entry := Entry{Key: key, Kind: info.Kind, ID: info.ID, Progress: value}
		if current, exists := best[info.MediaKey()]; !exists || entry.Progress > current.Progress {
			best[info.MediaKey()] = entry
		}
	}

	entries := make([]Entry, 0, len(best))
	for _, entry := range best {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Progress == entries[j].Progress {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].Progress > entries[j].Progress
	})
	return entries
}

// Flush persists every pending write immediately. Used at shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.pending))
	for key, timer := range s.pending {
		timer.Stop()
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.persist(key)
	}
}

func (s *Store) schedulePersistLocked(key string) {
	if timer, ok := s.pending[key]; ok {
		timer.Reset(s.debounce)
		return
	}
	s.pending[key] = time.AfterFunc(s.debounce, func() {
		s.persist(key)
	})
}

func (s *Store) persist(key string) {
	s.mu.Lock()
	value, tracked := s.values[key]
	delete(s.pending, key)
	s.mu.Unlock()

	if !tracked {
		return
	}
	if err := s.store.Set(storagePrefix+key, value); err != nil {
		log.Printf("[progress] failed to persist %s: %v", key, err)
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
