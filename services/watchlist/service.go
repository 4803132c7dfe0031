// Package watchlist maintains the user's saved-media set. The in-memory list
// is authoritative for the running process; every mutation writes the full
// set through to storage as a plain JSON array under the watch-list key, and
// storage failures are logged rather than surfaced.
package watchlist

import (
	"log"
	"sync"

	"reelview/internal/storage"
	"reelview/models"
)

const storageKey = "watch-list"

// Service manages the saved-media set.
type Service struct {
	mu    sync.RWMutex
	store *storage.Store
	items []models.MediaSummary
	index map[models.MediaKey]struct{}
}

// NewService creates the service and hydrates it from storage. A missing or
// malformed persisted list starts empty.
func NewService(store *storage.Store) *Service {
	s := &Service{
		store: store,
		index: make(map[models.MediaKey]struct{}),
	}

	var saved []models.MediaSummary
	if _, err := store.Get(storageKey, &saved); err != nil {
		log.Printf("[watchlist] failed to read saved list, starting empty: %v", err)
		saved = nil
	}
	for _, item := range saved {
		if _, exists := s.index[item.Key()]; exists {
			continue
		}
		s.items = append(s.items, item)
		s.index[item.Key()] = struct{}{}
	}

	return s
}

// Add saves item unless it is already present. Returns true when the set
// changed.
func (s *Service) Add(item models.MediaSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[item.Key()]; exists {
		return false
	}
	s.items = append(s.items, item)
	s.index[item.Key()] = struct{}{}
	s.persistLocked()
	return true
}

// Remove deletes the entry for key. Absent keys are a no-op; returns true
// when an entry was removed.
func (s *Service) Remove(key models.MediaKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[key]; !exists {
		return false
	}
	delete(s.index, key)
	for i, item := range s.items {
		if item.Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persistLocked()
	return true
}

// Contains reports membership for key.
func (s *Service) Contains(key models.MediaKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.index[key]
	return exists
}

// List returns the saved set in insertion order, oldest first.
func (s *Service) List() []models.MediaSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MediaSummary, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Service) persistLocked() {
	items := s.items
	if items == nil {
		items = []models.MediaSummary{}
	}
	if err := s.store.Set(storageKey, items); err != nil {
		log.Printf("[watchlist] failed to persist list: %v", err)
	}
}
