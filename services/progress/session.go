package progress

import (
	"context"
	"log"
	"sync"
	"time"
)

// State is the lifecycle of a playback session.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateComplete
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateComplete:
		return "complete"
	}
	return "idle"
}

// Session simulates playback for one media key: while Playing, each tick of
// the clock advances progress by one second's worth of the total duration.
// Visibility changes toggle Playing and Paused; reaching 100 completes the
// session and stops the clock.
type Session struct {
	key       string
	increment float64
	store     *Store

	mu    sync.Mutex
	state State

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newSession(store *Store, key string, totalSeconds float64, visible bool, interval time.Duration) *Session {
	s := &Session{
		key:       key,
		increment: 100 / totalSeconds,
		store:     store,
	}

	if store.Get(key) >= 100 {
		s.state = StateComplete
		return s
	}

	s.state = StatePaused
	if visible {
		s.state = StatePlaying
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go s.run(ctx, interval)
	return s
}

// Key returns the media key this session advances.
func (s *Session) Key() string { return s.key }

// State returns the session's current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the current percentage for the session's key.
func (s *Session) Progress() float64 {
	return s.store.Get(s.key)
}

// SetVisible pauses or resumes the clock as the hosting view moves to the
// background or foreground. Completed sessions never resume.
func (s *Session) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateComplete || s.state == StateIdle {
		return
	}
	if visible {
		s.state = StatePlaying
	} else {
		s.state = StatePaused
	}
}

// Stop cancels the clock and waits for it to drain.
func (s *Session) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Session) run(ctx context.Context, interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.tick() {
				return
			}
		}
	}
}

// tick advances progress by one increment when playing. Returns true once
// the session completes.
func (s *Session) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return s.state == StateComplete
	}
	if s.store.Advance(s.key, s.increment) >= 100 {
		s.state = StateComplete
		log.Printf("[progress] playback complete for %s", s.key)
		return true
	}
	return false
}

// Manager owns the live playback sessions and guarantees at most one clock
// per media key.
type Manager struct {
	mu       sync.Mutex
	store    *Store
	interval time.Duration
	sessions map[string]*Session
}

// NewManager creates a session manager ticking at the given cadence.
func NewManager(store *Store, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = time.Second
	}
	return &Manager{
		store:    store,
		interval: interval,
		sessions: make(map[string]*Session),
	}
}

// Start opens a session for key, resuming from any persisted progress. An
// existing session for the same key is stopped first.
func (m *Manager) Start(key string, totalSeconds float64, visible bool) *Session {
	// The lock is held across the whole swap: stopping the previous
	// session and installing the new one must be atomic or a racing
	// Start leaves a displaced session ticking with no owner.
	m.mu.Lock()
	defer m.mu.Unlock()

	if previous, ok := m.sessions[key]; ok {
		delete(m.sessions, key)
		previous.Stop()
	}

	session := newSession(m.store, key, totalSeconds, visible, m.interval)
	m.sessions[key] = session
	return session
}

// Get returns the live session for key, if any.
func (m *Manager) Get(key string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[key]
	return session, ok
}

// SetVisible forwards a visibility change to the session for key. Returns
// false when no session exists.
func (m *Manager) SetVisible(key string, visible bool) bool {
	session, ok := m.Get(key)
	if !ok {
		return false
	}
	session.SetVisible(visible)
	return true
}

// Stop tears down the session for key. Returns false when no session exists.
func (m *Manager) Stop(key string) bool {
	m.mu.Lock()
	session, ok := m.sessions[key]
	delete(m.sessions, key)
	m.mu.Unlock()

	if !ok {
		return false
	}
	session.Stop()
	return true
}

// StopAll tears down every live session and flushes pending writes.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, session := range sessions {
		session.Stop()
	}
	m.store.Flush()
}
