package progress

// Tick advances the session clock by one step, exactly as the background
// ticker does, so tests can drive time deterministically.
func (s *Session) Tick() bool { return s.tick() }
