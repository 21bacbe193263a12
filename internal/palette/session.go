package palette

import "sync"

// Session owns the single current palette for the running process.
// Regeneration swaps the whole palette in one step; readers never observe
// a partially replaced one.
type Session struct {
	mu      sync.RWMutex
	current *Palette
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Set replaces the current palette.
func (s *Session) Set(p *Palette) {
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
}

// Current returns the current palette, or nil when none has been generated.
func (s *Session) Current() *Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Clear drops the current palette.
func (s *Session) Clear() {
	s.Set(nil)
}

// Empty reports whether no palette is held.
func (s *Session) Empty() bool {
	return s.Current().Len() == 0
}
