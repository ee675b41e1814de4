// Package appearance tracks a visitor's light/dark display preference.
package appearance

import "sync"

// Mode is the display scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Store holds one visitor's display mode. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	mode Mode
}

// New returns a store defaulting to light mode.
func New() *Store {
	return &Store{mode: ModeLight}
}

// Toggle flips between light and dark and returns the new mode.
func (s *Store) Toggle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeLight {
		s.mode = ModeDark
	} else {
		s.mode = ModeLight
	}
	return s.mode
}

// Set forces a specific mode; unknown values fall back to light.
func (s *Store) Set(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != ModeDark {
		mode = ModeLight
	}
	s.mode = mode
}

// Current returns the active mode.
func (s *Store) Current() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}
