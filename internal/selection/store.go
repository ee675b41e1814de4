// Package selection holds the bounded list of breeds a visitor has picked
// for side-by-side comparison.
package selection

import "sync"

// Capacity bounds how many breeds can be compared at once.
const Capacity = 3

// Store keeps an ordered set of breed identifiers, capped at Capacity.
// Safe for concurrent use; the zero value is not usable, call New.
type Store struct {
	mu  sync.Mutex
	ids []int
}

// New returns an empty selection.
func New() *Store {
	return &Store{}
}

// Add appends the id unless it is already selected or the selection is
// full. It reports whether the selection changed, so callers can surface a
// "limit reached" hint.
func (s *Store) Add(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ids) >= Capacity || s.contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops the id; removing an absent id is a no-op.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Contains reports whether the id is currently selected.
func (s *Store) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contains(id)
}

// Clear empties the selection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
}

// Count returns the current selection size, derived on every call.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns a copy of the selected ids in insertion order.
func (s *Store) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int{}, s.ids...)
}

func (s *Store) contains(id int) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}
