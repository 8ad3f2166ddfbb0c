package repositories

import "sync"

// Sequence hands out sequential record identifiers. Identifiers are never
// recycled, even after the record they were assigned to is deleted.
type Sequence struct {
	mu   sync.Mutex
	next uint
}

// NewSequence creates a Sequence whose first issued identifier is start.
func NewSequence(start uint) *Sequence {
	return &Sequence{next: start}
}

// Next issues the next identifier.
func (s *Sequence) Next() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// Advance raises the counter so the next issued identifier is above id.
// Used when records with preassigned identifiers are seeded.
func (s *Sequence) Advance(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= s.next {
		s.next = id + 1
	}
}
