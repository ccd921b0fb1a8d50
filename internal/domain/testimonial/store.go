package testimonial

import (
	"sort"
	"sync"
)

// Store owns the in-memory testimonial list.
type Store struct {
	mu    sync.RWMutex
	items []Testimonial
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ReplaceAll(items []Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Testimonial(nil), items...)
}

func (s *Store) List() []Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Testimonial(nil), s.items...)
}

// Approved returns the approved testimonials ordered by their display
// sequence, stable within equal order values.
func (s *Store) Approved() []Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Testimonial, 0)
	for _, t := range s.items {
		if t.Status == StatusApproved {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Store) Get(id string) (Testimonial, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return Testimonial{}, false
}

func (s *Store) Insert(t Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
}

func (s *Store) Save(t Testimonial) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i] = t
			return true
		}
	}
	return false
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
