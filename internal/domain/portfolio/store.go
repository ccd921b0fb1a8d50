package portfolio

import "sync"

// Store owns the in-memory project list.
type Store struct {
	mu       sync.RWMutex
	projects []Project
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ReplaceAll(projects []Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]Project(nil), projects...)
}

func (s *Store) List() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Project(nil), s.projects...)
}

func (s *Store) Get(id string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func (s *Store) Insert(p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
}

func (s *Store) Save(p Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			return true
		}
	}
	return false
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}
