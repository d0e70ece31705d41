package repository

import (
	"strings"
	"sync"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
)

// MemoryStore keeps projects in process memory, in creation order.
// All reads and writes go through mu; values handed out are copies.
type MemoryStore struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make([]domain.Project, 0, 16)}
}

// List returns the stored projects in store order. A non-empty title keeps
// only projects whose title contains it (case-sensitive).
func (s *MemoryStore) List(title string) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if title == "" || strings.Contains(p.Title, title) {
			out = append(out, p)
		}
	}
	return out
}

// Append adds p to the end of the store.
func (s *MemoryStore) Append(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append(s.projects, p)
}

// AppendIfAbsent adds p unless a project with the same id is already stored.
// It reports whether p was added.
func (s *MemoryStore) AppendIfAbsent(p domain.Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return false
	}
	s.projects = append(s.projects, p)
	return true
}

// Replace overwrites the project with p.ID in place.
func (s *MemoryStore) Replace(p domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.projects[i] = p
	return nil
}

// Remove deletes the project with the given id, keeping the order of the rest.
func (s *MemoryStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	copy(s.projects[i:], s.projects[i+1:])
	s.projects[len(s.projects)-1] = domain.Project{}
	s.projects = s.projects[:len(s.projects)-1]
	return nil
}

// Contains reports whether a project with the given id is stored.
func (s *MemoryStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.indexOf(id) >= 0
}

// Count returns the number of stored projects.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.projects)
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
