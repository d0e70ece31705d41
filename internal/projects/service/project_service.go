package service

import (
	"fmt"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/repository"
)

const maxIDAttempts = 5

// ProjectService handles project-related business logic
type ProjectService struct {
	store *repository.MemoryStore
	newID func() string
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.MemoryStore) *ProjectService {
	return &ProjectService{
		store: store,
		newID: domain.NewProjectID,
	}
}

// List returns all projects, or only those whose title contains title.
func (s *ProjectService) List(title string) []domain.Project {
	return s.store.List(title)
}

// Create stores a new project with a freshly generated id.
func (s *ProjectService) Create(title, owner string) (*domain.Project, error) {
	for i := 0; i < maxIDAttempts; i++ {
		p := domain.Project{ID: s.newID(), Title: title, Owner: owner}
		if s.store.AppendIfAbsent(p) {
			return &p, nil
		}
	}
	return nil, domain.ErrIDExhausted
}

// Update replaces title and owner of the project with the given id.
func (s *ProjectService) Update(id, title, owner string) (*domain.Project, error) {
	p := domain.Project{ID: id, Title: title, Owner: owner}
	if err := s.store.Replace(p); err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	return &p, nil
}

// Delete removes the project with the given id.
func (s *ProjectService) Delete(id string) error {
	if err := s.store.Remove(id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

// Exists reports whether a project with the given id is stored.
func (s *ProjectService) Exists(id string) bool {
	return s.store.Contains(id)
}

// Count returns the number of stored projects.
func (s *ProjectService) Count() int {
	return s.store.Count()
}
