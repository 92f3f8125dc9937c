package repository

import (
	"fmt"

	"governance-service/internal/governance"
	"governance-service/internal/models"

	"github.com/google/uuid"
)

// CreateProject validates the (level, size, budget) triple and the date
// range before any mutation. On success the project is appended in PLANNING
// with zero spend and progress, and the national project counter moves up.
func (s *MemoryStore) CreateProject(input models.CreateProjectInput) (models.Project, error) {
	if err := governance.Validate(input.CreatedBy, input.Size, input.Budget); err != nil {
		return models.Project{}, err
	}
	if err := governance.ValidateDateRange(input.StartDate, input.EndDate); err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := models.Project{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Size:        input.Size,
		CreatedBy:   input.CreatedBy,
		SpentAmount: 0,
		Status:      models.ProjectPlanning,
		Priority:    input.Priority,
		Province:    input.Province,
		LocalUnit:   input.LocalUnit,
		Progress:    0,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	s.projects = append(s.projects, project)
	s.stats.TotalProjects++

	return project, nil
}

// UpdateProject merges the non-nil fields of the update into the stored
// project. When budget, size or creating level change, the merged triple is
// re-validated against the governance rules before anything is written.
func (s *MemoryStore) UpdateProject(id string, updates models.UpdateProjectInput) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProject(id)
	if idx == -1 {
		return models.Project{}, fmt.Errorf("project %s: %w", id, models.ErrNotFound)
	}

	merged := s.projects[idx]
	if updates.Title != nil {
		merged.Title = *updates.Title
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Budget != nil {
		merged.Budget = *updates.Budget
	}
	if updates.Size != nil {
		merged.Size = *updates.Size
	}
	if updates.Status != nil {
		merged.Status = *updates.Status
	}
	if updates.Priority != nil {
		merged.Priority = *updates.Priority
	}
	if updates.Province != nil {
		merged.Province = *updates.Province
	}
	if updates.LocalUnit != nil {
		merged.LocalUnit = *updates.LocalUnit
	}
	if updates.Contractor != nil {
		contractor := *updates.Contractor
		merged.Contractor = &contractor
	}
	if updates.Progress != nil {
		if *updates.Progress < 0 || *updates.Progress > 100 {
			return models.Project{}, fmt.Errorf("%w: progress must be between 0 and 100", models.ErrInvalidInput)
		}
		merged.Progress = *updates.Progress
	}
	if updates.StartDate != nil {
		merged.StartDate = *updates.StartDate
	}
	if updates.EndDate != nil {
		merged.EndDate = *updates.EndDate
	}
	if updates.CreatedBy != nil {
		merged.CreatedBy = *updates.CreatedBy
	}

	if updates.Budget != nil || updates.Size != nil || updates.CreatedBy != nil {
		if err := governance.Validate(merged.CreatedBy, merged.Size, merged.Budget); err != nil {
			return models.Project{}, err
		}
	}
	if updates.StartDate != nil || updates.EndDate != nil {
		if err := governance.ValidateDateRange(merged.StartDate, merged.EndDate); err != nil {
			return models.Project{}, err
		}
	}

	s.projects[idx] = merged
	return merged, nil
}

// GetProjects returns projects matching all set filters, in insertion order.
func (s *MemoryStore) GetProjects(filters models.ProjectFilters) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if filters.Status != "" && string(p.Status) != filters.Status {
			continue
		}
		if filters.Province != "" && p.Province != filters.Province {
			continue
		}
		if filters.Size != "" && string(p.Size) != filters.Size {
			continue
		}
		if filters.Priority != "" && string(p.Priority) != filters.Priority {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (s *MemoryStore) GetProjectByID(id string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProject(id)
	if idx == -1 {
		return models.Project{}, fmt.Errorf("project %s: %w", id, models.ErrNotFound)
	}
	return s.projects[idx], nil
}
