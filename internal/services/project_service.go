package services

import (
	"fmt"
	"log/slog"

	"governance-service/internal/governance"
	"governance-service/internal/models"
	"governance-service/internal/repository"
)

type ProjectService struct {
	store *repository.MemoryStore
}

func NewProjectService(store *repository.MemoryStore) *ProjectService {
	return &ProjectService{store: store}
}

// CreateProject runs the governance gate and registers the project.
func (s *ProjectService) CreateProject(input models.CreateProjectInput) (models.Project, error) {
	project, err := s.store.CreateProject(input)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created",
		"project_id", project.ID,
		"size", project.Size,
		"budget", project.Budget,
		"created_by", project.CreatedBy)

	return project, nil
}

func (s *ProjectService) UpdateProject(id string, updates models.UpdateProjectInput) (models.Project, error) {
	project, err := s.store.UpdateProject(id, updates)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	slog.Info("Project updated", "project_id", project.ID, "status", project.Status, "progress", project.Progress)
	return project, nil
}

func (s *ProjectService) GetProjects(filters models.ProjectFilters) []models.Project {
	return s.store.GetProjects(filters)
}

func (s *ProjectService) GetProjectByID(id string) (models.Project, error) {
	project, err := s.store.GetProjectByID(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}
	return project, nil
}

// ValidateProjectSize exposes the pure governance check to callers that want
// feedback before submitting a create command.
func (s *ProjectService) ValidateProjectSize(level models.GovernmentLevel, size models.ProjectSize, budget int64) governance.ValidationResult {
	return governance.ValidateProjectSize(level, size, budget)
}
