package repository

import (
	"fmt"
	"strings"

	"governance-service/internal/models"
)

// GetContractors returns contractors matching all set filters.
// Specialization matches as a case-insensitive substring.
func (s *MemoryStore) GetContractors(filters models.ContractorFilters) []models.Contractor {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Contractor, 0, len(s.contractors))
	for _, c := range s.contractors {
		if filters.Verified != nil && c.Verified != *filters.Verified {
			continue
		}
		if filters.Specialization != "" &&
			!strings.Contains(strings.ToLower(c.Specialization), strings.ToLower(filters.Specialization)) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// GetContractorByID returns a single contractor.
func (s *MemoryStore) GetContractorByID(id string) (models.Contractor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contractors {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contractor{}, fmt.Errorf("contractor %s: %w", id, models.ErrNotFound)
}

// GetProjectsByContractor returns the projects assigned to a contractor, in
// insertion order.
func (s *MemoryStore) GetProjectsByContractor(contractorID string) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Project, 0)
	for _, p := range s.projects {
		if p.Contractor != nil && p.Contractor.ID == contractorID {
			result = append(result, p)
		}
	}
	return result
}

// GetQualityReports returns quality reports, optionally scoped to a project.
func (s *MemoryStore) GetQualityReports(projectID string) []models.QualityReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.QualityReport, 0, len(s.quality))
	for _, r := range s.quality {
		if projectID != "" && r.ProjectID != projectID {
			continue
		}
		result = append(result, r)
	}
	return result
}
