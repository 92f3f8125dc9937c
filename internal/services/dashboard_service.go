package services

import (
	"governance-service/internal/models"
	"governance-service/internal/repository"
)

// DashboardService serves the read-only aggregates behind the dashboards.
type DashboardService struct {
	store *repository.MemoryStore
}

func NewDashboardService(store *repository.MemoryStore) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) GetNationalStats() models.NationalStats {
	return s.store.GetNationalStats()
}

func (s *DashboardService) GetProvinceStats() []models.ProvinceStats {
	return s.store.GetProvinceStats()
}

func (s *DashboardService) GetQualityReports(projectID string) []models.QualityReport {
	return s.store.GetQualityReports(projectID)
}

func (s *DashboardService) GetContractors(filters models.ContractorFilters) []models.Contractor {
	return s.store.GetContractors(filters)
}

func (s *DashboardService) GetContractorByID(id string) (models.Contractor, error) {
	return s.store.GetContractorByID(id)
}

func (s *DashboardService) GetProjectsByContractor(contractorID string) []models.Project {
	return s.store.GetProjectsByContractor(contractorID)
}
