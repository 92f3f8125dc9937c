package repository

import "governance-service/internal/models"

// GetNationalStats returns a snapshot of the national totals.
func (s *MemoryStore) GetNationalStats() models.NationalStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// GetProvinceStats returns the per-province rollups.
func (s *MemoryStore) GetProvinceStats() []models.ProvinceStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.ProvinceStats, len(s.provinceStats))
	copy(result, s.provinceStats)
	return result
}
