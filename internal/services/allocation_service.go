package services

import (
	"fmt"
	"log/slog"

	"governance-service/internal/models"
	"governance-service/internal/repository"
)

type AllocationService struct {
	store *repository.MemoryStore
}

func NewAllocationService(store *repository.MemoryStore) *AllocationService {
	return &AllocationService{store: store}
}

// AllocateBudget debits the unallocated national pool in favour of the
// recipient. The store guarantees the check and the increment are atomic.
func (s *AllocationService) AllocateBudget(input models.AllocateBudgetInput) (models.BudgetAllocation, error) {
	allocation, err := s.store.AllocateBudget(input)
	if err != nil {
		return models.BudgetAllocation{}, fmt.Errorf("failed to allocate budget: %w", err)
	}

	slog.Info("Budget allocated",
		"allocation_id", allocation.ID,
		"recipient", allocation.Recipient,
		"recipient_type", allocation.RecipientType,
		"amount", allocation.Amount)

	return allocation, nil
}

func (s *AllocationService) GetAllocations(filters models.AllocationFilters) []models.BudgetAllocation {
	return s.store.GetAllocations(filters)
}
