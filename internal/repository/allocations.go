package repository

import (
	"fmt"
	"time"

	"governance-service/internal/models"

	"github.com/google/uuid"
)

// AllocateBudget moves funds from the unallocated national pool to a named
// recipient. The remaining-balance check and the aggregate increment happen
// in one critical section, so two allocations racing for the same remainder
// cannot both succeed.
func (s *MemoryStore) AllocateBudget(input models.AllocateBudgetInput) (models.BudgetAllocation, error) {
	if input.Amount <= 0 {
		return models.BudgetAllocation{}, fmt.Errorf("%w: allocation amount must be positive", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.stats.TotalBudget - s.stats.AllocatedBudget
	if input.Amount > remaining {
		return models.BudgetAllocation{}, fmt.Errorf(
			"%w: requested %d, remaining %d", models.ErrInsufficientFunds, input.Amount, remaining)
	}

	allocation := models.BudgetAllocation{
		ID:            uuid.NewString(),
		Recipient:     input.Recipient,
		RecipientType: input.RecipientType,
		Amount:        input.Amount,
		Purpose:       input.Purpose,
		Status:        models.AllocationAllocated,
		FiscalYear:    input.FiscalYear,
		AllocatedDate: time.Now().Format("2006-01-02"),
		AllocatedBy:   input.AllocatedBy,
	}

	s.allocations = append(s.allocations, allocation)
	s.stats.AllocatedBudget += input.Amount

	return allocation, nil
}

// GetAllocations returns allocations matching all set filters, in insertion
// order. Allocations are immutable, so no copy-on-read is needed beyond the
// slice itself.
func (s *MemoryStore) GetAllocations(filters models.AllocationFilters) []models.BudgetAllocation {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.BudgetAllocation, 0, len(s.allocations))
	for _, a := range s.allocations {
		if filters.RecipientType != "" && string(a.RecipientType) != filters.RecipientType {
			continue
		}
		if filters.FiscalYear != "" && a.FiscalYear != filters.FiscalYear {
			continue
		}
		result = append(result, a)
	}
	return result
}
