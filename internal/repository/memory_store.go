// Package repository keeps all governance entities in memory. There is no
// database behind the service; the store itself is the system of record for
// the fiscal period and seeds the national demo data set on startup.
//
// A single coarse mutex guards every collection together with the national
// stats aggregate. Each command runs its whole read-decide-mutate sequence
// inside one critical section so racing commands can never overdraw the
// shared totals. Nothing under the lock performs I/O.
package repository

import (
	"sync"

	"governance-service/internal/models"
)

type MemoryStore struct {
	mu sync.Mutex

	stats         models.NationalStats
	projects      []models.Project
	allocations   []models.BudgetAllocation
	policies      []models.PolicyDecision
	payments      []models.PaymentRequest
	contractors   []models.Contractor
	quality       []models.QualityReport
	provinceStats []models.ProvinceStats
}

// NewMemoryStore returns an empty store whose national totals start from the
// given baseline. TotalBudget is fixed for the fiscal period; allocated and
// spent move only through AllocateBudget and ProcessPayment.
func NewMemoryStore(stats models.NationalStats) *MemoryStore {
	return &MemoryStore{stats: stats}
}

// NewSeededStore returns a store loaded with the national demo data set.
func NewSeededStore() *MemoryStore {
	s := &MemoryStore{}
	s.seed()
	return s
}

func (s *MemoryStore) findProject(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) findPolicy(id string) int {
	for i := range s.policies {
		if s.policies[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) findPayment(id string) int {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return i
		}
	}
	return -1
}
