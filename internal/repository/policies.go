package repository

import (
	"fmt"
	"time"

	"governance-service/internal/models"
)

// DecidePolicy transitions a PENDING policy to APPROVED or REJECTED. The
// transition is one-way: re-deciding an already-decided policy is an error,
// never a silent overwrite.
func (s *MemoryStore) DecidePolicy(id string, input models.PolicyDecisionInput) (models.PolicyDecision, error) {
	if input.Status != models.PolicyApproved && input.Status != models.PolicyRejected {
		return models.PolicyDecision{}, fmt.Errorf(
			"%w: decision status must be APPROVED or REJECTED", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findPolicy(id)
	if idx == -1 {
		return models.PolicyDecision{}, fmt.Errorf("policy %s: %w", id, models.ErrNotFound)
	}
	if s.policies[idx].Status != models.PolicyPending {
		return models.PolicyDecision{}, fmt.Errorf(
			"policy %s is %s: %w", id, s.policies[idx].Status, models.ErrAlreadyDecided)
	}

	s.policies[idx].Status = input.Status
	s.policies[idx].DecidedBy = input.DecidedBy
	s.policies[idx].DecidedDate = time.Now().Format("2006-01-02")

	return s.policies[idx], nil
}

// GetPolicies returns policies in insertion order, optionally filtered by
// status.
func (s *MemoryStore) GetPolicies(status string) []models.PolicyDecision {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.PolicyDecision, 0, len(s.policies))
	for _, p := range s.policies {
		if status != "" && string(p.Status) != status {
			continue
		}
		result = append(result, p)
	}
	return result
}
