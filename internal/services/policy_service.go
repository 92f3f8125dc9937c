package services

import (
	"fmt"
	"log/slog"

	"governance-service/internal/models"
	"governance-service/internal/repository"
)

type PolicyService struct {
	store *repository.MemoryStore
}

func NewPolicyService(store *repository.MemoryStore) *PolicyService {
	return &PolicyService{store: store}
}

func (s *PolicyService) DecidePolicy(id string, input models.PolicyDecisionInput) (models.PolicyDecision, error) {
	policy, err := s.store.DecidePolicy(id, input)
	if err != nil {
		return models.PolicyDecision{}, fmt.Errorf("failed to decide policy: %w", err)
	}

	slog.Info("Policy decided", "policy_id", policy.ID, "status", policy.Status, "decided_by", policy.DecidedBy)
	return policy, nil
}

func (s *PolicyService) GetPolicies(status string) []models.PolicyDecision {
	return s.store.GetPolicies(status)
}
