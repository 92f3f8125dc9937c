package repository

import (
	"fmt"
	"time"

	"governance-service/internal/models"

	"github.com/google/uuid"
)

// ProcessPayment approves or rejects a pending payment request. Approval
// settles the amount against both the referenced project's spent total and
// the national spent budget in the same critical section; either both
// debits apply or the request stays untouched. A request settles at most
// once: re-processing fails with ErrAlreadyProcessed.
//
// Divergence from the original dashboard behaviour, kept deliberate: a
// payment whose project no longer exists is a hard failure instead of a
// half-approved request with no debit, and a settlement that would push
// spend past the project budget or national spend past the allocated pool
// is rejected.
func (s *MemoryStore) ProcessPayment(id string, input models.PaymentProcessInput) (models.PaymentRequest, error) {
	if input.Status != models.PaymentApproved && input.Status != models.PaymentRejected {
		return models.PaymentRequest{}, fmt.Errorf(
			"%w: payment status must be APPROVED or REJECTED", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findPayment(id)
	if idx == -1 {
		return models.PaymentRequest{}, fmt.Errorf("payment request %s: %w", id, models.ErrNotFound)
	}

	payment := s.payments[idx]
	if payment.Status != models.PaymentPending {
		return models.PaymentRequest{}, fmt.Errorf(
			"payment request %s is %s: %w", id, payment.Status, models.ErrAlreadyProcessed)
	}

	if input.Status == models.PaymentApproved {
		projectIdx := s.findProject(payment.ProjectID)
		if projectIdx == -1 {
			return models.PaymentRequest{}, fmt.Errorf(
				"project %s referenced by payment %s: %w", payment.ProjectID, id, models.ErrNotFound)
		}

		project := &s.projects[projectIdx]
		if project.SpentAmount+payment.Amount > project.Budget {
			return models.PaymentRequest{}, fmt.Errorf(
				"project %s spent %d of %d: %w", project.ID, project.SpentAmount, project.Budget,
				models.ErrBudgetExceeded)
		}
		if s.stats.SpentBudget+payment.Amount > s.stats.AllocatedBudget {
			return models.PaymentRequest{}, fmt.Errorf(
				"national spend %d of allocated %d: %w", s.stats.SpentBudget, s.stats.AllocatedBudget,
				models.ErrInsufficientFunds)
		}

		project.SpentAmount += payment.Amount
		s.stats.SpentBudget += payment.Amount
	}

	s.payments[idx].Status = input.Status
	s.payments[idx].ApprovedBy = input.ApprovedBy
	s.payments[idx].ApprovedDate = time.Now().Format("2006-01-02")

	return s.payments[idx], nil
}

// AddPaymentRequest registers a pending payment request against a project.
// A caller-supplied ID must be unique; a colliding ID would shadow the later
// request in every lookup.
func (s *MemoryStore) AddPaymentRequest(payment models.PaymentRequest) (models.PaymentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	} else if s.findPayment(payment.ID) != -1 {
		return models.PaymentRequest{}, fmt.Errorf(
			"%w: payment request %s already exists", models.ErrInvalidInput, payment.ID)
	}
	payment.Status = models.PaymentPending
	payment.RequestDate = time.Now().Format("2006-01-02")
	s.payments = append(s.payments, payment)
	return payment, nil
}

// GetPaymentRequests returns payment requests in insertion order, optionally
// filtered by status.
func (s *MemoryStore) GetPaymentRequests(status string) []models.PaymentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.PaymentRequest, 0, len(s.payments))
	for _, p := range s.payments {
		if status != "" && string(p.Status) != status {
			continue
		}
		result = append(result, p)
	}
	return result
}
