package services

import (
	"fmt"
	"log/slog"

	"governance-service/internal/models"
	"governance-service/internal/repository"
)

type PaymentService struct {
	store *repository.MemoryStore
}

func NewPaymentService(store *repository.MemoryStore) *PaymentService {
	return &PaymentService{store: store}
}

// ProcessPayment settles an approved request against the project and the
// national spend totals, or marks it rejected. Settlement is exactly-once.
func (s *PaymentService) ProcessPayment(id string, input models.PaymentProcessInput) (models.PaymentRequest, error) {
	payment, err := s.store.ProcessPayment(id, input)
	if err != nil {
		return models.PaymentRequest{}, fmt.Errorf("failed to process payment: %w", err)
	}

	slog.Info("Payment processed",
		"payment_id", payment.ID,
		"project_id", payment.ProjectID,
		"status", payment.Status,
		"amount", payment.Amount)

	return payment, nil
}

// CreatePaymentRequest registers a pending request for later settlement.
func (s *PaymentService) CreatePaymentRequest(input models.PaymentRequest) (models.PaymentRequest, error) {
	if input.ProjectID == "" {
		return models.PaymentRequest{}, fmt.Errorf("%w: project_id is required", models.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return models.PaymentRequest{}, fmt.Errorf("%w: amount must be positive", models.ErrInvalidInput)
	}

	payment, err := s.store.AddPaymentRequest(input)
	if err != nil {
		return models.PaymentRequest{}, fmt.Errorf("failed to create payment request: %w", err)
	}
	slog.Info("Payment request created",
		"payment_id", payment.ID,
		"project_id", payment.ProjectID,
		"amount", payment.Amount)
	return payment, nil
}

func (s *PaymentService) GetPaymentRequests(status string) []models.PaymentRequest {
	return s.store.GetPaymentRequests(status)
}
