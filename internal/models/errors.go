package models

import "errors"

// Command errors. Handlers map these to envelope error codes; no command
// performs a partial mutation on any of them.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrUnauthorizedSize  = errors.New("government level not permitted to create this project size")
	ErrBudgetOutOfRange  = errors.New("budget outside the permitted range for this project size")
	ErrInsufficientFunds = errors.New("insufficient budget available for allocation")
	ErrAlreadyDecided    = errors.New("policy has already been decided")
	ErrAlreadyProcessed  = errors.New("payment request has already been processed")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrBudgetExceeded    = errors.New("settlement would exceed the project budget")
	ErrInvalidInput      = errors.New("invalid input")
)
