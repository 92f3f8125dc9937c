// Package governance holds the pure budget and authorization rules shared by
// every project command. No state, no side effects; safe for concurrent use.
package governance

import (
	"fmt"
	"strings"

	"governance-service/internal/models"
)

// BudgetRange is the closed interval of permitted budgets for a project size.
type BudgetRange struct {
	Min int64
	Max int64
}

// Budget bounds per project size, in rupees, inclusive on both ends.
var projectSizeRanges = map[models.ProjectSize]BudgetRange{
	models.SizeSmall:  {Min: 1_000_000, Max: 100_000_000},
	models.SizeMedium: {Min: 100_000_000, Max: 5_000_000_000},
	models.SizeLarge:  {Min: 5_000_000_000, Max: 50_000_000_000},
}

// Project sizes each government level may create. LOCAL is the most
// restrictive tier, CENTRAL the least.
var allowedSizes = map[models.GovernmentLevel][]models.ProjectSize{
	models.LevelCentral:    {models.SizeSmall, models.SizeMedium, models.SizeLarge},
	models.LevelProvincial: {models.SizeSmall, models.SizeMedium},
	models.LevelLocal:      {models.SizeSmall},
}

type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// SizeRange returns the budget bounds for a project size.
func SizeRange(size models.ProjectSize) (BudgetRange, bool) {
	r, ok := projectSizeRanges[size]
	return r, ok
}

// AllowedSizes returns the project sizes a government level may create.
func AllowedSizes(level models.GovernmentLevel) []models.ProjectSize {
	return allowedSizes[level]
}

// ValidateProjectSize checks a (level, size, budget) triple. Authorization is
// checked strictly before the budget range: a size the level may not create
// is rejected even when the budget would fit another size.
func ValidateProjectSize(level models.GovernmentLevel, size models.ProjectSize, budget int64) ValidationResult {
	if !level.IsValid() {
		return ValidationResult{Valid: false, Message: fmt.Sprintf("Unknown government level: %s", level)}
	}
	if !size.IsValid() {
		return ValidationResult{Valid: false, Message: fmt.Sprintf("Unknown project size: %s", size)}
	}

	allowed := allowedSizes[level]
	if !sizeAllowed(allowed, size) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("%s government can only create %s projects", level, joinSizes(allowed)),
		}
	}

	r := projectSizeRanges[size]
	if budget < r.Min {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("Budget too low for %s project. Minimum: Rs. %d Crore", size, r.Min/10_000_000),
		}
	}
	if budget > r.Max {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("Budget too high for %s project. Maximum: Rs. %d Crore", size, r.Max/10_000_000),
		}
	}

	return ValidationResult{Valid: true, Message: "Project size and budget are valid"}
}

// Validate is the command-path form of ValidateProjectSize: same checks in
// the same order, reported as typed errors carrying the validation message.
func Validate(level models.GovernmentLevel, size models.ProjectSize, budget int64) error {
	result := ValidateProjectSize(level, size, budget)
	if result.Valid {
		return nil
	}

	allowed := allowedSizes[level]
	if !level.IsValid() || !size.IsValid() || !sizeAllowed(allowed, size) {
		return fmt.Errorf("%w: %s", models.ErrUnauthorizedSize, result.Message)
	}
	return fmt.Errorf("%w: %s", models.ErrBudgetOutOfRange, result.Message)
}

// ValidateDateRange rejects projects whose end date precedes the start date.
// Dates are compared lexically; the wire format is ISO yyyy-mm-dd.
func ValidateDateRange(startDate, endDate string) error {
	if startDate == "" || endDate == "" {
		return nil
	}
	if endDate < startDate {
		return models.ErrInvalidDateRange
	}
	return nil
}

func sizeAllowed(allowed []models.ProjectSize, size models.ProjectSize) bool {
	for _, s := range allowed {
		if s == size {
			return true
		}
	}
	return false
}

func joinSizes(sizes []models.ProjectSize) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
