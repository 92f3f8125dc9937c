package governance

import (
	"testing"

	"governance-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectSize_AuthorizationMatrix(t *testing.T) {
	cases := []struct {
		level models.GovernmentLevel
		size  models.ProjectSize
		valid bool
	}{
		{models.LevelCentral, models.SizeSmall, true},
		{models.LevelCentral, models.SizeMedium, true},
		{models.LevelCentral, models.SizeLarge, true},
		{models.LevelProvincial, models.SizeSmall, true},
		{models.LevelProvincial, models.SizeMedium, true},
		{models.LevelProvincial, models.SizeLarge, false},
		{models.LevelLocal, models.SizeSmall, true},
		{models.LevelLocal, models.SizeMedium, false},
		{models.LevelLocal, models.SizeLarge, false},
	}

	for _, tc := range cases {
		// Budget chosen at the lower bound of each size so only
		// authorization decides the outcome.
		r, ok := SizeRange(tc.size)
		assert.True(t, ok)

		result := ValidateProjectSize(tc.level, tc.size, r.Min)
		assert.Equal(t, tc.valid, result.Valid, "level=%s size=%s", tc.level, tc.size)
	}
}

func TestValidateProjectSize_LocalMediumRejected(t *testing.T) {
	result := ValidateProjectSize(models.LevelLocal, models.SizeMedium, 2_000_000_000)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "LOCAL government can only create SMALL projects")
}

func TestValidateProjectSize_BudgetBelowMinimum(t *testing.T) {
	result := ValidateProjectSize(models.LevelProvincial, models.SizeMedium, 50_000_000)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "Budget too low")
	assert.Contains(t, result.Message, "Minimum")
}

func TestValidateProjectSize_BudgetAboveMaximum(t *testing.T) {
	result := ValidateProjectSize(models.LevelCentral, models.SizeSmall, 200_000_000)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "Budget too high")
	assert.Contains(t, result.Message, "Maximum")
}

func TestValidateProjectSize_CentralLargeValid(t *testing.T) {
	result := ValidateProjectSize(models.LevelCentral, models.SizeLarge, 10_000_000_000)

	assert.True(t, result.Valid)
	assert.Equal(t, "Project size and budget are valid", result.Message)
}

func TestValidateProjectSize_BoundsInclusive(t *testing.T) {
	for _, size := range []models.ProjectSize{models.SizeSmall, models.SizeMedium, models.SizeLarge} {
		r, _ := SizeRange(size)

		assert.True(t, ValidateProjectSize(models.LevelCentral, size, r.Min).Valid, "%s min", size)
		assert.True(t, ValidateProjectSize(models.LevelCentral, size, r.Max).Valid, "%s max", size)
		assert.False(t, ValidateProjectSize(models.LevelCentral, size, r.Min-1).Valid, "%s below min", size)
		assert.False(t, ValidateProjectSize(models.LevelCentral, size, r.Max+1).Valid, "%s above max", size)
	}
}

func TestValidateProjectSize_AuthorizationBeforeRange(t *testing.T) {
	// Budget is far outside the MEDIUM range, but the disallowed size must
	// be reported first.
	result := ValidateProjectSize(models.LevelLocal, models.SizeMedium, 10)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "can only create")
}

func TestValidateProjectSize_UnknownInputs(t *testing.T) {
	assert.False(t, ValidateProjectSize("DISTRICT", models.SizeSmall, 1_000_000).Valid)
	assert.False(t, ValidateProjectSize(models.LevelCentral, "GIGANTIC", 1_000_000).Valid)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("2024-01-01", "2024-12-31"))
	assert.NoError(t, ValidateDateRange("2024-01-01", "2024-01-01"))
	assert.ErrorIs(t, ValidateDateRange("2024-12-31", "2024-01-01"), models.ErrInvalidDateRange)
	assert.NoError(t, ValidateDateRange("", ""))
}

func TestAllowedSizes_MonotonicContainment(t *testing.T) {
	local := AllowedSizes(models.LevelLocal)
	provincial := AllowedSizes(models.LevelProvincial)
	central := AllowedSizes(models.LevelCentral)

	assert.Subset(t, provincial, local)
	assert.Subset(t, central, provincial)
	assert.NotEmpty(t, local)
}
