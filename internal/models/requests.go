package models

// ============================================================================
// COMMAND INPUTS
// ============================================================================

type CreateProjectInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      int64           `json:"budget"`
	Size        ProjectSize     `json:"size"`
	Priority    Priority        `json:"priority"`
	Province    string          `json:"province"`
	LocalUnit   string          `json:"local_unit"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	CreatedBy   GovernmentLevel `json:"created_by"`
	CreatedByID string          `json:"created_by_id"`
}

// UpdateProjectInput carries a partial update; nil fields are left untouched.
type UpdateProjectInput struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Budget      *int64           `json:"budget,omitempty"`
	Size        *ProjectSize     `json:"size,omitempty"`
	Status      *ProjectStatus   `json:"status,omitempty"`
	Priority    *Priority        `json:"priority,omitempty"`
	Province    *string          `json:"province,omitempty"`
	LocalUnit   *string          `json:"local_unit,omitempty"`
	Contractor  *ContractorInfo  `json:"contractor,omitempty"`
	Progress    *int             `json:"progress,omitempty"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
	CreatedBy   *GovernmentLevel `json:"created_by,omitempty"`
}

type AllocateBudgetInput struct {
	Recipient     string        `json:"recipient"`
	RecipientType RecipientType `json:"recipient_type"`
	Amount        int64         `json:"amount"`
	Purpose       string        `json:"purpose"`
	FiscalYear    string        `json:"fiscal_year"`
	AllocatedBy   string        `json:"allocated_by"`
}

type PolicyDecisionInput struct {
	Status    PolicyStatus `json:"status"`
	DecidedBy string       `json:"decided_by"`
}

type PaymentProcessInput struct {
	Status     PaymentStatus `json:"status"`
	ApprovedBy string        `json:"approved_by"`
}

type ContractorRatingInput struct {
	ContractorID string `json:"contractor_id"`
}

type ValidateProjectSizeInput struct {
	Level  GovernmentLevel `json:"level"`
	Size   ProjectSize     `json:"size"`
	Budget int64           `json:"budget"`
}

// ============================================================================
// QUERY FILTERS
// ============================================================================

// ProjectFilters are ANDed; empty fields mean no constraint.
type ProjectFilters struct {
	Status   string
	Province string
	Size     string
	Priority string
}

type AllocationFilters struct {
	RecipientType string
	FiscalYear    string
}

type ContractorFilters struct {
	Verified       *bool
	Specialization string
}
