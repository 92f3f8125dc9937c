package models

// ============================================================================
// CORE ENTITIES
// ============================================================================

// ContractorInfo is the contractor summary embedded in a project.
type ContractorInfo struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Rating  float64 `json:"rating"`
}

type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      int64           `json:"budget"`
	Size        ProjectSize     `json:"size"`
	CreatedBy   GovernmentLevel `json:"created_by"`
	SpentAmount int64           `json:"spent_amount"`
	Status      ProjectStatus   `json:"status"`
	Priority    Priority        `json:"priority"`
	Province    string          `json:"province"`
	LocalUnit   string          `json:"local_unit"`
	Contractor  *ContractorInfo `json:"contractor,omitempty"`
	Progress    int             `json:"progress"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
}

// BudgetAllocation records an irrevocable transfer from the unallocated
// national pool to a named recipient. Never mutated after creation.
type BudgetAllocation struct {
	ID            string           `json:"id"`
	Recipient     string           `json:"recipient"`
	RecipientType RecipientType    `json:"recipient_type"`
	Amount        int64            `json:"amount"`
	Purpose       string           `json:"purpose"`
	Status        AllocationStatus `json:"status"`
	FiscalYear    string           `json:"fiscal_year"`
	AllocatedDate string           `json:"allocated_date"`
	AllocatedBy   string           `json:"allocated_by,omitempty"`
}

type PolicyDecision struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Status       PolicyStatus `json:"status"`
	ProposedBy   string       `json:"proposed_by"`
	ProposedDate string       `json:"proposed_date"`
	Impact       string       `json:"impact"`
	DecidedBy    string       `json:"decided_by,omitempty"`
	DecidedDate  string       `json:"decided_date,omitempty"`
}

type PaymentRequest struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"project_id"`
	ProjectName  string        `json:"project_name"`
	Requester    string        `json:"requester"`
	Amount       int64         `json:"amount"`
	Purpose      string        `json:"purpose"`
	Status       PaymentStatus `json:"status"`
	RequestDate  string        `json:"request_date"`
	ApprovedBy   string        `json:"approved_by,omitempty"`
	ApprovedDate string        `json:"approved_date,omitempty"`
}

type Contractor struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Company           string  `json:"company"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Rating            float64 `json:"rating"`
	CompletedProjects int     `json:"completed_projects"`
	OngoingProjects   int     `json:"ongoing_projects"`
	Specialization    string  `json:"specialization"`
	Verified          bool    `json:"verified"`
	RegisteredDate    string  `json:"registered_date"`
}

type QualityReport struct {
	ID              string              `json:"id"`
	ProjectID       string              `json:"project_id"`
	ProjectName     string              `json:"project_name"`
	InspectorName   string              `json:"inspector_name"`
	InspectionDate  string              `json:"inspection_date"`
	Status          QualityReportStatus `json:"status"`
	Findings        string              `json:"findings"`
	Recommendations string              `json:"recommendations"`
}

// ============================================================================
// AGGREGATES
// ============================================================================

// NationalStats is the single source of truth for budget totals. Mutated
// only through store commands, never exposed for direct field writes.
type NationalStats struct {
	TotalBudget       int64 `json:"total_budget"`
	AllocatedBudget   int64 `json:"allocated_budget"`
	SpentBudget       int64 `json:"spent_budget"`
	TotalProjects     int   `json:"total_projects"`
	CompletedProjects int   `json:"completed_projects"`
	OngoingProjects   int   `json:"ongoing_projects"`
	DelayedProjects   int   `json:"delayed_projects"`
	TotalContractors  int   `json:"total_contractors"`
	Provinces         int   `json:"provinces"`
	LocalUnits        int   `json:"local_units"`
}

type ProvinceStats struct {
	Name        string `json:"name"`
	Projects    int    `json:"projects"`
	Utilization int    `json:"utilization"`
	Completion  int    `json:"completion"`
	Budget      int64  `json:"budget"`
	Spent       int64  `json:"spent"`
}

// ============================================================================
// ADVISORY ANALYSIS
// ============================================================================

// AllocationAnalysis is the strict schema for the advisory AI's allocation
// review. Any response that does not parse into this shape is discarded in
// favour of the deterministic fallback.
type AllocationAnalysis struct {
	FeasibilityScore       int                    `json:"feasibility_score"`
	RiskLevel              RiskLevel              `json:"risk_level"`
	Recommendations        []string               `json:"recommendations"`
	PotentialIssues        []string               `json:"potential_issues"`
	BenchmarkComparison    string                 `json:"benchmark_comparison"`
	ApprovalRecommendation ApprovalRecommendation `json:"approval_recommendation"`
	Simulated              bool                   `json:"simulated"`
}

// FeasibilityAnalysis is the free-text project feasibility report.
type FeasibilityAnalysis struct {
	Report    string `json:"report"`
	Simulated bool   `json:"simulated"`
}

// RatingCategories scores a contractor on each performance dimension, 0-5.
type RatingCategories struct {
	TimeManagement  float64 `json:"time_management"`
	BudgetAdherence float64 `json:"budget_adherence"`
	Quality         float64 `json:"quality"`
	Safety          float64 `json:"safety"`
}

// ContractorRating is the strict schema for the advisory AI's contractor
// performance review. It is presented for human decision; the contractor's
// stored rating is never overwritten from it.
type ContractorRating struct {
	OverallRating  float64          `json:"overall_rating"`
	Categories     RatingCategories `json:"categories"`
	Strengths      []string         `json:"strengths"`
	Concerns       []string         `json:"concerns"`
	Recommendation string           `json:"recommendation"`
	Simulated      bool             `json:"simulated"`
}
