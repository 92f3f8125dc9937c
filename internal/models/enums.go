package models

// GovernmentLevel is the tier of government creating projects or allocations.
type GovernmentLevel string

const (
	LevelCentral    GovernmentLevel = "CENTRAL"
	LevelProvincial GovernmentLevel = "PROVINCIAL"
	LevelLocal      GovernmentLevel = "LOCAL"
)

func (l GovernmentLevel) IsValid() bool {
	switch l {
	case LevelCentral, LevelProvincial, LevelLocal:
		return true
	}
	return false
}

// ProjectSize classifies a project by budget scale. Each size maps to a
// closed budget interval and a minimum approval authority.
type ProjectSize string

const (
	SizeSmall  ProjectSize = "SMALL"
	SizeMedium ProjectSize = "MEDIUM"
	SizeLarge  ProjectSize = "LARGE"
)

func (s ProjectSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectDelayed    ProjectStatus = "DELAYED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type RecipientType string

const (
	RecipientProvince  RecipientType = "PROVINCE"
	RecipientLocalUnit RecipientType = "LOCAL_UNIT"
	RecipientMinistry  RecipientType = "MINISTRY"
)

// AllocationStatus is terminal: allocations are immutable once created.
type AllocationStatus string

const AllocationAllocated AllocationStatus = "ALLOCATED"

type PolicyStatus string

const (
	PolicyPending  PolicyStatus = "PENDING"
	PolicyApproved PolicyStatus = "APPROVED"
	PolicyRejected PolicyStatus = "REJECTED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
)

type QualityReportStatus string

const (
	QualityPassed           QualityReportStatus = "PASSED"
	QualityFailed           QualityReportStatus = "FAILED"
	QualityNeedsImprovement QualityReportStatus = "NEEDS_IMPROVEMENT"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type ApprovalRecommendation string

const (
	RecommendApprove               ApprovalRecommendation = "APPROVE"
	RecommendApproveWithConditions ApprovalRecommendation = "APPROVE_WITH_CONDITIONS"
	RecommendReject                ApprovalRecommendation = "REJECT"
)
