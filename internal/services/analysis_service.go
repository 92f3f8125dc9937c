package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"governance-service/internal/ai/gemini"
	"governance-service/internal/database/redis"
	"governance-service/internal/models"
)

const (
	analysisTimeout  = 20 * time.Second
	analysisCacheTTL = 6 * time.Hour
)

// AnalysisService produces advisory feasibility commentary for allocation
// and project proposals. It is strictly non-authoritative: it never touches
// core state, never blocks a command, and never fails — any Gemini error,
// timeout or malformed response degrades to a deterministic local analysis.
type AnalysisService struct {
	selector *gemini.ClientSelector
	cache    *redis.Client
}

// NewAnalysisService accepts a nil selector (no API keys configured) and a
// nil cache (Redis unavailable); both simply disable their feature.
func NewAnalysisService(selector *gemini.ClientSelector, cache *redis.Client) *AnalysisService {
	return &AnalysisService{selector: selector, cache: cache}
}

// AnalyzeBudgetAllocation reviews an allocation proposal. The AI response
// must match the strict analysis schema; otherwise the simulated analysis is
// returned with Simulated set.
func (s *AnalysisService) AnalyzeBudgetAllocation(ctx context.Context, input models.AllocateBudgetInput) models.AllocationAnalysis {
	cacheKey := analysisCacheKey("allocation", input)
	if cached, ok := s.cachedAllocation(ctx, cacheKey); ok {
		return cached
	}

	if s.selector == nil || s.selector.ClientCount() == 0 {
		return fallbackAllocationAnalysis(input)
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	prompt := fmt.Sprintf(gemini.AllocationAnalysisPromptTemplate,
		input.Recipient, input.RecipientType, input.Amount, input.Purpose, input.FiscalYear)

	var analysis models.AllocationAnalysis
	err := s.selector.TryAllClients(func(client *gemini.Client, _ int) error {
		var candidate models.AllocationAnalysis
		if err := client.GenerateJSON(ctx, prompt, &candidate); err != nil {
			return err
		}
		if err := validateAllocationAnalysis(candidate); err != nil {
			return err
		}
		analysis = candidate
		return nil
	})
	if err != nil {
		slog.Warn("Allocation analysis degraded to simulated fallback", "error", err)
		return fallbackAllocationAnalysis(input)
	}

	s.storeInCache(ctx, cacheKey, analysis)
	return analysis
}

// AnalyzeProjectFeasibility produces a free-text feasibility report for a
// proposed project.
func (s *AnalysisService) AnalyzeProjectFeasibility(ctx context.Context, input models.CreateProjectInput) models.FeasibilityAnalysis {
	cacheKey := analysisCacheKey("feasibility", input)
	if cached, ok := s.cachedFeasibility(ctx, cacheKey); ok {
		return cached
	}

	if s.selector == nil || s.selector.ClientCount() == 0 {
		return fallbackFeasibilityAnalysis(input)
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	prompt := fmt.Sprintf(gemini.FeasibilityPromptTemplate,
		input.Title, input.Description, input.Budget, input.Size,
		input.StartDate, input.EndDate, input.Province, input.LocalUnit, input.Priority)

	var report string
	err := s.selector.TryAllClients(func(client *gemini.Client, _ int) error {
		text, err := client.GenerateText(ctx, prompt)
		if err != nil {
			return err
		}
		if text == "" {
			return fmt.Errorf("empty feasibility report")
		}
		report = text
		return nil
	})
	if err != nil {
		slog.Warn("Feasibility analysis degraded to simulated fallback", "error", err)
		return fallbackFeasibilityAnalysis(input)
	}

	analysis := models.FeasibilityAnalysis{Report: report}
	s.storeInCache(ctx, cacheKey, analysis)
	return analysis
}

// AnalyzeContractorRating scores a contractor's performance from their
// project history. Advisory only: the result is presented alongside the
// stored rating, never written back to it.
func (s *AnalysisService) AnalyzeContractorRating(ctx context.Context, contractor models.Contractor, history []models.Project) models.ContractorRating {
	cacheKey := analysisCacheKey("contractor-rating", struct {
		Contractor models.Contractor `json:"contractor"`
		History    []models.Project  `json:"history"`
	}{contractor, history})
	if cached, ok := s.cachedContractorRating(ctx, cacheKey); ok {
		return cached
	}

	if s.selector == nil || s.selector.ClientCount() == 0 {
		return fallbackContractorRating(contractor, history)
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	prompt := fmt.Sprintf(gemini.ContractorRatingPromptTemplate, contractorPerformanceData(contractor, history))

	var rating models.ContractorRating
	err := s.selector.TryAllClients(func(client *gemini.Client, _ int) error {
		var candidate models.ContractorRating
		if err := client.GenerateJSON(ctx, prompt, &candidate); err != nil {
			return err
		}
		if err := validateContractorRating(candidate); err != nil {
			return err
		}
		rating = candidate
		return nil
	})
	if err != nil {
		slog.Warn("Contractor rating degraded to simulated fallback", "error", err)
		return fallbackContractorRating(contractor, history)
	}

	s.storeInCache(ctx, cacheKey, rating)
	return rating
}

func contractorPerformanceData(contractor models.Contractor, history []models.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contractor: %s\nCompany: %s\nCurrent Rating: %.1f\n\nProjects History:\n",
		contractor.Name, contractor.Company, contractor.Rating)

	completed, inProgress, delayed := 0, 0, 0
	for i, p := range history {
		switch p.Status {
		case models.ProjectCompleted:
			completed++
		case models.ProjectInProgress:
			inProgress++
		case models.ProjectDelayed:
			delayed++
		}
		fmt.Fprintf(&b, "\n%d. %s\n   - Budget: Rs. %d\n   - Spent: Rs. %d\n   - Progress: %d%%\n   - Status: %s\n   - Timeline: %s to %s\n",
			i+1, p.Title, p.Budget, p.SpentAmount, p.Progress, p.Status, p.StartDate, p.EndDate)
	}

	fmt.Fprintf(&b, "\nTotal Projects: %d\nCompleted: %d\nIn Progress: %d\nDelayed: %d\n",
		len(history), completed, inProgress, delayed)
	return b.String()
}

// ============================================================================
// SCHEMA VALIDATION (fail closed)
// ============================================================================

func validateAllocationAnalysis(a models.AllocationAnalysis) error {
	if a.FeasibilityScore < 0 || a.FeasibilityScore > 100 {
		return fmt.Errorf("feasibility score %d outside 0-100", a.FeasibilityScore)
	}
	switch a.RiskLevel {
	case models.RiskLow, models.RiskMedium, models.RiskHigh:
	default:
		return fmt.Errorf("unknown risk level %q", a.RiskLevel)
	}
	switch a.ApprovalRecommendation {
	case models.RecommendApprove, models.RecommendApproveWithConditions, models.RecommendReject:
	default:
		return fmt.Errorf("unknown approval recommendation %q", a.ApprovalRecommendation)
	}
	if len(a.Recommendations) == 0 {
		return fmt.Errorf("no recommendations returned")
	}
	return nil
}

func validateContractorRating(r models.ContractorRating) error {
	if r.OverallRating < 0 || r.OverallRating > 5 {
		return fmt.Errorf("overall rating %.2f outside 0-5", r.OverallRating)
	}
	scores := []float64{
		r.Categories.TimeManagement, r.Categories.BudgetAdherence,
		r.Categories.Quality, r.Categories.Safety,
	}
	for _, score := range scores {
		if score < 0 || score > 5 {
			return fmt.Errorf("category score %.2f outside 0-5", score)
		}
	}
	if len(r.Strengths) == 0 {
		return fmt.Errorf("no strengths returned")
	}
	if r.Recommendation == "" {
		return fmt.Errorf("empty recommendation")
	}
	return nil
}

// ============================================================================
// DETERMINISTIC FALLBACKS
// ============================================================================

func fallbackAllocationAnalysis(input models.AllocateBudgetInput) models.AllocationAnalysis {
	amount := input.Amount

	score := 90
	risk := models.RiskLow
	approval := models.RecommendApprove
	switch {
	case amount > 100_000_000_000:
		score, risk, approval = 65, models.RiskHigh, models.RecommendApproveWithConditions
	case amount > 10_000_000_000:
		score, risk = 80, models.RiskMedium
	}

	comparison := "within"
	if amount > 50_000_000_000 {
		comparison = "above"
	}

	return models.AllocationAnalysis{
		FeasibilityScore: score,
		RiskLevel:        risk,
		Recommendations: []string{
			fmt.Sprintf("Ensure %s has adequate project management capacity for Rs. %d", input.Recipient, amount),
			"Establish clear milestone-based payment schedules",
			"Require quarterly progress reports and financial audits",
			"Set up dedicated monitoring committee with local representation",
			"Include contingency fund (10-15%) for unforeseen circumstances",
		},
		PotentialIssues: []string{
			"Possible delays in fund utilization due to administrative capacity",
			"Risk of budget reallocation if spending targets not met",
			"Need for technical expertise in project implementation",
		},
		BenchmarkComparison: fmt.Sprintf(
			"This allocation is %s the average for similar %s allocations in Nepal.",
			comparison, input.RecipientType),
		ApprovalRecommendation: approval,
		Simulated:              true,
	}
}

func fallbackFeasibilityAnalysis(input models.CreateProjectInput) models.FeasibilityAnalysis {
	months := timelineMonths(input.StartDate, input.EndDate)

	complexity := "STRAIGHTFORWARD"
	switch input.Size {
	case models.SizeLarge:
		complexity = "COMPLEX"
	case models.SizeMedium:
		complexity = "MODERATE"
	}

	viability := "REASONABLE"
	if input.Budget > 50_000_000_000 {
		viability = "REQUIRES CAREFUL MONITORING"
	}

	timeline := "REALISTIC"
	switch {
	case months < 12:
		timeline = "AGGRESSIVE"
	case months > 60:
		timeline = "EXTENDED"
	}

	report := fmt.Sprintf(`SIMULATED FEASIBILITY ANALYSIS (advisory service unavailable)

PROJECT: %s
LOCATION: %s, %s
BUDGET: Rs. %d
TIMELINE: %d months

1. FEASIBILITY ASSESSMENT
Technical Feasibility: %s
Financial Viability: %s
Timeline Reasonableness: %s

2. RISK ANALYSIS
- Land acquisition may delay populated-area work by 3-6 months
- Budget overrun risk scales with project size; use milestone-based payments
- Environmental clearances can take 6-12 months

3. RECOMMENDATIONS
- Complete land acquisition before construction starts
- Establish strict quality control and monitoring systems
- Hold a 10-15%% contingency reserve
- Schedule around monsoon season in %s`,
		input.Title, input.Province, input.LocalUnit, input.Budget, months,
		complexity, viability, timeline, input.Province)

	return models.FeasibilityAnalysis{Report: report, Simulated: true}
}

func fallbackContractorRating(contractor models.Contractor, history []models.Project) models.ContractorRating {
	baseRating := contractor.Rating
	if baseRating == 0 {
		baseRating = 3
	}

	if len(history) == 0 {
		return models.ContractorRating{
			OverallRating: baseRating,
			Categories: models.RatingCategories{
				TimeManagement:  baseRating,
				BudgetAdherence: baseRating,
				Quality:         baseRating,
				Safety:          4.2,
			},
			Strengths: []string{
				fmt.Sprintf("Registered contractor with %s", contractor.Company),
				fmt.Sprintf("%d completed projects on record", contractor.CompletedProjects),
			},
			Concerns: []string{
				"No tracked project history available for evaluation",
				"Periodic quality audits recommended",
			},
			Recommendation: "RECOMMENDED WITH MONITORING for future projects. Establish clear milestone reviews and budget oversight.",
			Simulated:      true,
		}
	}

	total := len(history)
	completed := 0
	var progressSum, adherenceSum float64
	for _, p := range history {
		if p.Status == models.ProjectCompleted {
			completed++
		}
		progressSum += float64(p.Progress)
		if p.Budget > 0 {
			adherenceSum += float64(p.SpentAmount) / float64(p.Budget)
		} else {
			adherenceSum += 1
		}
	}
	avgProgress := progressSum / float64(total)
	avgAdherence := adherenceSum / float64(total)

	quality := contractor.Rating
	if quality == 0 {
		quality = 4.0
	}

	budgetConcern := "Minor budget variance"
	if avgAdherence > 1.1 {
		budgetConcern = "Budget overruns observed in recent projects"
	}
	loadConcern := "Project load is manageable"
	if total-completed > 1 {
		loadConcern = "Multiple ongoing projects may affect focus"
	}

	scale := string(history[0].Size)
	recommendation := "RECOMMENDED WITH MONITORING for future projects. Establish clear milestone reviews and budget oversight."
	if avgProgress > 70 && avgAdherence < 1.2 {
		recommendation = fmt.Sprintf(
			"HIGHLY RECOMMENDED for future %s projects. Contractor demonstrates consistent performance and reliability.", scale)
	}

	return models.ContractorRating{
		OverallRating: clampScore(avgProgress/20 + baseRating),
		Categories: models.RatingCategories{
			TimeManagement:  clampScore(float64(completed) / float64(total) * 5),
			BudgetAdherence: clampScore(1 / avgAdherence * 5),
			Quality:         quality,
			Safety:          4.2,
		},
		Strengths: []string{
			fmt.Sprintf("Successfully completed %d out of %d projects", completed, total),
			fmt.Sprintf("Average project progress of %.1f%%", avgProgress),
			fmt.Sprintf("Experienced in %s scale projects", scale),
			fmt.Sprintf("Strong track record with %s", contractor.Company),
			"Consistent performance across multiple provinces",
		},
		Concerns: []string{
			budgetConcern,
			loadConcern,
			"Periodic quality audits recommended",
			"Safety training documentation should be updated",
		},
		Recommendation: recommendation,
		Simulated:      true,
	}
}

func clampScore(v float64) float64 {
	if v > 5 {
		return 5
	}
	if v < 0 {
		return 0
	}
	return v
}

func timelineMonths(startDate, endDate string) int {
	start, err1 := time.Parse("2006-01-02", startDate)
	end, err2 := time.Parse("2006-01-02", endDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / (24 * 30))
}

// ============================================================================
// CACHING
// ============================================================================

func analysisCacheKey(kind string, input any) string {
	payload, _ := json.Marshal(input)
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("analysis:%s:%s", kind, hex.EncodeToString(sum[:]))
}

func (s *AnalysisService) cachedAllocation(ctx context.Context, key string) (models.AllocationAnalysis, bool) {
	if s.cache == nil {
		return models.AllocationAnalysis{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !redis.IsCacheMiss(err) {
			slog.Warn("Analysis cache read failed", "key", key, "error", err)
		}
		return models.AllocationAnalysis{}, false
	}
	var analysis models.AllocationAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return models.AllocationAnalysis{}, false
	}
	return analysis, true
}

func (s *AnalysisService) cachedFeasibility(ctx context.Context, key string) (models.FeasibilityAnalysis, bool) {
	if s.cache == nil {
		return models.FeasibilityAnalysis{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !redis.IsCacheMiss(err) {
			slog.Warn("Analysis cache read failed", "key", key, "error", err)
		}
		return models.FeasibilityAnalysis{}, false
	}
	var analysis models.FeasibilityAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return models.FeasibilityAnalysis{}, false
	}
	return analysis, true
}

func (s *AnalysisService) cachedContractorRating(ctx context.Context, key string) (models.ContractorRating, bool) {
	if s.cache == nil {
		return models.ContractorRating{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !redis.IsCacheMiss(err) {
			slog.Warn("Analysis cache read failed", "key", key, "error", err)
		}
		return models.ContractorRating{}, false
	}
	var rating models.ContractorRating
	if err := json.Unmarshal([]byte(raw), &rating); err != nil {
		return models.ContractorRating{}, false
	}
	return rating, true
}

func (s *AnalysisService) storeInCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), analysisCacheTTL); err != nil {
		slog.Warn("Analysis cache write failed", "key", key, "error", err)
	}
}
