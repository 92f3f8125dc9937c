package handlers

import (
	"net/http"

	"governance-service/internal/models"
	"governance-service/internal/services"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

// AnalysisHandler exposes the advisory AI endpoints. These are consulted
// before a user confirms a create or allocate action; they never gate the
// commands themselves and always return a result.
type AnalysisHandler struct {
	analysisService  *services.AnalysisService
	dashboardService *services.DashboardService
}

func NewAnalysisHandler(analysisService *services.AnalysisService, dashboardService *services.DashboardService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, dashboardService: dashboardService}
}

func (h *AnalysisHandler) Register(app *fiber.App) {
	analysisGroup := app.Group("/api/analysis")
	analysisGroup.Post("/budget-allocation", h.AnalyzeBudgetAllocation)     // POST /api/analysis/budget-allocation
	analysisGroup.Post("/project-feasibility", h.AnalyzeProjectFeasibility) // POST /api/analysis/project-feasibility
	analysisGroup.Post("/contractor-rating", h.AnalyzeContractorRating)     // POST /api/analysis/contractor-rating
}

func (h *AnalysisHandler) AnalyzeBudgetAllocation(c fiber.Ctx) error {
	var input models.AllocateBudgetInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid allocation payload"))
	}

	analysis := h.analysisService.AnalyzeBudgetAllocation(c.Context(), input)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(analysis))
}

func (h *AnalysisHandler) AnalyzeContractorRating(c fiber.Ctx) error {
	var input models.ContractorRatingInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid contractor rating payload"))
	}

	contractor, err := h.dashboardService.GetContractorByID(input.ContractorID)
	if err != nil {
		return respondError(c, err)
	}
	history := h.dashboardService.GetProjectsByContractor(contractor.ID)

	rating := h.analysisService.AnalyzeContractorRating(c.Context(), contractor, history)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(rating))
}

func (h *AnalysisHandler) AnalyzeProjectFeasibility(c fiber.Ctx) error {
	var input models.CreateProjectInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid project payload"))
	}

	analysis := h.analysisService.AnalyzeProjectFeasibility(c.Context(), input)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(analysis))
}
