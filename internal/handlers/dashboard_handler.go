package handlers

import (
	"net/http"
	"strconv"

	"governance-service/internal/models"
	"governance-service/internal/services"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/stats/national", h.GetNationalStats)    // GET /api/stats/national
	api.Get("/stats/provinces", h.GetProvinceStats)   // GET /api/stats/provinces
	api.Get("/contractors", h.GetContractors)         // GET /api/contractors
	api.Get("/quality-reports", h.GetQualityReports)  // GET /api/quality-reports
}

func (h *DashboardHandler) GetNationalStats(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(
		utils.CreateSuccessResponse(h.dashboardService.GetNationalStats()))
}

func (h *DashboardHandler) GetProvinceStats(c fiber.Ctx) error {
	provinces := h.dashboardService.GetProvinceStats()
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"provinces": provinces,
		"count":     len(provinces),
	}))
}

func (h *DashboardHandler) GetContractors(c fiber.Ctx) error {
	filters := models.ContractorFilters{
		Specialization: c.Query("specialization"),
	}
	if verifiedParam := c.Query("verified"); verifiedParam != "" {
		verified, err := strconv.ParseBool(verifiedParam)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(
				utils.CreateErrorResponse("INVALID_QUERY", "verified must be true or false"))
		}
		filters.Verified = &verified
	}

	contractors := h.dashboardService.GetContractors(filters)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"contractors": contractors,
		"count":       len(contractors),
	}))
}

func (h *DashboardHandler) GetQualityReports(c fiber.Ctx) error {
	reports := h.dashboardService.GetQualityReports(c.Query("project_id"))
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"quality_reports": reports,
		"count":           len(reports),
	}))
}
