package handlers

import (
	"net/http"

	"governance-service/internal/models"
	"governance-service/internal/services"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

type AllocationHandler struct {
	allocationService *services.AllocationService
}

func NewAllocationHandler(allocationService *services.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

func (h *AllocationHandler) Register(app *fiber.App) {
	allocationGroup := app.Group("/api/allocations")
	allocationGroup.Get("/", h.GetAllocations)   // GET /api/allocations
	allocationGroup.Post("/", h.AllocateBudget)  // POST /api/allocations
}

func (h *AllocationHandler) GetAllocations(c fiber.Ctx) error {
	filters := models.AllocationFilters{
		RecipientType: c.Query("recipient_type"),
		FiscalYear:    c.Query("fiscal_year"),
	}

	allocations := h.allocationService.GetAllocations(filters)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"allocations": allocations,
		"count":       len(allocations),
	}))
}

func (h *AllocationHandler) AllocateBudget(c fiber.Ctx) error {
	var input models.AllocateBudgetInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid allocation payload"))
	}

	allocation, err := h.allocationService.AllocateBudget(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(allocation))
}
