package handlers

import (
	"net/http"

	"governance-service/internal/models"
	"governance-service/internal/services"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

type PolicyHandler struct {
	policyService *services.PolicyService
}

func NewPolicyHandler(policyService *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

func (h *PolicyHandler) Register(app *fiber.App) {
	policyGroup := app.Group("/api/policies")
	policyGroup.Get("/", h.GetPolicies)        // GET /api/policies
	policyGroup.Patch("/:id", h.DecidePolicy)  // PATCH /api/policies/:id
}

func (h *PolicyHandler) GetPolicies(c fiber.Ctx) error {
	policies := h.policyService.GetPolicies(c.Query("status"))
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"policies": policies,
		"count":    len(policies),
	}))
}

func (h *PolicyHandler) DecidePolicy(c fiber.Ctx) error {
	var input models.PolicyDecisionInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid decision payload"))
	}

	policy, err := h.policyService.DecidePolicy(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}
