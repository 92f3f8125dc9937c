package handlers

import (
	"net/http"

	"governance-service/internal/models"
	"governance-service/internal/services"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Register(app *fiber.App) {
	api := app.Group("/api")

	projectGroup := api.Group("/projects")
	projectGroup.Get("/", h.GetProjects)          // GET /api/projects
	projectGroup.Get("/:id", h.GetProjectByID)    // GET /api/projects/:id
	projectGroup.Post("/", h.CreateProject)       // POST /api/projects
	projectGroup.Patch("/:id", h.UpdateProject)   // PATCH /api/projects/:id

	api.Post("/validate/project-size", h.ValidateProjectSize) // POST /api/validate/project-size
}

// GetProjects lists projects; status, province, size and priority query
// filters are ANDed.
func (h *ProjectHandler) GetProjects(c fiber.Ctx) error {
	filters := models.ProjectFilters{
		Status:   c.Query("status"),
		Province: c.Query("province"),
		Size:     c.Query("size"),
		Priority: c.Query("priority"),
	}

	projects := h.projectService.GetProjects(filters)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"projects": projects,
		"count":    len(projects),
	}))
}

func (h *ProjectHandler) GetProjectByID(c fiber.Ctx) error {
	project, err := h.projectService.GetProjectByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(project))
}

func (h *ProjectHandler) CreateProject(c fiber.Ctx) error {
	var input models.CreateProjectInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid project payload"))
	}

	project, err := h.projectService.CreateProject(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(project))
}

func (h *ProjectHandler) UpdateProject(c fiber.Ctx) error {
	var updates models.UpdateProjectInput
	if err := c.Bind().Body(&updates); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid update payload"))
	}

	project, err := h.projectService.UpdateProject(c.Params("id"), updates)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(project))
}

// ValidateProjectSize runs the governance check without creating anything,
// so the dashboard can give feedback before submission.
func (h *ProjectHandler) ValidateProjectSize(c fiber.Ctx) error {
	var input models.ValidateProjectSizeInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid validation payload"))
	}

	result := h.projectService.ValidateProjectSize(input.Level, input.Size, input.Budget)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(result))
}
