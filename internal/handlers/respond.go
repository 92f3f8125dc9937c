package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"governance-service/internal/models"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

// respondError maps command errors onto the response envelope. Every typed
// error in the taxonomy gets a stable code clients can branch on.
func respondError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", err.Error()))
	case errors.Is(err, models.ErrUnauthorizedSize):
		return c.Status(http.StatusForbidden).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED_SIZE", err.Error()))
	case errors.Is(err, models.ErrBudgetOutOfRange):
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BUDGET_OUT_OF_RANGE", err.Error()))
	case errors.Is(err, models.ErrInsufficientFunds):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("INSUFFICIENT_FUNDS", err.Error()))
	case errors.Is(err, models.ErrAlreadyDecided):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("ALREADY_DECIDED", err.Error()))
	case errors.Is(err, models.ErrAlreadyProcessed):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("ALREADY_PROCESSED", err.Error()))
	case errors.Is(err, models.ErrBudgetExceeded):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("BUDGET_EXCEEDED", err.Error()))
	case errors.Is(err, models.ErrInvalidDateRange):
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_DATE_RANGE", err.Error()))
	case errors.Is(err, models.ErrInvalidInput):
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_INPUT", err.Error()))
	default:
		slog.Error("Unexpected command error", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_ERROR", "An unexpected error occurred"))
	}
}
