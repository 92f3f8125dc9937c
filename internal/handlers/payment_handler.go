package handlers

import (
	"net/http"

	"governance-service/internal/models"
	"governance-service/internal/services"
	"governance-service/utils"

	"github.com/gofiber/fiber/v3"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Register(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")
	paymentGroup.Get("/", h.GetPaymentRequests)     // GET /api/payments
	paymentGroup.Post("/", h.CreatePaymentRequest)  // POST /api/payments
	paymentGroup.Patch("/:id", h.ProcessPayment)    // PATCH /api/payments/:id
}

func (h *PaymentHandler) CreatePaymentRequest(c fiber.Ctx) error {
	var input models.PaymentRequest
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid payment request payload"))
	}

	payment, err := h.paymentService.CreatePaymentRequest(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) GetPaymentRequests(c fiber.Ctx) error {
	payments := h.paymentService.GetPaymentRequests(c.Query("status"))
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]interface{}{
		"payment_requests": payments,
		"count":            len(payments),
	}))
}

func (h *PaymentHandler) ProcessPayment(c fiber.Ctx) error {
	var input models.PaymentProcessInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid payment decision payload"))
	}

	payment, err := h.paymentService.ProcessPayment(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payment))
}
