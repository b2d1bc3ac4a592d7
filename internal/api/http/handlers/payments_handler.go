package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/landlordly/internal/api/dto"
	"github.com/spec-kit/landlordly/internal/auth"
	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/service"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

// PaymentsHandler manages rent payment endpoints.
type PaymentsHandler struct {
	service *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{service: paymentService}
}

// MakePayment POST /payments.
func (h *PaymentsHandler) MakePayment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.MakePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.MakePaymentInput{Amount: req.Amount}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}
	payment, err := h.service.MakePayment(c.Context(), principal.User.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrNoLeasedUnit) {
			return apperrors.NewConflict("no leased unit", nil)
		}
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": paymentResponse(payment)})
}

// History GET /payments/history.
func (h *PaymentsHandler) History(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	payments, err := h.service.PaymentHistory(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": paymentResponses(payments)})
}

// Upcoming GET /payments/upcoming.
func (h *PaymentsHandler) Upcoming(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	payments, err := h.service.UpcomingPayments(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": paymentResponses(payments)})
}

// UpdateStatus PATCH /payments/:id/status.
func (h *PaymentsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status := domain.PaymentStatus(req.Status)
	switch status {
	case domain.PaymentStatusPending, domain.PaymentStatusCompleted, domain.PaymentStatusFailed, domain.PaymentStatusLate:
	default:
		return apperrors.NewValidationError("invalid payment status", nil)
	}

	payment, err := h.service.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": paymentResponse(payment)})
}

func paymentResponses(payments []domain.Payment) []dto.PaymentResponse {
	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, paymentResponse(&payments[i]))
	}
	return items
}

func paymentResponse(payment *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:         payment.ID,
		UnitID:     payment.UnitID,
		TenantID:   payment.TenantID,
		Amount:     payment.Amount,
		Status:     string(payment.Status),
		DueDate:    payment.DueDate,
		PaidDate:   payment.PaidDate,
		LateFee:    payment.LateFee,
		ReceiptURL: payment.ReceiptURL,
	}
}
