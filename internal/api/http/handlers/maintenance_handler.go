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

// MaintenanceHandler manages maintenance request endpoints.
type MaintenanceHandler struct {
	service *service.MaintenanceService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: maintenanceService}
}

// Create POST /maintenance.
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Priority != "" && !validMaintenancePriority(domain.MaintenancePriority(req.Priority)) {
		return apperrors.NewValidationError("invalid priority", nil)
	}

	input := service.MaintenanceCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.MaintenancePriority(req.Priority),
		ImageURLs:   req.ImageURLs,
	}
	request, err := h.service.Submit(c.Context(), principal.User.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrNoLeasedUnit) {
			return apperrors.NewConflict("no leased unit", nil)
		}
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": maintenanceResponse(request)})
}

// List GET /maintenance. Tenants see their own requests, landlords see
// requests across all of their units.
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	var (
		requests []domain.MaintenanceRequest
		err      error
	)
	if principal.Role == domain.RoleLandlord {
		requests, err = h.service.ListForLandlord(c.Context(), principal.User.ID)
	} else {
		requests, err = h.service.ListForTenant(c.Context(), principal.User.ID)
	}
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.MaintenanceResponse, 0, len(requests))
	for i := range requests {
		items = append(items, maintenanceResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /maintenance/:id/status.
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateMaintenanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status := domain.MaintenanceStatus(req.Status)
	switch status {
	case domain.MaintenanceStatusOpen, domain.MaintenanceStatusInProgress, domain.MaintenanceStatusResolved:
	default:
		return apperrors.NewValidationError("invalid maintenance status", nil)
	}

	request, err := h.service.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return apperrors.NewConflict("invalid status transition", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": maintenanceResponse(request)})
}

func validMaintenancePriority(p domain.MaintenancePriority) bool {
	switch p {
	case domain.MaintenancePriorityLow, domain.MaintenancePriorityMedium,
		domain.MaintenancePriorityHigh, domain.MaintenancePriorityEmergency:
		return true
	}
	return false
}

func maintenanceResponse(request *domain.MaintenanceRequest) dto.MaintenanceResponse {
	return dto.MaintenanceResponse{
		ID:          request.ID,
		UnitID:      request.UnitID,
		TenantID:    request.TenantID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    string(request.Priority),
		Status:      string(request.Status),
		ImageURLs:   request.ImageURLs,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
