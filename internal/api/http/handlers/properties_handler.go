package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/landlordly/internal/api/dto"
	"github.com/spec-kit/landlordly/internal/auth"
	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/service"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

// PropertiesHandler manages landlord property and unit endpoints.
type PropertiesHandler struct {
	service *service.PropertyService
}

// NewPropertiesHandler constructs handler.
func NewPropertiesHandler(propertyService *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{service: propertyService}
}

// CreateProperty POST /properties.
func (h *PropertiesHandler) CreateProperty(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	property, err := h.service.CreateProperty(c.Context(), principal.User.ID, req.Name, req.Address, req.ImageURL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": propertyResponse(property)})
}

// ListProperties GET /properties.
func (h *PropertiesHandler) ListProperties(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	properties, err := h.service.ListProperties(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteProperty DELETE /properties/:id.
func (h *PropertiesHandler) DeleteProperty(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteProperty(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddUnit POST /properties/:id/units.
func (h *PropertiesHandler) AddUnit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	unit, err := h.service.AddUnit(c.Context(), principal.User.ID, c.Params("id"), req.UnitNumber, req.RentAmount)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": unitResponse(unit)})
}

// ListUnits GET /properties/:id/units.
func (h *PropertiesHandler) ListUnits(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	units, err := h.service.ListUnits(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		items = append(items, unitResponse(&units[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateUnit PATCH /units/:id.
func (h *PropertiesHandler) UpdateUnit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.UnitUpdateInput{
		UnitNumber: req.UnitNumber,
		RentAmount: req.RentAmount,
		TenantID:   req.TenantID,
		LeaseStart: req.LeaseStart,
		LeaseEnd:   req.LeaseEnd,
	}
	if req.Status != nil {
		status := domain.UnitStatus(*req.Status)
		if status != domain.UnitStatusVacant && status != domain.UnitStatusOccupied {
			return apperrors.NewValidationError("invalid unit status", nil)
		}
		input.Status = &status
	}
	unit, err := h.service.UpdateUnit(c.Context(), principal.User.ID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": unitResponse(unit)})
}

// MyUnit GET /units/mine returns the tenant's leased unit.
func (h *PropertiesHandler) MyUnit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	unit, err := h.service.GetTenantUnit(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": unitResponse(unit)})
}

func propertyResponse(property *domain.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		ImageURL:  property.ImageURL,
		CreatedAt: property.CreatedAt,
	}
}

func unitResponse(unit *domain.Unit) dto.UnitResponse {
	return dto.UnitResponse{
		ID:         unit.ID,
		PropertyID: unit.PropertyID,
		UnitNumber: unit.UnitNumber,
		RentAmount: unit.RentAmount,
		Status:     string(unit.Status),
		TenantID:   unit.TenantID,
		LeaseStart: unit.LeaseStart,
		LeaseEnd:   unit.LeaseEnd,
	}
}
