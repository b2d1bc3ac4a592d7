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

// NoticesHandler manages formal notice endpoints.
type NoticesHandler struct {
	service *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{service: noticeService}
}

// Send POST /notices.
func (h *NoticesHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UnitID == "" {
		return apperrors.NewValidationError("unit_id required", nil)
	}
	if req.Type != "" && !validNoticeType(domain.NoticeType(req.Type)) {
		return apperrors.NewValidationError("invalid notice type", nil)
	}

	input := service.NoticeCreateInput{
		Type:    domain.NoticeType(req.Type),
		UnitID:  req.UnitID,
		Title:   req.Title,
		Content: req.Content,
	}
	notice, err := h.service.Send(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": noticeResponse(notice)})
}

// List GET /notices returns notices addressed to the tenant.
func (h *NoticesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	notices, err := h.service.ListForTenant(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		items = append(items, noticeResponse(&notices[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Acknowledge POST /notices/:id/ack.
func (h *NoticesHandler) Acknowledge(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Acknowledge(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func validNoticeType(t domain.NoticeType) bool {
	switch t {
	case domain.NoticeTypeThreeDay, domain.NoticeTypeSevenDay,
		domain.NoticeTypeThirtyDay, domain.NoticeTypeCustom:
		return true
	}
	return false
}

func noticeResponse(notice *domain.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{
		ID:           notice.ID,
		Type:         string(notice.Type),
		UnitID:       notice.UnitID,
		TenantID:     notice.TenantID,
		Title:        notice.Title,
		Content:      notice.Content,
		SentAt:       notice.SentAt,
		Acknowledged: notice.Acknowledged,
	}
}
