package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/landlordly/internal/api/dto"
	"github.com/spec-kit/landlordly/internal/auth"
	"github.com/spec-kit/landlordly/internal/service"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

// InvitesHandler exposes invite issuance for landlords.
type InvitesHandler struct {
	invites *service.InviteService
}

// NewInvitesHandler constructs handler.
func NewInvitesHandler(inviteService *service.InviteService) *InvitesHandler {
	return &InvitesHandler{invites: inviteService}
}

// Issue handles POST /invites. The returned link embeds the code so it can be
// shared with a prospective tenant as-is.
func (h *InvitesHandler) Issue(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	invite, err := h.invites.Issue(c.Context(), principal.User.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.InviteResponse{Code: invite.Code, Link: invite.Link},
	})
}
