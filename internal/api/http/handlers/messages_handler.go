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

const defaultThreadLimit = 100

// MessagesHandler manages chat endpoints, including the assistant thread.
type MessagesHandler struct {
	service *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{service: messageService}
}

// List GET /messages returns the caller's thread, oldest first.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	limit := c.QueryInt("limit", defaultThreadLimit)
	if limit <= 0 || limit > 500 {
		limit = defaultThreadLimit
	}

	messages, err := h.service.ListThread(c.Context(), principal.User.ID, limit)
	if err != nil {
		return err
	}
	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, messageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Send POST /messages stores a message and, for assistant-bound messages,
// returns the generated reply alongside it.
func (h *MessagesHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, reply, err := h.service.Send(c.Context(), principal.User.ID, req.ReceiverID, req.Body)
	if err != nil {
		return err
	}

	resp := dto.SendMessageResponse{Message: messageResponse(msg)}
	if reply != nil {
		r := messageResponse(reply)
		resp.Reply = &r
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

func messageResponse(msg *domain.ChatMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:            msg.ID,
		SenderID:      msg.SenderID,
		ReceiverID:    msg.ReceiverID,
		Body:          msg.Body,
		FromAssistant: msg.FromAssistant,
		Read:          msg.Read,
		CreatedAt:     msg.CreatedAt,
	}
}
