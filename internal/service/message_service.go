package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/spec-kit/landlordly/internal/assistant"
	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/repository"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

// MessageService persists chat threads and produces assistant replies.
type MessageService struct {
	messages   repository.MessageRepository
	assistant  assistant.Client
	dispatcher events.Dispatcher
}

// MessageDependencies bundles collaborators for the message service.
type MessageDependencies struct {
	MessageRepo repository.MessageRepository
	Assistant   assistant.Client
	Dispatcher  events.Dispatcher
}

// NewMessageService constructs the service.
func NewMessageService(deps MessageDependencies) *MessageService {
	return &MessageService{
		messages:   deps.MessageRepo,
		assistant:  deps.Assistant,
		dispatcher: deps.Dispatcher,
	}
}

// ListThread returns the caller's conversation, marking their inbox read.
func (s *MessageService) ListThread(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	msgs, err := s.messages.ListThread(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.messages.MarkRead(ctx, userID); err != nil {
		return nil, apperrors.MapError(err)
	}
	return msgs, nil
}

// Send stores the sender's message. When the message is addressed to the
// assistant, a reply is generated and stored too. The user message is
// persisted even if the assistant fails; the failure surfaces to the caller
// and no reply message is recorded.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, body string) (*domain.ChatMessage, *domain.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil, apperrors.NewValidationError("message body required", nil)
	}
	if receiverID == "" {
		receiverID = domain.AssistantSenderID
	}

	msg := &domain.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	s.publishSent(ctx, senderID, msg)

	if receiverID != domain.AssistantSenderID {
		return msg, nil, nil
	}

	replyBody, err := s.assistant.Reply(ctx, body)
	if err != nil {
		return msg, nil, apperrors.NewDomainError("ASSISTANT_UNAVAILABLE", "failed to get assistant response", 502, nil)
	}

	reply := &domain.ChatMessage{
		SenderID:      domain.AssistantSenderID,
		ReceiverID:    senderID,
		Body:          replyBody,
		FromAssistant: true,
	}
	if err := s.messages.Create(ctx, reply); err != nil {
		return msg, nil, apperrors.MapError(err)
	}
	s.publishSent(ctx, domain.AssistantSenderID, reply)

	return msg, reply, nil
}

func (s *MessageService) publishSent(ctx context.Context, actorID string, msg *domain.ChatMessage) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventMessageSent,
		ActorID: actorID,
		Payload: events.MessageSentPayload{
			MessageID:     msg.ID,
			ReceiverID:    msg.ReceiverID,
			FromAssistant: msg.FromAssistant,
			BodyPreview:   stringPreview(msg.Body, 120),
		},
	})
}

func stringPreview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Truncate on a rune boundary so multibyte characters stay intact.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
