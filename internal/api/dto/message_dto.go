package dto

import "time"

// SendMessageRequest payload for chat messages. An empty receiver_id sends the
// message to the assistant.
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Body       string `json:"body"`
}

// MessageResponse is the public shape of a chat message.
type MessageResponse struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	Body          string    `json:"body"`
	FromAssistant bool      `json:"from_assistant"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// SendMessageResponse bundles the stored message with an assistant reply when
// one was produced.
type SendMessageResponse struct {
	Message MessageResponse  `json:"message"`
	Reply   *MessageResponse `json:"reply,omitempty"`
}
