package domain

import "time"

// AssistantSenderID is the reserved sender/receiver ID for assistant messages.
const AssistantSenderID = "assistant"

// ChatMessage is one entry in a tenant/landlord conversation thread.
// Assistant replies carry FromAssistant=true and AssistantSenderID.
type ChatMessage struct {
	ID            string
	SenderID      string
	ReceiverID    string
	Body          string
	FromAssistant bool
	Read          bool
	CreatedAt     time.Time
}
