package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/landlordly/internal/assistant"
	"github.com/spec-kit/landlordly/internal/domain"
)

type failingAssistant struct{}

func (failingAssistant) Reply(context.Context, string) (string, error) {
	return "", errors.New("endpoint down")
}

func TestSendToAssistantStoresReply(t *testing.T) {
	t.Parallel()
	messages := newFakeMessageRepo()
	svc := NewMessageService(MessageDependencies{
		MessageRepo: messages,
		Assistant:   assistant.NewScriptedClient(),
	})
	ctx := context.Background()

	msg, reply, err := svc.Send(ctx, "tenant-1", "", "When is rent due?")
	require.NoError(t, err)
	require.Equal(t, domain.AssistantSenderID, msg.ReceiverID)
	require.NotNil(t, reply)
	require.True(t, reply.FromAssistant)
	require.Equal(t, domain.AssistantSenderID, reply.SenderID)
	require.Equal(t, "tenant-1", reply.ReceiverID)

	thread, err := svc.ListThread(ctx, "tenant-1", 50)
	require.NoError(t, err)
	require.Len(t, thread, 2)
}

func TestSendToUserSkipsAssistant(t *testing.T) {
	t.Parallel()
	svc := NewMessageService(MessageDependencies{
		MessageRepo: newFakeMessageRepo(),
		Assistant:   failingAssistant{},
	})

	msg, reply, err := svc.Send(context.Background(), "tenant-1", "landlord-1", "Hello")
	require.NoError(t, err)
	require.Nil(t, reply)
	require.Equal(t, "landlord-1", msg.ReceiverID)
}

func TestSendAssistantFailureKeepsUserMessage(t *testing.T) {
	t.Parallel()
	messages := newFakeMessageRepo()
	svc := NewMessageService(MessageDependencies{
		MessageRepo: messages,
		Assistant:   failingAssistant{},
	})
	ctx := context.Background()

	msg, reply, err := svc.Send(ctx, "tenant-1", "", "Help me")
	require.Error(t, err)
	require.NotNil(t, msg)
	require.Nil(t, reply)

	thread, listErr := svc.ListThread(ctx, "tenant-1", 50)
	require.NoError(t, listErr)
	require.Len(t, thread, 1)
}

func TestSendValidatesBody(t *testing.T) {
	t.Parallel()
	svc := NewMessageService(MessageDependencies{
		MessageRepo: newFakeMessageRepo(),
		Assistant:   assistant.NewScriptedClient(),
	})

	_, _, err := svc.Send(context.Background(), "tenant-1", "", "   ")
	require.Error(t, err)
}

func TestStringPreviewKeepsRuneBoundaries(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", stringPreview("short", 120))

	// Cutting inside the two-byte é must not leave a broken sequence.
	preview := stringPreview("héllo", 2)
	require.Equal(t, "h", preview)
	require.True(t, utf8.ValidString(preview))

	long := strings.Repeat("ü", 100)
	preview = stringPreview(long, 33)
	require.True(t, utf8.ValidString(preview))
	require.LessOrEqual(t, len(preview), 33)
}

func TestListThreadMarksRead(t *testing.T) {
	t.Parallel()
	messages := newFakeMessageRepo()
	svc := NewMessageService(MessageDependencies{
		MessageRepo: messages,
		Assistant:   assistant.NewScriptedClient(),
	})
	ctx := context.Background()

	require.NoError(t, messages.Create(ctx, &domain.ChatMessage{
		SenderID:   "landlord-1",
		ReceiverID: "tenant-1",
		Body:       "Inspection on Friday",
	}))

	thread, err := svc.ListThread(ctx, "tenant-1", 50)
	require.NoError(t, err)
	require.Len(t, thread, 1)

	thread, err = svc.ListThread(ctx, "tenant-1", 50)
	require.NoError(t, err)
	require.True(t, thread[0].Read)
}
