package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/landlordly/internal/config"
)

func TestScriptedClientKeywords(t *testing.T) {
	t.Parallel()
	client := NewScriptedClient()
	ctx := context.Background()

	cases := []struct {
		message  string
		contains string
	}{
		{"When is my rent due?", "Payments"},
		{"The sink is broken", "maintenance request"},
		{"Can I renew my lease?", "lease"},
		{"hello there", "Hi!"},
		{"what is the meaning of life", "tell me a bit more"},
	}
	for _, tc := range cases {
		reply, err := client.Reply(ctx, tc.message)
		require.NoError(t, err)
		require.Contains(t, reply, tc.contains, "message: %s", tc.message)
	}
}

func TestHTTPClientReply(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		require.Equal(t, "system", req.Messages[0].Role)
		require.Equal(t, "user", req.Messages[1].Role)

		_ = json.NewEncoder(w).Encode(completionResponse{
			Completion: "echo: " + req.Messages[1].Content,
		})
	}))
	defer server.Close()

	client := NewHTTPClient(config.AssistantConfig{
		Endpoint:       server.URL,
		SystemPrompt:   "You are a helpful assistant.",
		TimeoutSeconds: 5,
	})

	reply, err := client.Reply(context.Background(), "ping")
	require.NoError(t, err)
	require.Equal(t, "echo: ping", reply)
}

func TestHTTPClientErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewHTTPClient(config.AssistantConfig{Endpoint: server.URL, TimeoutSeconds: 5})
		_, err := client.Reply(context.Background(), "ping")
		require.Error(t, err)
		require.True(t, strings.Contains(err.Error(), "502"))
	})

	t.Run("empty completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(completionResponse{})
		}))
		defer server.Close()

		client := NewHTTPClient(config.AssistantConfig{Endpoint: server.URL, TimeoutSeconds: 5})
		_, err := client.Reply(context.Background(), "ping")
		require.Error(t, err)
	})
}
