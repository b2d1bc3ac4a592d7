package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spec-kit/landlordly/internal/config"
)

// Client produces assistant replies for the chat thread.
type Client interface {
	Reply(ctx context.Context, userMessage string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Completion string `json:"completion"`
}

type httpClient struct {
	endpoint     string
	systemPrompt string
	client       *http.Client
}

// NewHTTPClient talks to an LLM completion endpoint. The request and response
// shapes follow the completion API the mobile client used.
func NewHTTPClient(cfg config.AssistantConfig) Client {
	return &httpClient{
		endpoint:     cfg.Endpoint,
		systemPrompt: cfg.SystemPrompt,
		client:       &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *httpClient) Reply(ctx context.Context, userMessage string) (string, error) {
	payload := completionRequest{
		Messages: []chatMessage{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant endpoint returned %d", resp.StatusCode)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Completion == "" {
		return "", fmt.Errorf("assistant endpoint returned empty completion")
	}
	return result.Completion, nil
}

type scriptedClient struct{}

// NewScriptedClient answers with canned keyword-matched responses. Used when
// no LLM endpoint is configured.
func NewScriptedClient() Client {
	return scriptedClient{}
}

func (scriptedClient) Reply(_ context.Context, userMessage string) (string, error) {
	msg := strings.ToLower(userMessage)
	switch {
	case strings.Contains(msg, "rent") || strings.Contains(msg, "payment") || strings.Contains(msg, "pay"):
		return "You can view upcoming rent and payment history under Payments. Rent is due on the first of each month unless your lease says otherwise.", nil
	case strings.Contains(msg, "maintenance") || strings.Contains(msg, "repair") || strings.Contains(msg, "broken") || strings.Contains(msg, "leak"):
		return "Sorry to hear that. You can file a maintenance request with a title, description and priority, and your landlord will be notified right away.", nil
	case strings.Contains(msg, "lease"):
		return "Your lease dates are shown on your unit details. Reach out to your landlord for renewals or changes.", nil
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi"):
		return "Hi! I can help with questions about rent, maintenance and property management. What do you need?", nil
	default:
		return "I can help with rent, payments, maintenance requests and general property questions. Could you tell me a bit more?", nil
	}
}
