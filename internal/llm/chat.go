package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request/response structs for OpenAI-compatible /chat/completions
// endpoints. OpenRouter speaks the same dialect.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ChatClient calls an OpenAI-compatible chat-completion endpoint,
// falling back across the configured candidate models in order.
type ChatClient struct {
	cfg    *Config
	apiKey string
	http   *http.Client
}

// NewChatClient creates a client for the configured endpoint.
func NewChatClient(cfg *Config, apiKey string) *ChatClient {
	return &ChatClient{
		cfg:    cfg,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete tries each candidate model in order with one POST per model
// and returns the first successful response's content. The fallback is
// a plain sequential loop; the last failure decides the terminal error
// classification.
func (c *ChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	var (
		attempts   int
		lastStatus int
		lastBody   string
	)

	for _, model := range c.cfg.Models {
		attempts++
		content, status, err := c.call(ctx, model, system, user)
		if err == nil {
			return content, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastStatus = status
		lastBody = err.Error()
	}

	return "", classifyFailure(attempts, lastStatus, lastBody)
}

// call makes a single attempt against one model. A non-2xx status is
// returned as an error carrying the response body.
func (c *ChatClient) call(ctx context.Context, model, system, user string) (string, int, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return "", 0, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("call %s: %w", model, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", resp.StatusCode, fmt.Errorf("%s: HTTP %d: %s", model, resp.StatusCode, bytes.TrimSpace(respBody))
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", resp.StatusCode, fmt.Errorf("decode %s response: %w", model, err)
	}
	if len(cr.Choices) == 0 {
		return "", resp.StatusCode, fmt.Errorf("%s: no choices in response", model)
	}
	return cr.Choices[0].Message.Content, resp.StatusCode, nil
}

// Close implements Client; the HTTP client holds no resources.
func (c *ChatClient) Close() error { return nil }
