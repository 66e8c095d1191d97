package llm

import (
	"context"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// Complete sends a system+user message pair and returns the first
	// choice's message content.
	Complete(ctx context.Context, system, user string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the given API key. The provider is
// chosen from the key shape. An empty key yields a NotConfiguredError
// before any network work; callers then run on mock payloads.
func NewClient(ctx context.Context, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, &NotConfiguredError{}
	}

	cfg := ConfigForKey(apiKey)
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, apiKey)
	default:
		return NewChatClient(cfg, apiKey), nil
	}
}
