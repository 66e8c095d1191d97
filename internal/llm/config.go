// Package llm provides the resilient chat-completion client used by
// the resume and tips pipelines. The provider and candidate model list
// are chosen from the shape of the configured API key; calls fall back
// across the candidate list sequentially until one succeeds.
package llm

import "strings"

// Provider represents an LLM provider
type Provider string

const (
	// ProviderOpenRouter is the OpenRouter aggregator (sk-or-... keys)
	ProviderOpenRouter Provider = "openrouter"
	// ProviderGemini is the Google Gemini direct provider (AIza... keys)
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI-compatible direct provider (any other key)
	ProviderOpenAI Provider = "openai"
)

// Chat-completion endpoints per provider.
const (
	OpenRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	OpenAIEndpoint     = "https://api.openai.com/v1/chat/completions"
)

// OpenRouterModels is the ordered free-tier fallback list tried against
// the aggregator. Order matters: earlier entries are preferred.
var OpenRouterModels = []string{
	"meta-llama/llama-3.3-70b-instruct:free",
	"google/gemma-3-27b-it:free",
	"qwen/qwen-2.5-72b-instruct:free",
	"mistralai/mistral-7b-instruct:free",
}

// Default single models for the direct providers.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config holds the provider, endpoint, and candidate models for a key.
type Config struct {
	Provider    Provider
	Endpoint    string
	Models      []string
	Temperature float32
	MaxTokens   int
}

// DetectProvider picks the provider from the API key shape.
func DetectProvider(apiKey string) Provider {
	switch {
	case strings.HasPrefix(apiKey, "sk-or-"):
		return ProviderOpenRouter
	case strings.HasPrefix(apiKey, "AIza"):
		return ProviderGemini
	default:
		return ProviderOpenAI
	}
}

// ConfigForKey returns the full call configuration for an API key.
func ConfigForKey(apiKey string) *Config {
	cfg := &Config{
		Temperature: 0.1,
		MaxTokens:   2048,
	}
	switch DetectProvider(apiKey) {
	case ProviderOpenRouter:
		cfg.Provider = ProviderOpenRouter
		cfg.Endpoint = OpenRouterEndpoint
		cfg.Models = append([]string(nil), OpenRouterModels...)
	case ProviderGemini:
		cfg.Provider = ProviderGemini
		cfg.Models = []string{DefaultGeminiModel}
	default:
		cfg.Provider = ProviderOpenAI
		cfg.Endpoint = OpenAIEndpoint
		cfg.Models = []string{DefaultOpenAIModel}
	}
	return cfg
}
