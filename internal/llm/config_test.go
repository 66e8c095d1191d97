package llm

import "testing"

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   Provider
	}{
		{name: "openrouter key", apiKey: "sk-or-v1-abc123", want: ProviderOpenRouter},
		{name: "gemini key", apiKey: "AIzaSyD-abc123", want: ProviderGemini},
		{name: "openai key", apiKey: "sk-proj-abc123", want: ProviderOpenAI},
		{name: "unknown key", apiKey: "whatever", want: ProviderOpenAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectProvider(tt.apiKey); got != tt.want {
				t.Errorf("DetectProvider(%q) = %q, want %q", tt.apiKey, got, tt.want)
			}
		})
	}
}

func TestConfigForKey(t *testing.T) {
	or := ConfigForKey("sk-or-v1-abc")
	if or.Endpoint != OpenRouterEndpoint {
		t.Errorf("openrouter endpoint = %q", or.Endpoint)
	}
	if len(or.Models) < 2 {
		t.Errorf("openrouter candidate list too short: %v", or.Models)
	}
	if or.Models[0] != OpenRouterModels[0] {
		t.Errorf("candidate order changed: %v", or.Models)
	}

	oa := ConfigForKey("sk-proj-abc")
	if oa.Endpoint != OpenAIEndpoint || len(oa.Models) != 1 {
		t.Errorf("openai config = %+v", oa)
	}

	gm := ConfigForKey("AIzaSyD-abc")
	if gm.Provider != ProviderGemini || len(gm.Models) != 1 {
		t.Errorf("gemini config = %+v", gm)
	}

	if or.Temperature != 0.1 {
		t.Errorf("temperature = %v, want 0.1", or.Temperature)
	}
}
