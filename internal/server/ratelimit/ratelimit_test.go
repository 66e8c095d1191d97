package ratelimit

import (
	"testing"
	"time"
)

func strictConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no background cleanup in tests
		Whitelist:       map[string]bool{"10.0.0.1": true},
		Blacklist:       map[string]bool{"10.0.0.2": true},
		EndpointConfigs: []EndpointConfig{
			{Path: "/resume/parse", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
			{Path: "/profiles/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		},
	}
}

func TestAllow_BurstThenDeny(t *testing.T) {
	l := NewLimiter(strictConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/resume/parse", "POST")
		if !allowed {
			t.Fatalf("request %d within burst was denied", i+1)
		}
	}

	allowed, info := l.Allow("1.2.3.4", "/resume/parse", "POST")
	if allowed {
		t.Fatal("request beyond burst was allowed")
	}
	if info.Limit != 10 {
		t.Errorf("Limit = %d, want 10", info.Limit)
	}
	if info.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %v, want > 0", info.RetryAfter)
	}
}

func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(strictConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/resume/parse", "POST")
	l.Allow("1.2.3.4", "/resume/parse", "POST")
	if allowed, _ := l.Allow("1.2.3.4", "/resume/parse", "POST"); allowed {
		t.Fatal("first client should be exhausted")
	}
	if allowed, _ := l.Allow("5.6.7.8", "/resume/parse", "POST"); !allowed {
		t.Fatal("second client should have its own bucket")
	}
}

func TestAllow_WhitelistAndBlacklist(t *testing.T) {
	l := NewLimiter(strictConfig())
	defer l.Stop()

	for i := 0; i < 20; i++ {
		if allowed, _ := l.Allow("10.0.0.1", "/resume/parse", "POST"); !allowed {
			t.Fatal("whitelisted client was limited")
		}
	}
	if allowed, _ := l.Allow("10.0.0.2", "/health", "GET"); allowed {
		t.Fatal("blacklisted client was allowed")
	}
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/resume/parse", "POST"); !allowed {
			t.Fatal("disabled limiter denied a request")
		}
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name      string
		path      string
		method    string
		wantPath  string
		wantNil   bool
		unlimited bool
	}{
		{name: "parse exact", path: "/resume/parse", method: "POST", wantPath: "/resume/parse"},
		{name: "tips exact", path: "/tips", method: "GET", wantPath: "/tips"},
		{name: "profile update prefix", path: "/profiles/123", method: "PUT", wantPath: "/profiles/"},
		{name: "match feedback prefix", path: "/matches/123/feedback", method: "POST", wantPath: "/matches/"},
		{name: "read falls through", path: "/profiles", method: "GET", wantNil: true},
		{name: "health unlimited", path: "/health", method: "GET", unlimited: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("MatchEndpoint() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("MatchEndpoint() = nil")
			}
			if tt.unlimited {
				if got.Limit > 0 {
					t.Errorf("Limit = %d, want unlimited", got.Limit)
				}
				return
			}
			if got.Path != tt.wantPath {
				t.Errorf("matched %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	if cfg.Enabled {
		t.Fatal("Enabled = true, want false")
	}
}

func TestLoadConfig_Lists(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")
	cfg := LoadConfig()
	if !cfg.Whitelist["1.1.1.1"] || !cfg.Whitelist["2.2.2.2"] {
		t.Errorf("Whitelist = %v", cfg.Whitelist)
	}
}
