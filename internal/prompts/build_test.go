package prompts

import (
	"strings"
	"testing"
)

func TestResumePrompt(t *testing.T) {
	system, user := ResumePrompt("Ann Chen\nBackend Engineer")
	if system == "" {
		t.Error("system prompt is empty")
	}
	if !strings.Contains(user, "Ann Chen") {
		t.Error("user prompt missing resume text")
	}
	if strings.Contains(user, "{{.ResumeText}}") {
		t.Error("placeholder not substituted")
	}
	if !strings.Contains(user, "experience_years") {
		t.Error("user prompt missing requested shape")
	}
}

func TestResumePrompt_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", MaxResumeChars+500)
	_, user := ResumePrompt(long)
	if !strings.Contains(user, strings.Repeat("x", MaxResumeChars)+"...") {
		t.Error("long resume text not truncated with marker")
	}
	if strings.Contains(user, strings.Repeat("x", MaxResumeChars+1)) {
		t.Error("truncation did not cut at the limit")
	}
}

func TestTipsPrompt(t *testing.T) {
	_, user := TipsPrompt("Backend Engineer", []string{"Go", "Kubernetes"})
	for _, want := range []string{"Backend Engineer", "Go, Kubernetes", "provider"} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}

	_, user = TipsPrompt("Designer", nil)
	if !strings.Contains(user, "general professional growth") {
		t.Error("empty skill list not defaulted")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "under limit", in: "short", max: 10, want: "short"},
		{name: "at limit", in: "exact", max: 5, want: "exact"},
		{name: "over limit", in: "toolong", max: 4, want: "tool..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet_Errors(t *testing.T) {
	if _, err := Get("missing.json", "system"); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := Get("resume.json", "nope"); err == nil {
		t.Error("missing key accepted")
	}
}
