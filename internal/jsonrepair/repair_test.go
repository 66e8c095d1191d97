package jsonrepair

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid minimal json unchanged",
			input: `{"firstName":"Ann"}`,
			want:  `{"firstName":"Ann"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"firstName\": \"Ann\"}\n```",
			want:  `{"firstName": "Ann"}`,
		},
		{
			name:  "generic fence",
			input: "```\n{\"email\": \"ann@example.com\"}\n```",
			want:  `{"email": "ann@example.com"}`,
		},
		{
			name:  "prose around object",
			input: "Here is the parsed resume:\n{\"firstName\": \"Ann\"}\nLet me know if you need more.",
			want:  `{"firstName": "Ann"}`,
		},
		{
			name:    "no json at all",
			input:   "I could not find a resume in the provided text.",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Object(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Object() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Object() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObject_IdempotenceIsFirstPass(t *testing.T) {
	// Already-valid JSON must be accepted by the fence-strip pass
	// without reaching the brace-window heuristic. A brace inside a
	// string value would confuse a substring pass but not a real parse.
	input := `{"bio":"Wrote {lots} of Go"}`
	got, err := Object(input)
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	if string(got) != input {
		t.Errorf("Object() = %q, want input unchanged", got)
	}
}

func TestArray(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantFirst string // value of "title" in the first element, if set
		wantErr   bool
	}{
		{
			name:    "valid array unchanged",
			input:   `[{"title": "Intro to Go"}]`,
			wantLen: 1, wantFirst: "Intro to Go",
		},
		{
			name:    "fenced array",
			input:   "```json\n[{\"title\": \"Intro to Go\"}]\n```",
			wantLen: 1, wantFirst: "Intro to Go",
		},
		{
			name:    "bracket window through prose",
			input:   "Recommended courses:\n[{\"title\": \"Intro to Go\"}, {\"title\": \"Advanced Go\"}]\nEnjoy!",
			wantLen: 2, wantFirst: "Intro to Go",
		},
		{
			name:    "json label prefix",
			input:   "Sure! json: [{\"title\": \"Intro to Go\"}]",
			wantLen: 1, wantFirst: "Intro to Go",
		},
		{
			name:    "fenced array after stray brackets",
			input:   "See [1] and [2] below.\n```\n[{\"title\": \"Intro to Go\"}]\n```",
			wantLen: 1, wantFirst: "Intro to Go",
		},
		{
			name:    "bracket span after invalid early span",
			input:   `See [note a] first. [{"title": "Intro to Go"}] done.`,
			wantLen: 1, wantFirst: "Intro to Go",
		},
		{
			name:    "stitched object fragments",
			input:   "First: {\"title\": \"Intro to Go\", \"url\": \"https://a.dev/go\"}\nSecond: {\"title\": \"Advanced Go\", \"url\": \"https://a.dev/go2\"}",
			wantLen: 2, wantFirst: "Intro to Go",
		},
		{
			name:    "regex repair of unquoted keys and trailing comma",
			input:   `[{id: 1, title: Intro to Go, provider: Coursera,}]`,
			wantLen: 1, wantFirst: "Intro to Go",
		},
		{
			name:    "empty array rejected",
			input:   `[]`,
			wantErr: true,
		},
		{
			name:    "prose only",
			input:   "No recommendations available right now.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Array(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Array() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			var arr []map[string]any
			if err := json.Unmarshal(got, &arr); err != nil {
				t.Fatalf("Array() output does not parse: %v\n%s", err, got)
			}
			if len(arr) != tt.wantLen {
				t.Fatalf("Array() len = %d, want %d (%s)", len(arr), tt.wantLen, got)
			}
			if tt.wantFirst != "" {
				if title, _ := arr[0]["title"].(string); title != tt.wantFirst {
					t.Errorf("Array()[0].title = %q, want %q", title, tt.wantFirst)
				}
			}
		})
	}
}

// The fragment stitcher accepts any object carrying a marker key, so
// an unrelated fragment can end up in the synthetic array. Accepted
// risk: downstream falls back to defaults when entries are unusable.
func TestArray_StitchingAcceptsUnrelatedFragments(t *testing.T) {
	input := "Course: {\"title\": \"Intro to Go\"}\nDebug info: {\"id\": \"req-123\"}"
	got, err := Array(input)
	if err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	var arr []map[string]any
	if err := json.Unmarshal(got, &arr); err != nil {
		t.Fatalf("Array() output does not parse: %v", err)
	}
	if len(arr) != 2 {
		t.Errorf("Array() len = %d, want 2 (unrelated fragment included)", len(arr))
	}
}

func TestParseErrorDiagnostics(t *testing.T) {
	_, err := Array("the model said { but never finished")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if !pe.HasBrace || pe.HasBracket || pe.ContentLength == 0 {
		t.Errorf("diagnostics = %+v", *pe)
	}
}
