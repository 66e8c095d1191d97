package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/talenthq/talent-hub/internal/extraction"
	"github.com/talenthq/talent-hub/internal/jsonrepair"
	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/upload"
)

// fakeClient scripts the LLM response and counts calls.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (c *fakeClient) Complete(_ context.Context, system, user string) (string, error) {
	c.calls++
	if system == "" || user == "" {
		return "", errors.New("empty prompt")
	}
	return c.response, c.err
}

func (c *fakeClient) Close() error { return nil }

func textFile(content string) (upload.File, []byte) {
	data := []byte(content)
	return upload.File{Name: "resume.txt", ContentType: "text/plain", Size: int64(len(data))}, data
}

func TestParse_FullPipeline(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"name\": {\"first\": \"Ann\", \"last\": \"Chen\"}, \"skills\": [\"Go\"]}\n```"}
	s := NewService(extraction.New(extraction.Config{}), client)

	file, data := textFile("Ann Chen\nBackend Engineer")
	got, err := s.Parse(context.Background(), file, data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.FirstName != "Ann" || got.LastName != "Chen" {
		t.Errorf("Parse() = %+v", got)
	}
	if client.calls != 1 {
		t.Errorf("LLM calls = %d, want 1", client.calls)
	}
}

func TestParse_RejectsBeforeExtractionOrNetwork(t *testing.T) {
	client := &fakeClient{response: "{}"}
	s := NewService(extraction.New(extraction.Config{}), client)

	file := upload.File{Name: "resume.docx", ContentType: "application/msword", Size: 100}
	_, err := s.Parse(context.Background(), file, []byte("x"))
	var uErr *upload.Error
	if !errors.As(err, &uErr) {
		t.Fatalf("error = %v (%T), want *upload.Error", err, err)
	}
	if client.calls != 0 {
		t.Errorf("LLM called %d times for a rejected file", client.calls)
	}
}

func TestParse_NoAPIKey(t *testing.T) {
	s := NewService(extraction.New(extraction.Config{}), nil)

	file, data := textFile("some resume text")
	_, err := s.Parse(context.Background(), file, data)
	var nc *llm.NotConfiguredError
	if !errors.As(err, &nc) {
		t.Fatalf("error = %v (%T), want NotConfiguredError", err, err)
	}
}

func TestParse_RemoteFailureReturnsFallback(t *testing.T) {
	client := &fakeClient{err: errors.New("all models down")}
	s := NewService(extraction.New(extraction.Config{}), client)

	file, data := textFile("some resume text")
	got, err := s.Parse(context.Background(), file, data)
	var apiErr *APICallError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v (%T), want *APICallError", err, err)
	}
	if got.Skills == nil || len(got.Skills) != 0 {
		t.Errorf("fallback payload = %+v, want empty form data", got)
	}
}

func TestParse_UnrecoverableResponse(t *testing.T) {
	client := &fakeClient{response: "I'm sorry, I cannot parse that."}
	s := NewService(extraction.New(extraction.Config{}), client)

	file, data := textFile("some resume text")
	_, err := s.Parse(context.Background(), file, data)
	var pe *jsonrepair.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v (%T), want *jsonrepair.ParseError", err, err)
	}
}

func TestParse_ShapeRejected(t *testing.T) {
	client := &fakeClient{response: `{"skills": {"oops": true}}`}
	s := NewService(extraction.New(extraction.Config{}), client)

	file, data := textFile("some resume text")
	_, err := s.Parse(context.Background(), file, data)
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v (%T), want *ShapeError", err, err)
	}
}

func TestMockAndFallbackAreDistinguishable(t *testing.T) {
	mock := Mock(context.Background())
	fallback := Fallback()
	if mock.FirstName == "" || len(mock.Skills) == 0 {
		t.Error("mock payload should be a rich demo set")
	}
	if fallback.FirstName != "" || len(fallback.Skills) != 0 {
		t.Error("fallback payload should stay minimal")
	}
}
