package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const portfolioHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Ann Chen - Portfolio</title>
  <meta property="og:title" content="Ann Chen">
  <meta property="og:description" content="Backend engineer portfolio.">
  <meta property="og:site_name" content="annchen.dev">
</head>
<body>
  <nav>Home About</nav>
  <main>
    <h1>Projects</h1>
    <p>A distributed task queue written in Go.</p>
  </main>
  <footer>copyright</footer>
</body>
</html>`

func TestBuildPreview(t *testing.T) {
	preview, text := buildPreview("https://annchen.dev", portfolioHTML)

	if preview.Title != "Ann Chen" {
		t.Errorf("Title = %q, og:title must win", preview.Title)
	}
	if preview.Description != "Backend engineer portfolio." {
		t.Errorf("Description = %q", preview.Description)
	}
	if preview.SiteName != "annchen.dev" {
		t.Errorf("SiteName = %q", preview.SiteName)
	}
	if !strings.Contains(preview.Snippet, "distributed task queue") {
		t.Errorf("Snippet = %q", preview.Snippet)
	}
	if strings.Contains(text, "copyright") {
		t.Errorf("extracted text kept footer noise: %q", text)
	}
}

func TestBuildPreview_TitleFallback(t *testing.T) {
	preview, _ := buildPreview("https://x.dev", "<html><head><title>Plain Title</title></head><body>hi</body></html>")
	if preview.Title != "Plain Title" {
		t.Errorf("Title = %q", preview.Title)
	}
}

func TestPreview_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, portfolioHTML)
	}))
	defer srv.Close()

	p := &Previewer{}
	preview, err := p.Preview(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if preview.Title != "Ann Chen" || preview.URL != srv.URL {
		t.Errorf("Preview() = %+v", preview)
	}
}

func TestURL_Errors(t *testing.T) {
	if _, err := URL(context.Background(), "not-a-url", nil); err == nil {
		t.Error("invalid URL accepted")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	page, err := URL(context.Background(), srv.URL, nil)
	if err == nil {
		t.Fatal("non-200 accepted")
	}
	if page == nil || page.StatusCode != http.StatusNotFound {
		t.Errorf("page = %+v", page)
	}
}

func TestShouldUseBrowser(t *testing.T) {
	if !ShouldUseBrowser("tiny") {
		t.Error("short content should trigger browser fallback")
	}
	if ShouldUseBrowser(strings.Repeat("content ", 100)) {
		t.Error("long content should not trigger browser fallback")
	}
}
