// Package extraction turns uploaded resume files into plain text.
//
// Plain-text files pass through unchanged. PDFs go through the poppler
// text layer first; image-only PDFs fall back to a per-page OCR pass.
// All external tools run through the Runner interface so tests can stub
// them out.
package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/talenthq/talent-hub/internal/upload"
)

// Config holds tool paths and rendering options for PDF extraction.
type Config struct {
	Pdftotext string
	Pdftoppm  string
	Tesseract string
	DPI       int // OCR render resolution; 144 is 2x the 72dpi PDF base
	MaxPages  int // 0 means no cap
}

// Extractor extracts text from uploaded resume files.
type Extractor struct {
	cfg    Config
	runner Runner
}

// New creates an Extractor that shells out to the configured tools.
func New(cfg Config) *Extractor {
	return NewWithRunner(cfg, execRunner{})
}

// NewWithRunner creates an Extractor with a custom command runner.
func NewWithRunner(cfg Config, r Runner) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.DPI == 0 {
		cfg.DPI = 144
	}
	return &Extractor{cfg: cfg, runner: r}
}

// Extract returns the text content of an uploaded file.
// For plain text the result is the decoded content, unchanged.
func (e *Extractor) Extract(ctx context.Context, data []byte, kind upload.Kind) (string, error) {
	switch kind {
	case upload.KindText:
		return string(data), nil
	case upload.KindPDF:
		return e.extractPDF(ctx, data)
	default:
		return "", &ExtractionError{Stage: "input", Cause: fmt.Errorf("unsupported kind %q", kind)}
	}
}

// extractPDF tries the text layer first, then OCR. A failed text-layer
// pass (open/parse error) still gets one top-level OCR attempt before
// the error is classified and surfaced.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	path, cleanup, err := writeTemp(data)
	if err != nil {
		return "", &ExtractionError{Stage: "temp file", Cause: err}
	}
	defer cleanup()

	text, layerErr := e.textLayer(ctx, path)
	if layerErr == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	// Empty or failed text layer: image-only or damaged PDF. OCR each page.
	ocrText, ocrErr := e.ocr(ctx, path)
	if ocrErr == nil && strings.TrimSpace(ocrText) != "" {
		return ocrText, nil
	}

	if layerErr != nil {
		return "", classifyOpenError(layerErr)
	}
	if ocrErr != nil {
		return "", classifyOpenError(ocrErr)
	}
	return "", &NoTextError{}
}

// textLayer extracts the selectable text layer, page by page. Per-page
// runs are trimmed and space-joined; pages are joined with a newline.
func (e *Extractor) textLayer(ctx context.Context, path string) (string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(string(errb)), err)
	}

	// pdftotext separates pages with a form feed.
	rawPages := strings.Split(string(out), "\f")
	pages := make([]string, 0, len(rawPages))
	for _, page := range rawPages {
		joined := joinRuns(page)
		if joined != "" {
			pages = append(pages, joined)
		}
	}
	return strings.Join(pages, "\n"), nil
}

// joinRuns collapses a page's text runs: each non-empty trimmed line
// contributes once, space-joined into a single page string.
func joinRuns(page string) string {
	var runs []string
	for _, line := range strings.Split(page, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			runs = append(runs, line)
		}
	}
	return strings.Join(runs, " ")
}

// ocr renders each page to a PNG and runs English OCR on it, strictly
// sequentially so only one rendered page is held at a time.
func (e *Extractor) ocr(ctx context.Context, path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "th-ocr-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			slog.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(string(errb)), err)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	for _, img := range matches {
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", "eng")
		if err != nil {
			return "", fmt.Errorf("ocr page %s: %s: %w", filepath.Base(img), strings.TrimSpace(string(errb)), err)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(string(out)))
	}
	return b.String(), nil
}

// classifyOpenError maps a tool failure to the user-facing taxonomy.
func classifyOpenError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "incorrect password") || strings.Contains(msg, "encrypted") || strings.Contains(msg, "password") {
		return &EncryptedPDFError{Cause: err}
	}
	if strings.Contains(msg, "damaged") || strings.Contains(msg, "couldn't read xref") || strings.Contains(msg, "not a pdf") || strings.Contains(msg, "may not be a pdf") {
		return &CorruptPDFError{Cause: err}
	}
	return &ExtractionError{Stage: "pdf", Cause: err}
}

func writeTemp(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "th-upload-*.pdf")
	if err != nil {
		return "", nil, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
