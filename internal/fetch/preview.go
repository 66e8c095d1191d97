package fetch

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LinkPreview is the small card shown next to a candidate's portfolio
// link: page title, description, and a short text snippet.
type LinkPreview struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SiteName    string `json:"site_name,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
}

// snippetLength bounds the free-text excerpt in a preview.
const snippetLength = 280

// Previewer builds link previews. UseBrowser enables the headless
// fallback for pages whose plain HTML carries almost no text.
type Previewer struct {
	Options    *Options
	UseBrowser bool
}

// Preview fetches a portfolio link and extracts its preview card.
func (p *Previewer) Preview(ctx context.Context, urlStr string) (*LinkPreview, error) {
	opts := p.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	page, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	preview, text := buildPreview(urlStr, page.HTML)
	if p.UseBrowser && ShouldUseBrowser(text) {
		if html, berr := WithBrowser(ctx, urlStr, opts.Timeout); berr == nil {
			preview, _ = buildPreview(urlStr, html)
		}
	}
	return preview, nil
}

// buildPreview extracts title/meta fields and a text snippet from HTML.
// It also returns the full extracted text so callers can judge whether
// the page needs browser rendering.
func buildPreview(urlStr, html string) (*LinkPreview, string) {
	preview := &LinkPreview{URL: urlStr}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return preview, ""
	}

	preview.Title = firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		strings.TrimSpace(doc.Find("title").First().Text()),
	)
	preview.Description = firstNonEmpty(
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	)
	preview.SiteName = metaContent(doc, `meta[property="og:site_name"]`)

	text, _ := ExtractMainText(html)
	preview.Snippet = snippet(text)
	return preview, text
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= snippetLength {
		return text
	}
	return text[:snippetLength] + "..."
}
