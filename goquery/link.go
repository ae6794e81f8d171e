package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Ensure LinkExtractor implements pagelens.LinkExtractor at compile time.
var _ pagelens.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor finds and classifies hyperlinks on a page.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks resolves every anchor's href against the base URL and
// classifies it. Links are deduplicated by resolved URL, keeping the
// first occurrence.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]pagelens.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []pagelens.Link

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			text = pagelens.NoLinkText
		}

		links = append(links, pagelens.Link{
			URL:  resolved,
			Text: text,
			Type: classify(href, resolved, baseURL),
		})
	})

	return links, nil
}

// classify determines the link type from the raw href and the resolved
// URL. The raw href decides anchors, emails, and phone links; everything
// else is internal when the resolved URL contains the base URL, external
// otherwise.
func classify(href, resolved, baseURL string) pagelens.LinkType {
	switch {
	case strings.HasPrefix(href, "#"):
		return pagelens.LinkAnchor
	case strings.HasPrefix(href, "mailto:"):
		return pagelens.LinkEmail
	case strings.HasPrefix(href, "tel:"):
		return pagelens.LinkPhone
	case strings.Contains(resolved, baseURL):
		return pagelens.LinkInternal
	default:
		return pagelens.LinkExternal
	}
}
