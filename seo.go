package pagelens

import "context"

// SEOMetrics holds meta, heading, link, structured-data, and text-ratio
// metrics for a page.
type SEOMetrics struct {
	// MetaTags maps each meta tag's name or property attribute to its
	// content.
	MetaTags map[string]string

	// Headings maps "h1".."h6" to heading texts in document order.
	Headings map[string][]string

	// Image alt-attribute counts.
	ImagesWithAlt    int
	ImagesWithoutAlt int

	// Link counts. Internal covers relative hrefs and absolute URLs
	// containing the page's own URL; Nofollow counts links whose rel
	// attribute includes "nofollow" regardless of classification.
	InternalLinks int
	ExternalLinks int
	NofollowLinks int

	// StructuredData holds every application/ld+json block that decoded
	// as JSON. Blocks may be objects or arrays; failures are skipped.
	StructuredData []any

	// Canonical is the canonical link href, empty when absent.
	Canonical string

	Robots   string
	Viewport string

	// Language is the html element's lang attribute.
	Language string

	// TextHTMLRatio is visible-text characters over serialized-HTML
	// characters, as a percentage rounded to two decimals.
	TextHTMLRatio float64

	// WordCount is the number of whitespace-delimited tokens in the
	// visible text.
	WordCount int
}

// SEOAnalyzer derives SEOMetrics for a URL, performing its own fresh
// fetch and parse.
type SEOAnalyzer interface {
	AnalyzeSEO(ctx context.Context, url string) (*SEOMetrics, error)
}
