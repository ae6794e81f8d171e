package pagelens

// LinkType classifies a hyperlink found on a page.
type LinkType string

// Link classifications.
const (
	LinkInternal LinkType = "internal"
	LinkExternal LinkType = "external"
	LinkAnchor   LinkType = "anchor"
	LinkEmail    LinkType = "email"
	LinkPhone    LinkType = "phone"
)

// NoLinkText is the placeholder used when an anchor has no visible text.
const NoLinkText = "No text"

// Link is a hyperlink extracted from a page.
type Link struct {
	// URL is the href fully resolved against the page's base URL.
	URL string

	// Text is the anchor's trimmed visible text, or NoLinkText when empty.
	Text string

	// Type is the link classification.
	Type LinkType
}

// LinkExtractor finds every anchor with an href attribute, resolves it
// against the base URL and classifies it. The returned collection is
// deduplicated by resolved URL, first occurrence wins.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) ([]Link, error)
}
