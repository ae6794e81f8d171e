package pagelens

import (
	"fmt"
	"net/url"
	"regexp"
)

var nonWordRE = regexp.MustCompile(`[^\w\s-]`)

// ValidateURL reports whether raw is an absolute URL with both a scheme
// and a host.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ExportName derives a filename stem for exporting the table at the given
// zero-based index, from the source URL's host with non-alphanumeric
// characters stripped. Example: "https://en.wikipedia.org/x" and index 0
// yield "enwikipediaorg_table_1".
func ExportName(rawURL string, index int) string {
	return fmt.Sprintf("%s_table_%d", hostSlug(rawURL), index+1)
}

// PageName derives a filename stem for exporting the page itself, using
// the same host-based slug as ExportName.
func PageName(rawURL string) string {
	return hostSlug(rawURL)
}

func hostSlug(rawURL string) string {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	return nonWordRE.ReplaceAllString(host, "")
}
