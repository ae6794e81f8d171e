package goquery

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Ensure SEOAnalyzer implements pagelens.SEOAnalyzer at compile time.
var _ pagelens.SEOAnalyzer = (*SEOAnalyzer)(nil)

// SEOAnalyzer derives meta, heading, link, structured-data, and
// text-ratio metrics from a page.
type SEOAnalyzer struct {
	fetcher pagelens.Fetcher
}

// NewSEOAnalyzer creates a new SEOAnalyzer using the given fetcher for
// its fresh page fetch.
func NewSEOAnalyzer(fetcher pagelens.Fetcher) *SEOAnalyzer {
	return &SEOAnalyzer{fetcher: fetcher}
}

// AnalyzeSEO fetches and parses the page and derives SEOMetrics from it.
func (a *SEOAnalyzer) AnalyzeSEO(ctx context.Context, pageURL string) (*pagelens.SEOMetrics, error) {
	res, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	m := &pagelens.SEOMetrics{
		MetaTags: make(map[string]string),
		Headings: make(map[string][]string),
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || name == "" {
			name, _ = sel.Attr("property")
		}
		if name == "" {
			return
		}
		m.MetaTags[name] = sel.AttrOr("content", "")
	})
	m.Robots = m.MetaTags["robots"]
	m.Viewport = m.MetaTags["viewport"]

	m.Canonical, _ = doc.Find(`link[rel="canonical"]`).First().Attr("href")
	m.Language = doc.Find("html").AttrOr("lang", "")

	for level := 1; level <= 6; level++ {
		key := fmt.Sprintf("h%d", level)
		doc.Find(key).Each(func(_ int, sel *goquery.Selection) {
			m.Headings[key] = append(m.Headings[key], strings.TrimSpace(sel.Text()))
		})
	}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if alt, ok := sel.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			m.ImagesWithAlt++
		} else {
			m.ImagesWithoutAlt++
		}
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if strings.HasPrefix(href, "http") && !strings.Contains(href, pageURL) {
			m.ExternalLinks++
		} else {
			// Relative hrefs and absolute URLs pointing back into the page
			// count as internal.
			m.InternalLinks++
		}
		if rel, ok := sel.Attr("rel"); ok && strings.Contains(strings.ToLower(rel), "nofollow") {
			m.NofollowLinks++
		}
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var v any
		if err := json.Unmarshal([]byte(sel.Text()), &v); err != nil {
			// Malformed blocks are skipped silently.
			return
		}
		m.StructuredData = append(m.StructuredData, v)
	})

	visible := VisibleText(res.Body)
	if htmlLen := utf8.RuneCountInString(res.Body); htmlLen > 0 {
		ratio := float64(utf8.RuneCountInString(visible)) / float64(htmlLen) * 100
		m.TextHTMLRatio = round2(ratio)
	}
	m.WordCount = len(strings.Fields(visible))

	return m, nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
