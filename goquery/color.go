package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Color literal patterns, applied in priority order: hex, then rgb, then
// rgba. The hex pattern prefers the 6-digit form over the 3-digit one.
var (
	hexRE  = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)
	rgbRE  = regexp.MustCompile(`rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)`)
	rgbaRE = regexp.MustCompile(`rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*(?:[01]?\.\d+|[01])\s*\)`)
)

// Ensure ColorExtractor implements pagelens.ColorExtractor at compile time.
var _ pagelens.ColorExtractor = (*ColorExtractor)(nil)

// ColorExtractor scans style-bearing text on a page for color literals.
// External stylesheets are fetched on demand through the injected Fetcher.
type ColorExtractor struct {
	fetcher pagelens.Fetcher
}

// NewColorExtractor creates a new ColorExtractor. The fetcher retrieves
// externally linked stylesheets; it is typically wired without the
// politeness delay of the primary page fetcher.
func NewColorExtractor(fetcher pagelens.Fetcher) *ColorExtractor {
	return &ColorExtractor{fetcher: fetcher}
}

// ExtractColors scans, in order: inline <style> blocks, style attributes,
// and the body of every externally linked stylesheet. A stylesheet that
// cannot be fetched contributes no colors. The result is deduplicated by
// (value, format) in first-seen order.
func (e *ColorExtractor) ExtractColors(ctx context.Context, html string, baseURL string) ([]pagelens.Color, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	var colors []pagelens.Color

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		colors = append(colors, scanColors(sel.Text(), pagelens.SourceStyleBlock)...)
	})

	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		colors = append(colors, scanColors(style, pagelens.SourceInline)...)
	})

	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		res, err := e.fetcher.Fetch(ctx, base.ResolveReference(ref).String())
		if err != nil {
			// Best-effort: a missing stylesheet contributes no colors.
			return
		}
		colors = append(colors, scanColors(res.Body, pagelens.SourceExternalCSS)...)
	})

	return dedupeColors(colors), nil
}

// scanColors applies the three patterns to one source text in priority
// order. Each non-overlapping match becomes one record carrying the exact
// matched substring.
func scanColors(text string, source pagelens.ColorSource) []pagelens.Color {
	var colors []pagelens.Color
	for _, p := range []struct {
		re     *regexp.Regexp
		format pagelens.ColorFormat
	}{
		{hexRE, pagelens.ColorHex},
		{rgbRE, pagelens.ColorRGB},
		{rgbaRE, pagelens.ColorRGBA},
	} {
		for _, match := range p.re.FindAllString(text, -1) {
			colors = append(colors, pagelens.Color{
				Value:  match,
				Format: p.format,
				Source: source,
			})
		}
	}
	return colors
}

// dedupeColors removes duplicate (value, format) pairs, preserving
// first-seen order.
func dedupeColors(colors []pagelens.Color) []pagelens.Color {
	type key struct {
		value  string
		format pagelens.ColorFormat
	}
	seen := make(map[key]struct{})
	var out []pagelens.Color
	for _, c := range colors {
		k := key{c.Value, c.Format}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
