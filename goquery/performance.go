package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Ensure PerformanceAnalyzer implements pagelens.PerformanceAnalyzer at
// compile time.
var _ pagelens.PerformanceAnalyzer = (*PerformanceAnalyzer)(nil)

// PerformanceAnalyzer derives timing, size, and resource metrics for a
// page. Resource sizes are accumulated best-effort from HEAD probes; a
// failed probe contributes zero to its category.
type PerformanceAnalyzer struct {
	fetcher pagelens.Fetcher
	prober  pagelens.Prober
}

// NewPerformanceAnalyzer creates a new PerformanceAnalyzer.
func NewPerformanceAnalyzer(fetcher pagelens.Fetcher, prober pagelens.Prober) *PerformanceAnalyzer {
	return &PerformanceAnalyzer{fetcher: fetcher, prober: prober}
}

// AnalyzePerformance performs a fresh, timed fetch of the URL so the
// response time reflects an end-to-end request, then counts and probes
// the page's scripts, stylesheets, and images.
func (a *PerformanceAnalyzer) AnalyzePerformance(ctx context.Context, pageURL string) (*pagelens.PerformanceMetrics, error) {
	res, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "invalid URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	counts := make(map[string]int, len(pagelens.ResourceCategories))
	sizes := make(map[string]float64, len(pagelens.ResourceCategories))
	for _, category := range pagelens.ResourceCategories {
		counts[category] = 0
		sizes[category] = 0
	}

	probe := func(category, ref string) {
		u, err := url.Parse(ref)
		if err != nil {
			return
		}
		n, err := a.prober.Head(ctx, base.ResolveReference(u).String())
		if err != nil {
			// Best-effort: a failed probe contributes zero.
			return
		}
		sizes[category] += float64(n) / 1024
	}

	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		counts[pagelens.ResourceScripts]++
		probe(pagelens.ResourceScripts, sel.AttrOr("src", ""))
	})
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		counts[pagelens.ResourceStylesheets]++
		probe(pagelens.ResourceStylesheets, href)
	})
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		counts[pagelens.ResourceImages]++
		src := sel.AttrOr("src", "")
		if strings.HasPrefix(src, "data:") {
			// Inline images are already part of the page body.
			return
		}
		probe(pagelens.ResourceImages, src)
	})

	pageSize := round2(float64(res.Size) / 1024)
	total := 0
	weight := pageSize
	for _, category := range pagelens.ResourceCategories {
		sizes[category] = round2(sizes[category])
		total += counts[category]
		weight += sizes[category]
	}

	headers := make(map[string]string, len(res.Header))
	for k := range res.Header {
		headers[k] = res.Header.Get(k)
	}

	return &pagelens.PerformanceMetrics{
		ResponseTime:    round2(res.Elapsed.Seconds()),
		PageSize:        pageSize,
		StatusCode:      res.StatusCode,
		ContentType:     res.Header.Get("Content-Type"),
		Encoding:        res.Encoding,
		Compression:     res.Header.Get("Content-Encoding"),
		CacheControl:    res.Header.Get("Cache-Control"),
		Server:          res.Header.Get("Server"),
		ResourceCounts:  counts,
		ResourceSizes:   sizes,
		TotalResources:  total,
		TotalPageWeight: round2(weight),
		Headers:         headers,
	}, nil
}
