package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.PerformanceAnalyzer = (*PerformanceAnalyzer)(nil)

// PerformanceAnalyzer is a mock implementation of
// pagelens.PerformanceAnalyzer.
type PerformanceAnalyzer struct {
	AnalyzePerformanceFn func(ctx context.Context, url string) (*pagelens.PerformanceMetrics, error)
}

func (a *PerformanceAnalyzer) AnalyzePerformance(ctx context.Context, url string) (*pagelens.PerformanceMetrics, error) {
	return a.AnalyzePerformanceFn(ctx, url)
}

var _ pagelens.SEOAnalyzer = (*SEOAnalyzer)(nil)

// SEOAnalyzer is a mock implementation of pagelens.SEOAnalyzer.
type SEOAnalyzer struct {
	AnalyzeSEOFn func(ctx context.Context, url string) (*pagelens.SEOMetrics, error)
}

func (a *SEOAnalyzer) AnalyzeSEO(ctx context.Context, url string) (*pagelens.SEOMetrics, error) {
	return a.AnalyzeSEOFn(ctx, url)
}
