package pagelens

import "context"

// Resource categories tracked by performance analysis.
const (
	ResourceScripts     = "scripts"
	ResourceStylesheets = "stylesheets"
	ResourceImages      = "images"
)

// ResourceCategories lists every tracked category. Count and size maps in
// PerformanceMetrics carry an entry for each, zero-valued when the page
// has no such resources.
var ResourceCategories = []string{ResourceScripts, ResourceStylesheets, ResourceImages}

// PerformanceMetrics holds timing, size, and resource-count metrics for a
// page. All size and time figures are rounded to two decimals.
type PerformanceMetrics struct {
	// ResponseTime is the end-to-end request duration in seconds.
	ResponseTime float64

	// PageSize is the body size in KB.
	PageSize float64

	StatusCode   int
	ContentType  string
	Encoding     string
	Compression  string
	CacheControl string
	Server       string

	// ResourceCounts maps each category to the number of such resources
	// referenced by the page.
	ResourceCounts map[string]int

	// ResourceSizes maps each category to the summed declared sizes in KB,
	// accumulated best-effort from HEAD probes. A failed probe contributes
	// zero.
	ResourceSizes map[string]float64

	// TotalResources is the sum of all category counts.
	TotalResources int

	// TotalPageWeight is PageSize plus the sum of all category sizes.
	TotalPageWeight float64

	// Headers is the raw response header mapping.
	Headers map[string]string
}

// PerformanceAnalyzer derives PerformanceMetrics for a URL. It performs
// its own fresh, timed fetch rather than reusing a parsed document, so
// the response time reflects an end-to-end request.
type PerformanceAnalyzer interface {
	AnalyzePerformance(ctx context.Context, url string) (*PerformanceMetrics, error)
}
