package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the perf command.
func (c *PerfCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	m, err := deps.Perf.AnalyzePerformance(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Response time:   %.2f s\n", m.ResponseTime)
	fmt.Fprintf(deps.Stdout, "Status code:     %d\n", m.StatusCode)
	fmt.Fprintf(deps.Stdout, "Page size:       %.2f KB\n", m.PageSize)
	fmt.Fprintf(deps.Stdout, "Content type:    %s\n", m.ContentType)
	fmt.Fprintf(deps.Stdout, "Encoding:        %s\n", m.Encoding)
	fmt.Fprintf(deps.Stdout, "Compression:     %s\n", m.Compression)
	fmt.Fprintf(deps.Stdout, "Cache control:   %s\n", m.CacheControl)
	fmt.Fprintf(deps.Stdout, "Server:          %s\n", m.Server)
	for _, category := range pagelens.ResourceCategories {
		fmt.Fprintf(deps.Stdout, "%-12s     %d (%.2f KB)\n", category+":", m.ResourceCounts[category], m.ResourceSizes[category])
	}
	fmt.Fprintf(deps.Stdout, "Total resources: %d\n", m.TotalResources)
	fmt.Fprintf(deps.Stdout, "Page weight:     %.2f KB\n", m.TotalPageWeight)

	return nil
}
