package main

import (
	"fmt"
	"sort"

	"github.com/pagelens/pagelens"
)

// Run executes the seo command.
func (c *SEOCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	m, err := deps.SEO.AnalyzeSEO(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Canonical:       %s\n", m.Canonical)
	fmt.Fprintf(deps.Stdout, "Robots:          %s\n", m.Robots)
	fmt.Fprintf(deps.Stdout, "Viewport:        %s\n", m.Viewport)
	fmt.Fprintf(deps.Stdout, "Language:        %s\n", m.Language)
	fmt.Fprintf(deps.Stdout, "Text/HTML ratio: %.2f%%\n", m.TextHTMLRatio)
	fmt.Fprintf(deps.Stdout, "Word count:      %d\n", m.WordCount)
	fmt.Fprintf(deps.Stdout, "Links:           %d internal, %d external, %d nofollow\n",
		m.InternalLinks, m.ExternalLinks, m.NofollowLinks)
	fmt.Fprintf(deps.Stdout, "Image alt text:  %d with, %d without\n",
		m.ImagesWithAlt, m.ImagesWithoutAlt)

	for level := 1; level <= 6; level++ {
		key := fmt.Sprintf("h%d", level)
		for _, text := range m.Headings[key] {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", key, text)
		}
	}

	names := make([]string, 0, len(m.MetaTags))
	for name := range m.MetaTags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(deps.Stdout, "meta %s = %s\n", name, m.MetaTags[name])
	}

	fmt.Fprintf(deps.Stdout, "Structured data: %d block(s)\n", len(m.StructuredData))

	return nil
}
