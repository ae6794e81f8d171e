package main

import (
	"context"
	"io"

	"github.com/pagelens/pagelens"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Fetcher pagelens.Fetcher
	Tables  pagelens.TableExtractor
	Links   pagelens.LinkExtractor
	Colors  pagelens.ColorExtractor
	Images  pagelens.ImageExtractor
	Perf    pagelens.PerformanceAnalyzer
	SEO     pagelens.SEOAnalyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches to stderr"`

	Tables TablesCmd `cmd:"" help:"Extract tables from a webpage"`
	HTML   HTMLCmd   `cmd:"" name:"html" help:"Show the prettified page HTML"`
	Links  LinksCmd  `cmd:"" help:"Extract and classify hyperlinks"`
	Colors ColorsCmd `cmd:"" help:"Extract color literals from page styles"`
	Images ImagesCmd `cmd:"" help:"Extract images with metadata"`
	Perf   PerfCmd   `cmd:"" help:"Analyze page performance metrics"`
	SEO    SEOCmd    `cmd:"" name:"seo" help:"Analyze page SEO metrics"`
}

// TablesCmd is the "tables" subcommand.
type TablesCmd struct {
	URL    string `arg:"" help:"Page URL (http or https)"`
	Export bool   `short:"e" help:"Export each table as a CSV file"`
	Out    string `short:"o" default:"." help:"Export directory"`
}

// HTMLCmd is the "html" subcommand.
type HTMLCmd struct {
	URL    string `arg:"" help:"Page URL (http or https)"`
	Export bool   `short:"e" help:"Export the HTML to a file"`
	Out    string `short:"o" default:"." help:"Export directory"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL string `arg:"" help:"Page URL (http or https)"`
}

// ColorsCmd is the "colors" subcommand.
type ColorsCmd struct {
	URL string `arg:"" help:"Page URL (http or https)"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	URL string `arg:"" help:"Page URL (http or https)"`
}

// PerfCmd is the "perf" subcommand.
type PerfCmd struct {
	URL string `arg:"" help:"Page URL (http or https)"`
}

// SEOCmd is the "seo" subcommand.
type SEOCmd struct {
	URL string `arg:"" help:"Page URL (http or https)"`
}

// validatePageURL rejects URLs without a scheme or host before any
// network work happens.
func validatePageURL(raw string) error {
	if !pagelens.ValidateURL(raw) {
		return pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: must include scheme and host (e.g. https://example.com)", raw)
	}
	return nil
}
