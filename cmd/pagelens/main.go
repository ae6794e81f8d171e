package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/fs"
	pagelensgoquery "github.com/pagelens/pagelens/goquery"
	pagelenshttp "github.com/pagelens/pagelens/http"
	pagelensslog "github.com/pagelens/pagelens/slog"
)

// resourceFetchTimeout bounds sub-resource fetches (external stylesheets,
// image probes), which are best-effort and should not stall the run.
const resourceFetchTimeout = 5 * time.Second

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Description("Fetch a single webpage and extract tables, links, colors, images, performance metrics, and SEO metrics."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Page fetcher carries the politeness delay; the resource fetcher used
	// for stylesheets and image probes does not.
	pageFetcher := pagelenshttp.NewFetcher()
	resourceFetcher := pagelenshttp.NewFetcher(
		pagelenshttp.WithLimiter(nil),
		pagelenshttp.WithTimeout(resourceFetchTimeout),
	)

	deps.Fetcher = pageFetcher
	var resFetcher pagelens.Fetcher = resourceFetcher

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Fetcher = pagelensslog.NewLoggingFetcher(pageFetcher, logger)
		resFetcher = pagelensslog.NewLoggingFetcher(resourceFetcher, logger)
	}

	deps.Tables = pagelensgoquery.NewTableExtractor()
	deps.Links = pagelensgoquery.NewLinkExtractor()
	deps.Colors = pagelensgoquery.NewColorExtractor(resFetcher)
	deps.Images = pagelensgoquery.NewImageExtractor(resFetcher)
	deps.Perf = pagelensgoquery.NewPerformanceAnalyzer(deps.Fetcher, pagelenshttp.NewProber())
	deps.SEO = pagelensgoquery.NewSEOAnalyzer(deps.Fetcher)

	return kongCtx.Run(deps)
}

// newExportWriter builds the export writer for commands that write files.
func newExportWriter(dir string) *fs.Writer {
	return fs.NewWriter(dir)
}
