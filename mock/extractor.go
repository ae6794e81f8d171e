package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of pagelens.TableExtractor.
type TableExtractor struct {
	ExtractTablesFn func(html string) ([]pagelens.Table, error)
}

func (e *TableExtractor) ExtractTables(html string) ([]pagelens.Table, error) {
	return e.ExtractTablesFn(html)
}

var _ pagelens.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of pagelens.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]pagelens.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]pagelens.Link, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ pagelens.ColorExtractor = (*ColorExtractor)(nil)

// ColorExtractor is a mock implementation of pagelens.ColorExtractor.
type ColorExtractor struct {
	ExtractColorsFn func(ctx context.Context, html string, baseURL string) ([]pagelens.Color, error)
}

func (e *ColorExtractor) ExtractColors(ctx context.Context, html string, baseURL string) ([]pagelens.Color, error) {
	return e.ExtractColorsFn(ctx, html, baseURL)
}

var _ pagelens.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of pagelens.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(ctx context.Context, html string, baseURL string) ([]pagelens.Image, error)
}

func (e *ImageExtractor) ExtractImages(ctx context.Context, html string, baseURL string) ([]pagelens.Image, error) {
	return e.ExtractImagesFn(ctx, html, baseURL)
}
