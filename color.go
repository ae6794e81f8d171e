package pagelens

import "context"

// ColorFormat identifies the syntax a color literal was written in.
type ColorFormat string

// Color literal formats, in match priority order.
const (
	ColorHex  ColorFormat = "hex"
	ColorRGB  ColorFormat = "rgb"
	ColorRGBA ColorFormat = "rgba"
)

// ColorSource identifies where on the page a color literal was found.
type ColorSource string

// Color sources.
const (
	SourceStyleBlock  ColorSource = "CSS"
	SourceInline      ColorSource = "Inline"
	SourceExternalCSS ColorSource = "External CSS"
)

// Color is a color literal extracted from style text.
type Color struct {
	// Value is the exact matched substring, e.g. "#fff" or "rgb(0, 0, 0)".
	Value string

	// Format is the literal's syntax.
	Format ColorFormat

	// Source is where the literal was found.
	Source ColorSource
}

// ColorExtractor scans inline <style> blocks, style attributes, and
// externally linked stylesheets for color literals. A failed stylesheet
// fetch contributes no colors and is not an error. The returned
// collection is deduplicated by (Value, Format), first-seen order.
type ColorExtractor interface {
	ExtractColors(ctx context.Context, html string, baseURL string) ([]Color, error)
}
