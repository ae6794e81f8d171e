package pagelens

import "context"

// Placeholders for image fields absent from the markup.
const (
	NoAltText    = "No alt text"
	NoImageTitle = "No title"

	// DimensionNotSpecified is the sentinel for a width or height that was
	// neither declared in the markup nor recoverable by probing the image.
	DimensionNotSpecified = "Not specified"

	// DataImageType is the Type value for inline data-URI images.
	DataImageType = "data:image"
)

// Image is an image element extracted from a page.
type Image struct {
	// URL is the resolved source URL, or the raw data URI for inline
	// images.
	URL string

	// Alt is the declared alt text, or NoAltText.
	Alt string

	// Title is the declared title, or NoImageTitle.
	Title string

	// Width and Height are the declared attribute values, probed pixel
	// dimensions, or DimensionNotSpecified.
	Width  string
	Height string

	// Type is the lowercased file extension of the source, DataImageType
	// for data URIs, or "unknown" when the source carries no extension.
	Type string
}

// ImageExtractor finds image elements with a non-empty source. When the
// markup declares no width and the source is not a data URI, it probes
// the image bytes over the network to recover true pixel dimensions;
// a probe failure keeps the DimensionNotSpecified sentinel and never
// aborts the extraction.
type ImageExtractor interface {
	ExtractImages(ctx context.Context, html string, baseURL string) ([]Image, error)
}
