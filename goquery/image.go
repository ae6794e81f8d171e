package goquery

import (
	"context"
	"image"
	"net/url"
	"path"
	"strconv"
	"strings"

	// Decoders for dimension probing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Ensure ImageExtractor implements pagelens.ImageExtractor at compile time.
var _ pagelens.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor finds image elements and resolves their metadata,
// probing image bytes over the network when the markup declares no
// dimensions.
type ImageExtractor struct {
	fetcher pagelens.Fetcher
}

// NewImageExtractor creates a new ImageExtractor. The fetcher downloads
// image bytes for dimension probing.
func NewImageExtractor(fetcher pagelens.Fetcher) *ImageExtractor {
	return &ImageExtractor{fetcher: fetcher}
}

// ExtractImages returns a record for every image element with a non-empty
// source attribute, in document order. A failed dimension probe keeps the
// "not specified" sentinel and never aborts the extraction.
func (e *ImageExtractor) ExtractImages(ctx context.Context, html string, baseURL string) ([]pagelens.Image, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	var images []pagelens.Image
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		src = strings.TrimSpace(src)
		if src == "" {
			return
		}

		img := pagelens.Image{
			URL:    src,
			Alt:    sel.AttrOr("alt", pagelens.NoAltText),
			Title:  sel.AttrOr("title", pagelens.NoImageTitle),
			Width:  sel.AttrOr("width", pagelens.DimensionNotSpecified),
			Height: sel.AttrOr("height", pagelens.DimensionNotSpecified),
		}

		if strings.HasPrefix(src, "data:") {
			img.Type = pagelens.DataImageType
			images = append(images, img)
			return
		}

		if ref, err := url.Parse(src); err == nil {
			img.URL = base.ResolveReference(ref).String()
		}
		img.Type = imageType(img.URL)

		if img.Width == pagelens.DimensionNotSpecified {
			if w, h, ok := e.probeDimensions(ctx, img.URL); ok {
				img.Width = strconv.Itoa(w)
				img.Height = strconv.Itoa(h)
			}
		}

		images = append(images, img)
	})

	return images, nil
}

// imageType derives the lowercased file extension from the resolved URL's
// path, or "unknown" when there is none.
func imageType(resolved string) string {
	u, err := url.Parse(resolved)
	if err != nil {
		return "unknown"
	}
	ext := strings.TrimPrefix(path.Ext(u.Path), ".")
	if ext == "" {
		return "unknown"
	}
	return strings.ToLower(ext)
}

// probeDimensions fetches the image bytes and decodes just enough of them
// to read the pixel dimensions. Any failure is swallowed.
func (e *ImageExtractor) probeDimensions(ctx context.Context, url string) (width, height int, ok bool) {
	res, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return 0, 0, false
	}
	cfg, _, err := image.DecodeConfig(strings.NewReader(res.Body))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
