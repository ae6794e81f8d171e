package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	images, err := deps.Images.ExtractImages(deps.Ctx, res.Body, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(images) == 0 {
		fmt.Fprintln(deps.Stdout, "No images found on the webpage.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d image(s)\n", len(images))
	for _, img := range images {
		fmt.Fprintf(deps.Stdout, "%s\n  type=%s size=%sx%s alt=%q title=%q\n",
			img.URL, img.Type, img.Width, img.Height, img.Alt, img.Title)
	}

	return nil
}
