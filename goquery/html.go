package goquery

import (
	"strings"

	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
)

// Prettify returns an indented rendition of the HTML, used for the
// raw-HTML view and for HTML export.
func Prettify(rawHTML string) string {
	return gohtml.Format(rawHTML)
}

// VisibleText extracts the text a reader would see, skipping the head
// and any script, style, and noscript content. Tokens are joined with
// single spaces.
func VisibleText(rawHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))
	var sb strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			switch string(tn) {
			case "head", "script", "style", "noscript":
				skipDepth++
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			switch string(tn) {
			case "head", "script", "style", "noscript":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
		}
	}
}
