package goquery_test

import (
	"testing"

	pagelensgoquery "github.com/pagelens/pagelens/goquery"
	"github.com/stretchr/testify/assert"
)

func TestPrettify(t *testing.T) {
	t.Parallel()

	pretty := pagelensgoquery.Prettify("<html><body><p>hi</p></body></html>")

	assert.Contains(t, pretty, "<p>")
	assert.Contains(t, pretty, "hi")
	// Indented output spans multiple lines.
	assert.Contains(t, pretty, "\n")
}

func TestVisibleText(t *testing.T) {
	t.Parallel()

	t.Run("joins text tokens with single spaces", func(t *testing.T) {
		t.Parallel()

		text := pagelensgoquery.VisibleText("<body><p>one</p><p>two</p></body>")
		assert.Equal(t, "one two", text)
	})

	t.Run("skips head, script, and style content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Title</title><style>p{color:red}</style></head>
			<body><script>var x = 1;</script><p>visible</p></body></html>`

		text := pagelensgoquery.VisibleText(html)
		assert.Equal(t, "visible", text)
	})

	t.Run("handles fragments without a body", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "just text", pagelensgoquery.VisibleText("<div>just text</div>"))
	})
}
