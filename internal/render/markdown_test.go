package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown(t *testing.T) {
	out := string(Markdown("Some **bold** text"))
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestMarkdown_SanitizesScripts(t *testing.T) {
	out := string(Markdown(`Hello <script>alert("xss")</script> world`))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Hello")
}

func TestMarkdown_KeepsImages(t *testing.T) {
	out := string(Markdown(`![cover](https://example.com/x.jpg)`))
	assert.Contains(t, out, `<img src="https://example.com/x.jpg"`)
}
