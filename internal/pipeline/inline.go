package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// strongPattern matches **bold** spans: non-greedy, non-overlapping, and
// never across line boundaries (RE2's . excludes newlines).
var strongPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// RenderInline escapes text for HTML embedding and rewrites **bold** spans
// into <strong> tags. Spans are scanned left to right, earliest match first.
// Both the text between spans and each span's content receive exactly one
// level of escaping; unmatched ** sequences are escaped literally.
func RenderInline(text string) string {
	matches := strongPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return html.EscapeString(text)
	}

	var b strings.Builder
	b.Grow(len(text) + 32)

	last := 0
	for _, m := range matches {
		b.WriteString(html.EscapeString(text[last:m[0]]))
		b.WriteString("<strong>")
		b.WriteString(html.EscapeString(text[m[2]:m[3]]))
		b.WriteString("</strong>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
