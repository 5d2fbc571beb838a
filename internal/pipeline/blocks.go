package pipeline

import "strings"

// listMarker prefixes bullet list items in the plan dialect.
const listMarker = "- "

// RenderBlocks turns raw body lines into paragraph and list markup.
// A maximal run of consecutive lines starting with "- " (after trimming)
// becomes one <ul> with each item's remainder trimmed and rendered inline;
// any other non-blank line becomes its own <p>. Blank lines emit nothing
// but end a list run. Blocks are joined with newlines.
func RenderBlocks(lines []string) string {
	var blocks []string
	var items []string

	flushList := func() {
		if len(items) == 0 {
			return
		}
		var b strings.Builder
		b.WriteString("<ul>")
		for _, item := range items {
			b.WriteString("<li>")
			b.WriteString(RenderInline(item))
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		blocks = append(blocks, b.String())
		items = items[:0]
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			flushList()
			continue
		}
		if strings.HasPrefix(line, listMarker) {
			items = append(items, strings.TrimSpace(line[len(listMarker):]))
			continue
		}
		flushList()
		blocks = append(blocks, "<p>"+RenderInline(line)+"</p>")
	}
	flushList()

	return strings.Join(blocks, "\n")
}
