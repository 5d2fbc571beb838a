package pipeline

import (
	"context"
	"strings"
)

// Document is the parsed structure of a weekly plan file.
// Built once per conversion and never mutated afterwards.
type Document struct {
	Title    string    // First "# " heading, empty when absent
	Intro    []string  // Raw lines before the first section
	Sections []Section // One per "## " heading, in document order
}

// Section is one meal entry: a raw heading plus the body lines that follow
// it, up to the next heading or end of input.
type Section struct {
	RawTitle string
	Lines    []string
}

// DocumentParser defines the contract for extracting plan structure from Markdown.
type DocumentParser interface {
	ParseDocument(ctx context.Context, content string) *Document
}

// PlanParser parses the constrained meal-plan dialect.
type PlanParser struct{}

// ParseDocument splits the document into title, intro lines, and sections.
// Per line, after trimming: the first "# " line sets the title and later
// ones are consumed, "## " opens a new section, a lone "---" is discarded,
// and everything else is appended verbatim (untrimmed) to the open section
// or to the intro when no section is open yet.
func (p *PlanParser) ParseDocument(ctx context.Context, content string) *Document {
	doc := &Document{}

	// Check for cancellation before processing
	if ctx.Err() != nil {
		return doc
	}

	var current *Section
	for _, raw := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(raw)

		if strings.HasPrefix(stripped, "# ") {
			if doc.Title == "" {
				doc.Title = strings.TrimSpace(stripped[2:])
			}
			continue
		}

		if strings.HasPrefix(stripped, "## ") {
			if current != nil {
				doc.Sections = append(doc.Sections, *current)
			}
			current = &Section{RawTitle: strings.TrimSpace(stripped[3:])}
			continue
		}

		if stripped == "---" {
			continue
		}

		if current != nil {
			current.Lines = append(current.Lines, raw)
		} else {
			doc.Intro = append(doc.Intro, raw)
		}
	}
	if current != nil {
		doc.Sections = append(doc.Sections, *current)
	}

	return doc
}
