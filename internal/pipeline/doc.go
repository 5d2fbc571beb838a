// Package pipeline implements the meal-plan Markdown-to-HTML conversion pipeline.
//
// This package handles preprocessing, parsing, and rendering stages:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - Document parsing (title, intro lines, per-meal sections)
//   - Heading splitting (day label vs meal title) and weekday extraction
//   - Inline and block rendering of the constrained plan dialect
//   - Card and page rendering from HTML templates
//   - CSS injection into the rendered document
//
// The dialect deliberately recognizes only level-1/level-2 headings, "- "
// bullet lists, **bold** spans, and "---" rules. Plan files are hand-written
// and short; a full CommonMark engine would add behavior (nested lists,
// inline HTML, links) that changes how existing plans render.
//
// ISO week date resolution lives in internal/dateutil and file output in the
// cmd layer. This separation keeps the pipeline focused on document
// structure and content.
package pipeline
