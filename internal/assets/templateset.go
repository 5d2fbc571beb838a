package assets

// TemplateSet holds the HTML templates for page generation.
// A template set contains the page shell and the per-meal card markup,
// which work together: the page template provides the document skeleton
// and the card template renders inside its plan grid.
type TemplateSet struct {
	Name string // Identifier (name or directory path)
	Page string // Page shell template HTML content
	Card string // Meal card template HTML content
}

// Template file names expected inside a template set directory.
const (
	PageTemplateFile = "page.html"
	CardTemplateFile = "card.html"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "weekly"
