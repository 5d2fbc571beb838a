package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for template rendering.
var (
	ErrCardRender = errors.New("card template rendering failed")
	ErrPageRender = errors.New("page template rendering failed")
)

// CardData holds one meal card's parts. Day, Date, and MealTitle are plain
// text, escaped by the template engine on output; Body is a pre-rendered
// fragment from RenderBlocks.
type CardData struct {
	Day       string
	Date      string
	MealTitle string
	Body      template.HTML
}

// PageData feeds the page template. Intro and Cards are pre-rendered
// fragments; Title is plain text.
type PageData struct {
	Title string
	Intro template.HTML
	Cards []template.HTML
}

// PageRenderer defines the contract for rendering cards and the page shell.
type PageRenderer interface {
	RenderCard(ctx context.Context, data *CardData) (template.HTML, error)
	RenderPage(ctx context.Context, data *PageData) (string, error)
}

// TemplateRenderer renders meal cards and the page shell from parsed
// templates. Safe for concurrent use once constructed.
type TemplateRenderer struct {
	page *template.Template
	card *template.Template
}

// NewTemplateRenderer parses the page and card templates.
// Returns error if either template cannot be parsed.
func NewTemplateRenderer(pageTmpl, cardTmpl string) (*TemplateRenderer, error) {
	page, err := template.New("page").Parse(pageTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	card, err := template.New("card").Parse(cardTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing card template: %w", err)
	}
	return &TemplateRenderer{page: page, card: card}, nil
}

// RenderCard renders one meal card fragment.
func (r *TemplateRenderer) RenderCard(ctx context.Context, data *CardData) (template.HTML, error) {
	// Check for cancellation
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.card.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCardRender, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPage renders the full document shell around the given cards.
func (r *TemplateRenderer) RenderPage(ctx context.Context, data *PageData) (string, error) {
	// Check for cancellation
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
