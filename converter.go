package meal2html

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-meal2html/internal/assets"
	"github.com/alnah/go-meal2html/internal/dateutil"
	"github.com/alnah/go-meal2html/internal/fileutil"
	"github.com/alnah/go-meal2html/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.PlanPreprocessor)(nil)
	_ pipeline.DocumentParser       = (*pipeline.PlanParser)(nil)
	_ pipeline.PageRenderer         = (*pipeline.TemplateRenderer)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the meal-plan markdown-to-HTML pipeline.
// Create with New(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader // internal loader (embedded or WithAssetPath)
	publicAssetLoader AssetLoader        // public loader (from WithAssetLoader)
	preprocessor      pipeline.MarkdownPreprocessor
	parser            pipeline.DocumentParser
	pageRenderer      pipeline.PageRenderer
	cssInjector       pipeline.CSSInjector
}

// publicToInternalAdapter wraps public AssetLoader to internal assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) LoadTemplateSet(name string) (*assets.TemplateSet, error) {
	ts, err := a.pub.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	return &assets.TemplateSet{
		Name: ts.Name,
		Page: ts.Page,
		Card: ts.Card,
	}, nil
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithDateFormat, WithAssetLoader).
// Returns error if asset loading or template parsing fails.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			defaultTitle: DefaultTitle,
			dateFormat:   dateutil.DefaultDisplayFormat,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.PlanPreprocessor{},
		parser:       &pipeline.PlanParser{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface,
	// keeping the embedded fallback for assets the loader doesn't carry
	if c.publicAssetLoader != nil {
		c.assetLoader = assets.NewAssetResolverWithLoader(&publicToInternalAdapter{pub: c.publicAssetLoader})
	}

	// Validate the date format up front so Convert cannot fail per card
	if _, ok := dateutil.DatePresets[strings.ToLower(c.cfg.dateFormat)]; !ok {
		if _, err := dateutil.ParseDateFormat(c.cfg.dateFormat); err != nil {
			return nil, wrapError(ErrInvalidDateFormat, err)
		}
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Load template set unless provided directly via WithTemplateSet
	templateSet := c.cfg.templateSet
	if templateSet == nil {
		name := c.cfg.templatesName
		if name == "" {
			name = assets.DefaultTemplateSetName
		}
		var err error
		templateSet, err = c.assetLoader.LoadTemplateSet(name)
		if err != nil {
			return nil, fmt.Errorf("loading template set %q: %w", name, convertAssetError(err))
		}
	}

	// Create the page renderer using template content (if not injected by tests)
	if c.pageRenderer == nil {
		renderer, err := pipeline.NewTemplateRenderer(templateSet.Page, templateSet.Card)
		if err != nil {
			return nil, fmt.Errorf("initializing page renderer: %w", err)
		}
		c.pageRenderer = renderer
	}

	return c, nil
}

// Convert runs the full pipeline and returns the rendered HTML page.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Resolve week dates up front so an invalid week fails before rendering
	var week dateutil.WeekDates
	hasWeek := false
	if input.Week != nil {
		week, err = dateutil.ResolveWeek(input.Week.Year, input.Week.Week)
		if err != nil {
			return nil, wrapError(ErrInvalidISOWeek, err)
		}
		hasWeek = true
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Parse into title, intro lines, and meal sections
	doc := c.parser.ParseDocument(ctx, mdContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Title precedence: document heading, then caller title, then default
	title := doc.Title
	if title == "" {
		title = input.Title
	}
	if title == "" {
		title = c.cfg.defaultTitle
	}

	// Render each section to a meal card, in document order
	cards := make([]template.HTML, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		card, err := c.renderCard(ctx, section, week, hasWeek)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	page, err := c.pageRenderer.RenderPage(ctx, &pipeline.PageData{
		Title: title,
		Intro: template.HTML(pipeline.RenderBlocks(doc.Intro)),
		Cards: cards,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	// Build combined CSS (base style + user CSS)
	// Order matters: base style first, user CSS last (can override)
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	htmlContent := c.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{
		HTML:  []byte(htmlContent),
		Title: title,
		Cards: len(cards),
	}, nil
}

// renderCard renders one parsed section into a meal card.
// The heading is split into day label and meal title; a date is attached
// only when a week is set and the day label names a weekday.
func (c *Converter) renderCard(ctx context.Context, section pipeline.Section, week dateutil.WeekDates, hasWeek bool) (template.HTML, error) {
	dayLabel, mealTitle := pipeline.SplitHeading(section.RawTitle)

	data := &pipeline.CardData{
		Day:       dayLabel,
		MealTitle: mealTitle,
		Body:      template.HTML(pipeline.RenderBlocks(section.Lines)),
	}

	if hasWeek {
		if weekday, ok := pipeline.ExtractWeekday(dayLabel); ok {
			formatted, err := dateutil.FormatDate(week.Date(weekday), c.cfg.dateFormat)
			if err != nil {
				return "", fmt.Errorf("formatting date for %q: %w", section.RawTitle, err)
			}
			data.Date = formatted
		}
	}

	card, err := c.pageRenderer.RenderCard(ctx, data)
	if err != nil {
		return "", fmt.Errorf("rendering card %q: %w", section.RawTitle, err)
	}
	return card, nil
}

// Close releases converter resources. The rendering pipeline holds none,
// so it always returns nil. Kept so pooled and direct use share the same
// lifecycle.
func (c *Converter) Close() error {
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during New() after options are applied and asset loader is configured.
// An empty input loads the embedded default so pages are always styled.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		css, err := c.assetLoader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return fmt.Errorf("loading default style: %w", convertAssetError(err))
		}
		c.cfg.resolvedStyle = css
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and within limits.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
// Both paths converge here, ensuring all inputs are validated before processing.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if len(input.Markdown) > MaxMarkdownSize {
		return fmt.Errorf("%w: markdown exceeds %d bytes", ErrInvalidInput, MaxMarkdownSize)
	}
	if len(input.CSS) > MaxCSSSize {
		return fmt.Errorf("%w: css exceeds %d bytes", ErrInvalidInput, MaxCSSSize)
	}
	if len(input.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d bytes", ErrInvalidInput, MaxTitleLen)
	}
	if err := input.Week.Validate(); err != nil {
		return err
	}
	return nil
}
