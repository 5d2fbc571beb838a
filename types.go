package meal2html

import (
	"github.com/alnah/go-meal2html/internal/assets"
)

// Input size limits in bytes. Convert rejects inputs beyond these bounds
// before any processing happens.
const (
	// MaxMarkdownSize caps markdown content at 10 MiB.
	MaxMarkdownSize = 10 << 20

	// MaxCSSSize caps extra CSS at 1 MiB.
	MaxCSSSize = 1 << 20

	// MaxTitleLen caps the fallback title length.
	MaxTitleLen = 500
)

// DefaultTitle is the page title used when neither the document nor the
// caller provides one.
const DefaultTitle = "Weekly Meal Plan"

// Input contains conversion parameters.
type Input struct {
	Markdown string    // Meal plan markdown content (required)
	CSS      string    // Extra CSS appended after the base style (optional)
	Title    string    // Fallback page title when the document has no "# " heading (optional)
	Week     *WeekSpec // ISO week used to date the day labels (optional, nil = no dates)
}

// ConvertResult holds the rendered page.
type ConvertResult struct {
	HTML  []byte // Complete HTML document with inlined CSS
	Title string // Resolved page title (document heading, Input.Title, or the default)
	Cards int    // Number of meal cards rendered
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput    string              // raw WithStyle value: name, file path, or CSS content
	resolvedStyle string              // CSS content after resolution in New
	templatesName string              // template set name from WithTemplates
	templateSet   *assets.TemplateSet // direct template set from WithTemplateSet
	assetPath     string              // custom asset directory from WithAssetPath
	defaultTitle  string              // fallback title from WithDefaultTitle
	dateFormat    string              // date display format from WithDateFormat
}

// WithStyle selects the base stylesheet. Accepts a built-in style name
// (e.g. "weekly"), a path to a .css file, or raw CSS content. The default
// is the embedded "weekly" style.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplates selects a named template set via the asset loader.
func WithTemplates(name string) Option {
	return func(c *Converter) {
		c.cfg.templatesName = name
	}
}

// WithTemplateSet supplies page and card templates directly, bypassing
// the asset loader. Takes precedence over WithTemplates.
func WithTemplateSet(ts *TemplateSet) Option {
	return func(c *Converter) {
		if ts != nil {
			c.cfg.templateSet = &assets.TemplateSet{
				Name: ts.Name,
				Page: ts.Page,
				Card: ts.Card,
			}
		}
	}
}

// WithAssetPath points the converter at a directory of custom assets
// (styles/ and templates/ subdirectories). Assets missing from the
// directory fall back to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader installs a custom asset loader (e.g. S3, database).
// Takes precedence over WithAssetPath. Assets the loader reports as not
// found fall back to the embedded defaults.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithDefaultTitle overrides the fallback page title used when neither
// the document nor Input.Title provides one. Empty titles are ignored.
func WithDefaultTitle(title string) Option {
	return func(c *Converter) {
		if title != "" {
			c.cfg.defaultTitle = title
		}
	}
}

// WithDateFormat sets the display format for day dates. Accepts a preset
// name ("iso", "european", "us", "long") or a token pattern such as
// "MMM D, YYYY". Empty formats are ignored; invalid ones fail New with
// ErrInvalidDateFormat.
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		if format != "" {
			c.cfg.dateFormat = format
		}
	}
}
