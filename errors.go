package meal2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrInvalidInput  = errors.New("invalid input")
	ErrPoolClosed    = errors.New("converter pool is closed")

	// Week validation errors.
	ErrInvalidISOWeek = errors.New("invalid ISO week")

	// Date format validation errors.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
