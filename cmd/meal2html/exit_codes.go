package main

import (
	"errors"
	"os"

	meal2html "github.com/alnah/go-meal2html"
	"github.com/alnah/go-meal2html/internal/config"
)

// Exit codes for the meal2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General error, including partial batch failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, meal2html.ErrInvalidISOWeek) ||
		errors.Is(err, meal2html.ErrInvalidDateFormat) ||
		errors.Is(err, meal2html.ErrStyleNotFound) ||
		errors.Is(err, meal2html.ErrTemplateSetNotFound) ||
		errors.Is(err, meal2html.ErrIncompleteTemplateSet) ||
		errors.Is(err, meal2html.ErrInvalidAssetPath) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrWeekFlagPair) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
