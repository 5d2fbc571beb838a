// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/meal2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/meal2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/meal2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForWeekFlags returns the hint for a lone --year or --iso-week flag.
func ForWeekFlags() string {
	return format("--year and --iso-week must be provided together, e.g. --year 2026 --iso-week 9")
}

// ForInvalidWeek returns hints for out-of-range ISO week errors.
func ForInvalidWeek() string {
	return format("ISO weeks run 1-52, or 1-53 in long years")
}

// ForNoInputs returns hints when input discovery finds nothing to convert.
func ForNoInputs() string {
	return format("pass a .md file or a directory containing .md files")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
