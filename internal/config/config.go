package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-meal2html/internal/dateutil"
	"github.com/alnah/go-meal2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// ConfigDirName is the subdirectory of os.UserConfigDir searched for named configs.
const ConfigDirName = "meal2html"

// Field length limits. Configs are small; anything past these is a mistake.
const (
	MaxTitleLength      = 200  // Fallback page title
	MaxStyleLength      = 4096 // Style name, path, or short literal CSS
	MaxTemplatesLength  = 100  // Template set name
	MaxDirLength        = 1024 // Input/output directory paths
	MaxDateFormatLength = dateutil.MaxDateFormatLength
	MaxWorkers          = 64
)

// Config holds all configuration for meal-plan page generation.
type Config struct {
	Style      string       `yaml:"style"`      // Style name, .css path, or literal CSS (empty = built-in default)
	Templates  string       `yaml:"templates"`  // Template set name (empty = default)
	Title      string       `yaml:"title"`      // Fallback page title when the document has none
	DateFormat string       `yaml:"dateFormat"` // Token format for card dates (empty = "MMM D, YYYY")
	Week       WeekConfig   `yaml:"week"`
	Input      InputConfig  `yaml:"input"`
	Output     OutputConfig `yaml:"output"`
	Assets     AssetsConfig `yaml:"assets"`
	Workers    int          `yaml:"workers"` // Parallel conversions for batch mode (0 = auto)
}

// WeekConfig pins the plan to an ISO week so day labels gain dates.
// Both fields must be set together; zero values mean "no dates".
type WeekConfig struct {
	Year int `yaml:"year"`
	Week int `yaml:"week"`
}

// Set reports whether an ISO week was configured.
func (w WeekConfig) Set() bool {
	return w.Year != 0 || w.Week != 0
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and cross-field rules.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("style", c.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates", c.Templates, MaxTemplatesLength); err != nil {
		return err
	}
	if err := validateFieldLength("title", c.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("dateFormat", c.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxDirLength); err != nil {
		return err
	}

	if c.DateFormat != "" {
		if _, ok := dateutil.DatePresets[strings.ToLower(c.DateFormat)]; !ok {
			if _, err := dateutil.ParseDateFormat(c.DateFormat); err != nil {
				return fmt.Errorf("%w: dateFormat: %v", ErrInvalidField, err)
			}
		}
	}

	if c.Assets.BasePath != "" {
		info, err := os.Stat(c.Assets.BasePath)
		if err != nil {
			return fmt.Errorf("%w: assets.basePath %q does not exist", ErrInvalidField, c.Assets.BasePath)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: assets.basePath %q is not a directory", ErrInvalidField, c.Assets.BasePath)
		}
	}

	if c.Week.Set() {
		if c.Week.Year == 0 || c.Week.Week == 0 {
			return fmt.Errorf("%w: week.year and week.week must be provided together", ErrInvalidField)
		}
		if _, err := dateutil.ResolveWeek(c.Week.Year, c.Week.Week); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: built-in style and templates,
// no pinned week, automatic worker count.
func DefaultConfig() *Config {
	return &Config{
		Style:      "",
		Templates:  "",
		Title:      "",
		DateFormat: "",
		Week:       WeekConfig{},
		Input:      InputConfig{DefaultDir: ""},
		Output:     OutputConfig{DefaultDir: ""},
		Assets:     AssetsConfig{BasePath: ""},
		Workers:    0,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order. Used for error reporting and hints.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, ConfigDirName, name+ext))
		}
	}
	return paths
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/meal2html/
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
