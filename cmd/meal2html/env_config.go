package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-meal2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MEAL2HTML_CONFIG: config file name or path
	Style      string // MEAL2HTML_STYLE: style name, path, or literal CSS
	InputDir   string // MEAL2HTML_INPUT_DIR: default input directory
	OutputDir  string // MEAL2HTML_OUTPUT_DIR: default output directory
	Title      string // MEAL2HTML_TITLE: fallback page title
	DateFormat string // MEAL2HTML_DATE_FORMAT: date display format
	Workers    int    // MEAL2HTML_WORKERS: parallel conversions
}

// knownEnvVars lists valid MEAL2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MEAL2HTML_CONFIG":      true,
	"MEAL2HTML_STYLE":       true,
	"MEAL2HTML_INPUT_DIR":   true,
	"MEAL2HTML_OUTPUT_DIR":  true,
	"MEAL2HTML_TITLE":       true,
	"MEAL2HTML_DATE_FORMAT": true,
	"MEAL2HTML_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MEAL2HTML_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MEAL2HTML_CONFIG"),
		Style:      os.Getenv("MEAL2HTML_STYLE"),
		InputDir:   os.Getenv("MEAL2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MEAL2HTML_OUTPUT_DIR"),
		Title:      os.Getenv("MEAL2HTML_TITLE"),
		DateFormat: os.Getenv("MEAL2HTML_DATE_FORMAT"),
	}

	if workers := os.Getenv("MEAL2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MEAL2HTML_* variables.
// Helps catch typos like MEAL2HTML_STLYE instead of MEAL2HTML_STYLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MEAL2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment values onto the loaded config.
// Environment variables beat the config file; mergeFlags runs afterwards
// and beats both, giving: flags > environment > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Title != "" {
		cfg.Title = env.Title
	}
	if env.DateFormat != "" {
		cfg.DateFormat = env.DateFormat
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
