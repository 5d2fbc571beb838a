package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-meal2html/internal/config"
	"github.com/alnah/go-meal2html/internal/fileutil"
)

// Sentinel errors for input discovery and validation.
var (
	ErrInvalidExtension   = errors.New("invalid file extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputConflict     = errors.New("output names a single file")
)

// FileToConvert pairs an input file with its output destination.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// markdownExtensions lists recognized meal plan file extensions.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// validateMarkdownExtension checks that a file argument is a markdown file.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !markdownExtensions[ext] {
		return fmt.Errorf("%w: %s (expected .md or .markdown)", ErrInvalidExtension, path)
	}
	return nil
}

// validateWorkers checks the worker count from flags, env, or config.
// Zero means auto-size from the CPU count.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// discoverInputs expands each input argument into the list of files to
// convert. File arguments must carry a markdown extension; directories
// are walked recursively.
func discoverInputs(inputs []string, outputPath string) ([]FileToConvert, error) {
	var files []FileToConvert

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("reading input %s: %w", input, err)
		}

		if !info.IsDir() {
			if err := validateMarkdownExtension(input); err != nil {
				return nil, err
			}
			files = append(files, FileToConvert{
				InputPath:  input,
				OutputPath: resolveOutputPath(input, outputPath, ""),
			})
			continue
		}

		walkErr := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !markdownExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			files = append(files, FileToConvert{
				InputPath:  path,
				OutputPath: resolveOutputPath(path, outputPath, input),
			})
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walking directory %s: %w", input, walkErr)
		}
	}

	return files, nil
}

// resolveOutputPath determines where the rendered page for inputPath goes.
// An empty outputPath keeps the page next to its source. A path ending in
// .html names the output file directly. Anything else is treated as a
// directory; files discovered under baseInputDir keep their relative layout.
func resolveOutputPath(inputPath, outputPath, baseInputDir string) string {
	if outputPath == "" {
		return fileutil.SwapExtension(inputPath, ".html")
	}
	if strings.HasSuffix(outputPath, ".html") {
		return outputPath
	}

	name := fileutil.SwapExtension(filepath.Base(inputPath), ".html")
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputPath, filepath.Dir(rel), name)
		}
	}
	return filepath.Join(outputPath, name)
}
