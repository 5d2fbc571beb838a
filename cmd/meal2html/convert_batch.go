package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	meal2html "github.com/alnah/go-meal2html"
	"github.com/alnah/go-meal2html/internal/fileutil"
	"github.com/alnah/go-meal2html/internal/hints"
)

// filePermissions is the mode for rendered pages: rw-r--r--.
const filePermissions = 0o644

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// conversionParams groups per-file inputs shared across a batch.
type conversionParams struct {
	css  string              // Extra CSS appended after the converter's style
	week *meal2html.WeekSpec // ISO week for day dates, nil means no dates
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Cards      int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool *meal2html.ConverterPool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	var acquireMu sync.Mutex
	var acquireErr error

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Leave queued jobs for healthy workers; remember the error
				// in case no worker gets a converter at all.
				acquireMu.Lock()
				if acquireErr == nil {
					acquireErr = err
				}
				acquireMu.Unlock()
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	// Jobs still unprocessed after the wait mean every worker failed to
	// acquire a converter; mark them with the construction error.
	for i := range results {
		if results[i].InputPath == "" {
			results[i] = ConversionResult{
				InputPath: files[i].InputPath,
				Err:       acquireErr,
			}
		}
	}
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv *meal2html.Converter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.EnsureParentDir(f.OutputPath); err != nil {
		result.Err = fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := conv.Convert(ctx, meal2html.Input{
		Markdown: string(content),
		CSS:      params.css,
		Week:     params.week,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- rendered pages are meant to be readable
	if err := os.WriteFile(f.OutputPath, convResult.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Title = convResult.Title
	result.Cards = convResult.Cards
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports conversion outcomes and returns the failure count.
// Failures always go to stderr; quiet suppresses the success lines.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%q, %d cards, %v)\n",
				r.InputPath, r.OutputPath, r.Title, r.Cards, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Meal plan saved to %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
