package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	meal2html "github.com/alnah/go-meal2html"
	"github.com/alnah/go-meal2html/internal/assets"
	"github.com/alnah/go-meal2html/internal/config"
	"github.com/alnah/go-meal2html/internal/fileutil"
	"github.com/alnah/go-meal2html/internal/hints"
)

// ErrWeekFlagPair is returned when only one of --year/--iso-week is set.
var ErrWeekFlagPair = errors.New("year and ISO week must be set together")

// runConvert converts the given inputs using merged flag, env, and config
// settings. Precedence: flags > environment > config file > defaults.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, env *Environment) error {
	envCfg := loadEnvConfig()

	cfg, err := loadConfigFile(flags, envCfg)
	if err != nil {
		return err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(cfg, flags)

	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}

	week, err := resolveWeek(cfg)
	if err != nil {
		return err
	}

	css, err := resolveExtraCSS(flags.assets.css)
	if err != nil {
		return err
	}

	if len(inputs) == 0 && cfg.Input.DefaultDir != "" {
		inputs = []string{cfg.Input.DefaultDir}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInputs())
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = cfg.Output.DefaultDir
	}

	files, err := discoverInputs(inputs, outputPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no meal plan files found%s", ErrNoInput, hints.ForNoInputs())
	}
	if len(files) > 1 && strings.HasSuffix(outputPath, ".html") {
		return fmt.Errorf("%w: --output %s matches %d inputs", ErrOutputConflict, outputPath, len(files))
	}

	pool := meal2html.NewConverterPool(meal2html.ResolvePoolSize(cfg.Workers), buildConvertOptions(cfg)...)
	defer func() { _ = pool.Close() }()

	// Acquire one converter up front so option errors (unknown style, bad
	// date format) surface once instead of once per file.
	conv, err := pool.Acquire()
	if err != nil {
		if errors.Is(err, meal2html.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
		}
		return err
	}
	pool.Release(conv)

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", pool.Size())
	}

	params := &conversionParams{css: css, week: week}
	results := convertBatch(ctx, pool, files, params)

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// loadConfigFile loads the config named by -c/--config, falling back to
// MEAL2HTML_CONFIG. Without either the defaults are used; no file search
// happens implicitly.
func loadConfigFile(flags *convertFlags, envCfg *envConfig) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags overlays non-empty flag values onto the loaded config.
// Flags always win; zero values leave the config untouched.
func mergeFlags(cfg *config.Config, flags *convertFlags) {
	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.templates != "" {
		cfg.Templates = flags.assets.templates
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.plan.title != "" {
		cfg.Title = flags.plan.title
	}
	if flags.plan.dateFormat != "" {
		cfg.DateFormat = flags.plan.dateFormat
	}
	if flags.plan.year != 0 {
		cfg.Week.Year = flags.plan.year
	}
	if flags.plan.isoWeek != 0 {
		cfg.Week.Week = flags.plan.isoWeek
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
}

// resolveWeek validates the merged week selection and converts it to the
// library type. Returns nil when no week is configured.
func resolveWeek(cfg *config.Config) (*meal2html.WeekSpec, error) {
	if !cfg.Week.Set() {
		return nil, nil
	}
	if cfg.Week.Year == 0 || cfg.Week.Week == 0 {
		return nil, fmt.Errorf("%w (year=%d, week=%d)%s",
			ErrWeekFlagPair, cfg.Week.Year, cfg.Week.Week, hints.ForWeekFlags())
	}

	week := &meal2html.WeekSpec{Year: cfg.Week.Year, Week: cfg.Week.Week}
	if err := week.Validate(); err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForInvalidWeek())
	}
	return week, nil
}

// resolveExtraCSS loads the --css value. Accepts literal CSS or a path to
// a stylesheet; an empty value means no extra CSS.
func resolveExtraCSS(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if fileutil.IsCSS(value) {
		return value, nil
	}

	content, err := os.ReadFile(value) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// buildConvertOptions translates merged config into library options.
func buildConvertOptions(cfg *config.Config) []meal2html.Option {
	var opts []meal2html.Option
	if cfg.Style != "" {
		opts = append(opts, meal2html.WithStyle(cfg.Style))
	}
	if cfg.Templates != "" {
		opts = append(opts, meal2html.WithTemplates(cfg.Templates))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, meal2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Title != "" {
		opts = append(opts, meal2html.WithDefaultTitle(cfg.Title))
	}
	if cfg.DateFormat != "" {
		opts = append(opts, meal2html.WithDateFormat(cfg.DateFormat))
	}
	return opts
}
