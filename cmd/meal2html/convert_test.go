package main

// Notes:
// - mergeFlags: we test override and preserve behavior for each flag.
// - resolveWeek/resolveExtraCSS/loadConfigFile: we test the resolution rules
//   including error paths and hint text.
// - runConvert: we test end-to-end conversion against real files in a temp
//   directory, since converters are cheap in-process objects.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	meal2html "github.com/alnah/go-meal2html"
	"github.com/alnah/go-meal2html/internal/config"
)

// testPlan is a small two-day meal plan used across conversion tests.
const testPlan = `# Week 9 Meal Plan

## Monday

### Lunch
- Lentil soup

### Dinner
- Grilled salmon with rice

## Tuesday

### Dinner
- Veggie stir fry
`

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags override config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags *convertFlags
		cfg   *config.Config
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "empty flags preserve config style",
			flags: &convertFlags{},
			cfg:   &config.Config{Style: "slate"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Style != "slate" {
					t.Errorf("Style = %q, want %q", cfg.Style, "slate")
				}
			},
		},
		{
			name:  "style overrides config",
			flags: &convertFlags{assets: assetFlags{style: "weekly"}},
			cfg:   &config.Config{Style: "slate"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Style != "weekly" {
					t.Errorf("Style = %q, want %q", cfg.Style, "weekly")
				}
			},
		},
		{
			name:  "templates overrides config",
			flags: &convertFlags{assets: assetFlags{templates: "compact"}},
			cfg:   &config.Config{Templates: "default"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Templates != "compact" {
					t.Errorf("Templates = %q, want %q", cfg.Templates, "compact")
				}
			},
		},
		{
			name:  "asset path overrides config",
			flags: &convertFlags{assets: assetFlags{assetPath: "/cli/assets"}},
			cfg:   &config.Config{Assets: config.AssetsConfig{BasePath: "/cfg/assets"}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Assets.BasePath != "/cli/assets" {
					t.Errorf("Assets.BasePath = %q, want %q", cfg.Assets.BasePath, "/cli/assets")
				}
			},
		},
		{
			name:  "title overrides config",
			flags: &convertFlags{plan: planFlags{title: "CLI Title"}},
			cfg:   &config.Config{Title: "Config Title"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Title != "CLI Title" {
					t.Errorf("Title = %q, want %q", cfg.Title, "CLI Title")
				}
			},
		},
		{
			name:  "date format overrides config",
			flags: &convertFlags{plan: planFlags{dateFormat: "european"}},
			cfg:   &config.Config{DateFormat: "iso"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.DateFormat != "european" {
					t.Errorf("DateFormat = %q, want %q", cfg.DateFormat, "european")
				}
			},
		},
		{
			name:  "week flags override config",
			flags: &convertFlags{plan: planFlags{year: 2026, isoWeek: 9}},
			cfg:   &config.Config{Week: config.WeekConfig{Year: 2025, Week: 40}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Week.Year != 2026 || cfg.Week.Week != 9 {
					t.Errorf("Week = %d/%d, want 2026/9", cfg.Week.Year, cfg.Week.Week)
				}
			},
		},
		{
			name:  "zero week flags preserve config week",
			flags: &convertFlags{},
			cfg:   &config.Config{Week: config.WeekConfig{Year: 2026, Week: 9}},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Week.Year != 2026 || cfg.Week.Week != 9 {
					t.Errorf("Week = %d/%d, want 2026/9", cfg.Week.Year, cfg.Week.Week)
				}
			},
		},
		{
			name:  "workers overrides config",
			flags: &convertFlags{workers: 4},
			cfg:   &config.Config{Workers: 2},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Workers != 4 {
					t.Errorf("Workers = %d, want 4", cfg.Workers)
				}
			},
		},
		{
			name:  "zero workers preserve config",
			flags: &convertFlags{},
			cfg:   &config.Config{Workers: 2},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Workers != 2 {
					t.Errorf("Workers = %d, want 2", cfg.Workers)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mergeFlags(tt.cfg, tt.flags)
			tt.check(t, tt.cfg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveWeek - Week pair validation
// ---------------------------------------------------------------------------

func TestResolveWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		week     config.WeekConfig
		wantNil  bool
		wantErr  error
		wantYear int
		wantWeek int
	}{
		{
			name:    "no week configured returns nil",
			week:    config.WeekConfig{},
			wantNil: true,
		},
		{
			name:     "valid pair",
			week:     config.WeekConfig{Year: 2026, Week: 9},
			wantYear: 2026,
			wantWeek: 9,
		},
		{
			name:     "week 53 in a long year",
			week:     config.WeekConfig{Year: 2026, Week: 53},
			wantYear: 2026,
			wantWeek: 53,
		},
		{
			name:    "year without week",
			week:    config.WeekConfig{Year: 2026},
			wantErr: ErrWeekFlagPair,
		},
		{
			name:    "week without year",
			week:    config.WeekConfig{Week: 9},
			wantErr: ErrWeekFlagPair,
		},
		{
			name:    "week 53 in a short year",
			week:    config.WeekConfig{Year: 2025, Week: 53},
			wantErr: meal2html.ErrInvalidISOWeek,
		},
		{
			name:    "week out of range",
			week:    config.WeekConfig{Year: 2026, Week: 54},
			wantErr: meal2html.ErrInvalidISOWeek,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveWeek(&config.Config{Week: tt.week})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if !strings.Contains(err.Error(), "hint:") {
					t.Errorf("error should carry a hint, got: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil week, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected week, got nil")
			}
			if got.Year != tt.wantYear || got.Week != tt.wantWeek {
				t.Errorf("week = %d/%d, want %d/%d", got.Year, got.Week, tt.wantYear, tt.wantWeek)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveExtraCSS - Literal CSS vs stylesheet path
// ---------------------------------------------------------------------------

func TestResolveExtraCSS(t *testing.T) {
	t.Parallel()

	t.Run("empty value means no extra CSS", func(t *testing.T) {
		t.Parallel()

		got, err := resolveExtraCSS("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("literal CSS passes through", func(t *testing.T) {
		t.Parallel()

		literal := "body { background: #fff; }"
		got, err := resolveExtraCSS(literal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != literal {
			t.Errorf("got %q, want %q", got, literal)
		}
	})

	t.Run("path loads file contents", func(t *testing.T) {
		t.Parallel()

		cssPath := filepath.Join(t.TempDir(), "extra.css")
		content := ".meal-card { border-radius: 8px; }"
		if err := os.WriteFile(cssPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		got, err := resolveExtraCSS(cssPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != content {
			t.Errorf("got %q, want %q", got, content)
		}
	})

	t.Run("missing file returns ErrReadCSS", func(t *testing.T) {
		t.Parallel()

		_, err := resolveExtraCSS("/nonexistent/extra.css")
		if !errors.Is(err, ErrReadCSS) {
			t.Errorf("error = %v, want ErrReadCSS", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildConvertOptions - Config to library option translation
// ---------------------------------------------------------------------------

func TestBuildConvertOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty config builds no options", func(t *testing.T) {
		t.Parallel()

		opts := buildConvertOptions(config.DefaultConfig())
		if len(opts) != 0 {
			t.Errorf("got %d options, want 0", len(opts))
		}
	})

	t.Run("full config builds one option per field", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Style:      "slate",
			Templates:  "default",
			Title:      "Family Plan",
			DateFormat: "iso",
			Assets:     config.AssetsConfig{BasePath: "/assets"},
		}
		opts := buildConvertOptions(cfg)
		if len(opts) != 5 {
			t.Errorf("got %d options, want 5", len(opts))
		}
	})

	t.Run("bad date format fails converter construction", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{DateFormat: "[Week YYYY"}
		_, err := meal2html.New(buildConvertOptions(cfg)...)
		if !errors.Is(err, meal2html.ErrInvalidDateFormat) {
			t.Errorf("error = %v, want ErrInvalidDateFormat", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfigFile - Config resolution from flag and environment
// ---------------------------------------------------------------------------

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("no name uses defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfigFile(&convertFlags{}, &envConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Style != "" || cfg.Workers != 0 {
			t.Errorf("expected default config, got %+v", cfg)
		}
	})

	t.Run("explicit path loads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "work.yaml")
		yaml := "style: slate\nworkers: 2\n"
		if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		flags := &convertFlags{common: commonFlags{config: path}}
		cfg, err := loadConfigFile(flags, &envConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Style != "slate" {
			t.Errorf("Style = %q, want %q", cfg.Style, "slate")
		}
		if cfg.Workers != 2 {
			t.Errorf("Workers = %d, want 2", cfg.Workers)
		}
	})

	t.Run("env config path is the fallback", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "env.yaml")
		if err := os.WriteFile(path, []byte("title: From Env\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		cfg, err := loadConfigFile(&convertFlags{}, &envConfig{ConfigPath: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Title != "From Env" {
			t.Errorf("Title = %q, want %q", cfg.Title, "From Env")
		}
	})

	t.Run("flag beats env config path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		flagPath := filepath.Join(dir, "flag.yaml")
		envPath := filepath.Join(dir, "env.yaml")
		if err := os.WriteFile(flagPath, []byte("title: From Flag\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if err := os.WriteFile(envPath, []byte("title: From Env\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		flags := &convertFlags{common: commonFlags{config: flagPath}}
		cfg, err := loadConfigFile(flags, &envConfig{ConfigPath: envPath})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Title != "From Flag" {
			t.Errorf("Title = %q, want %q", cfg.Title, "From Flag")
		}
	})

	t.Run("missing config carries searched paths hint", func(t *testing.T) {
		t.Parallel()

		flags := &convertFlags{common: commonFlags{config: "does-not-exist"}}
		_, err := loadConfigFile(flags, &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error should carry a hint, got: %v", err)
		}
		if !strings.Contains(err.Error(), "does-not-exist.yaml") {
			t.Errorf("hint should list searched paths, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert - End-to-end conversion through the CLI layer
// ---------------------------------------------------------------------------

func TestRunConvert(t *testing.T) {
	t.Parallel()

	writePlan := func(t *testing.T, dir, name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(testPlan), 0644); err != nil {
			t.Fatalf("failed to write plan: %v", err)
		}
		return path
	}

	run := func(inputs []string, flags *convertFlags) (string, string, error) {
		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}
		err := runConvert(context.Background(), inputs, flags, env)
		return stdout.String(), stderr.String(), err
	}

	t.Run("single file writes page next to source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		stdout, _, err := run([]string{input}, &convertFlags{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := filepath.Join(dir, "week09.html")
		content, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("output page not written: %v", err)
		}
		if !bytes.Contains(content, []byte("Week 9 Meal Plan")) {
			t.Error("page should contain the plan title")
		}
		if !strings.Contains(stdout, "Meal plan saved to") {
			t.Errorf("stdout should report the saved page, got %q", stdout)
		}
	})

	t.Run("explicit output file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")
		output := filepath.Join(dir, "rendered", "plan.html")

		flags := &convertFlags{output: output}
		if _, _, err := run([]string{input}, flags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(output); err != nil {
			t.Errorf("output page not written: %v", err)
		}
	})

	t.Run("week flags render day dates", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{plan: planFlags{year: 2026, isoWeek: 9}}
		if _, _, err := run([]string{input}, flags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(dir, "week09.html"))
		if err != nil {
			t.Fatalf("output page not written: %v", err)
		}
		if !bytes.Contains(content, []byte("Feb 23, 2026")) {
			t.Error("Monday of 2026 week 9 should render as Feb 23, 2026")
		}
	})

	t.Run("quiet suppresses success output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{common: commonFlags{quiet: true}}
		stdout, _, err := run([]string{input}, flags)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "" {
			t.Errorf("quiet run should print nothing, got %q", stdout)
		}
	})

	t.Run("verbose shows per-file details", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{common: commonFlags{verbose: true}}
		stdout, stderr, err := run([]string{input}, flags)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "2 cards") {
			t.Errorf("verbose output should report card count, got %q", stdout)
		}
		if !strings.Contains(stderr, "Pool size:") {
			t.Errorf("verbose run should report pool size, got %q", stderr)
		}
	})

	t.Run("directory batch prints summary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePlan(t, dir, "week09.md")
		writePlan(t, dir, "week10.md")

		stdout, _, err := run([]string{dir}, &convertFlags{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "2 succeeded, 0 failed") {
			t.Errorf("batch run should print summary, got %q", stdout)
		}
	})

	t.Run("config file title is used as fallback", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "week09.md")
		// No heading, so the configured title applies.
		if err := os.WriteFile(input, []byte("## Monday\n\n### Dinner\n- Soup\n"), 0644); err != nil {
			t.Fatalf("failed to write plan: %v", err)
		}
		cfgPath := filepath.Join(dir, "family.yaml")
		if err := os.WriteFile(cfgPath, []byte("title: Family Menu\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		flags := &convertFlags{common: commonFlags{config: cfgPath}}
		if _, _, err := run([]string{input}, flags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(dir, "week09.html"))
		if err != nil {
			t.Fatalf("output page not written: %v", err)
		}
		if !bytes.Contains(content, []byte("Family Menu")) {
			t.Error("page should use the configured fallback title")
		}
	})

	t.Run("no inputs returns ErrNoInput", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(nil, &convertFlags{})
		if !errors.Is(err, ErrNoInput) {
			t.Fatalf("error = %v, want ErrNoInput", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error should carry a hint, got: %v", err)
		}
	})

	t.Run("one-sided week flags fail", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{plan: planFlags{year: 2026}}
		_, _, err := run([]string{input}, flags)
		if !errors.Is(err, ErrWeekFlagPair) {
			t.Errorf("error = %v, want ErrWeekFlagPair", err)
		}
	})

	t.Run("unknown style fails once with available names", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{assets: assetFlags{style: "nope"}}
		_, _, err := run([]string{input}, flags)
		if !errors.Is(err, meal2html.ErrStyleNotFound) {
			t.Fatalf("error = %v, want ErrStyleNotFound", err)
		}
		if !strings.Contains(err.Error(), "available:") {
			t.Errorf("error should list available styles, got: %v", err)
		}
	})

	t.Run("invalid date format surfaces before conversion", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{plan: planFlags{dateFormat: "[Week YYYY"}}
		_, _, err := run([]string{input}, flags)
		if !errors.Is(err, meal2html.ErrInvalidDateFormat) {
			t.Errorf("error = %v, want ErrInvalidDateFormat", err)
		}
	})

	t.Run("batch into a single output file fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePlan(t, dir, "week09.md")
		writePlan(t, dir, "week10.md")

		flags := &convertFlags{output: filepath.Join(dir, "plan.html")}
		_, _, err := run([]string{dir}, flags)
		if !errors.Is(err, ErrOutputConflict) {
			t.Errorf("error = %v, want ErrOutputConflict", err)
		}
	})

	t.Run("negative workers fail validation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		flags := &convertFlags{workers: -1}
		_, _, err := run([]string{input}, flags)
		if !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("error = %v, want ErrInvalidWorkerCount", err)
		}
	})

	t.Run("extra CSS is appended to the page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePlan(t, dir, "week09.md")

		marker := ".meal-card { outline: 2px dashed teal; }"
		flags := &convertFlags{assets: assetFlags{css: marker}}
		if _, _, err := run([]string{input}, flags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(dir, "week09.html"))
		if err != nil {
			t.Fatalf("output page not written: %v", err)
		}
		if !bytes.Contains(content, []byte("outline: 2px dashed teal")) {
			t.Error("page should contain the extra CSS")
		}
	})
}
