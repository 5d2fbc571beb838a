package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across command surfaces.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// planFlags holds meal plan content flags.
type planFlags struct {
	title      string
	year       int
	isoWeek    int
	dateFormat string
}

// assetFlags holds styling and template flags.
type assetFlags struct {
	style     string // Name, .css path, or literal CSS
	css       string // Extra CSS appended after the style
	templates string // Template set name
	assetPath string // Override asset directory
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common  commonFlags
	plan    planFlags
	assets  assetFlags
	output  string
	workers int
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details")
}

// addPlanFlags adds meal plan content flags to a FlagSet.
func addPlanFlags(fs *flag.FlagSet, f *planFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "fallback page title when the plan has no # heading")
	fs.IntVarP(&f.year, "year", "y", 0, "ISO year for day dates (requires --iso-week)")
	fs.IntVarP(&f.isoWeek, "iso-week", "w", 0, "ISO week 1-53 for day dates (requires --year)")
	fs.StringVar(&f.dateFormat, "date-format", "", "date display format: preset or token pattern")
}

// addAssetFlags adds styling and template flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.style, "style", "s", "", "style name, .css file path, or literal CSS")
	fs.StringVar(&f.css, "css", "", "extra CSS appended after the style (path or literal)")
	fs.StringVar(&f.templates, "templates", "", "template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newConvertFlagSet registers all conversion flags on a fresh FlagSet.
// Shared by flag parsing and completion generation so the two never drift.
func newConvertFlagSet() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("meal2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVar(&f.workers, "workers", 0, "parallel conversions for batch mode (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addPlanFlags(fs, &f.plan)
	addAssetFlags(fs, &f.assets)

	return fs, f
}

// parseConvertFlags parses conversion flags and returns positional args.
// With ContinueOnError the usage hook only fires for -h/--help, so help
// text goes to stdout while parse errors are reported by the caller.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs, f := newConvertFlagSet()
	fs.Usage = func() { printUsage(os.Stdout) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
