package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: meal2html [flags] <input.md|dir> [more inputs...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert weekly meal plan markdown into a styled HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Meal plan file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>      Output file (single input) or directory (batch)")
	fmt.Fprintln(w, "  -c, --config <name>      Config file name or path")
	fmt.Fprintln(w, "      --workers <n>        Parallel conversions for batch mode (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Plan:")
	fmt.Fprintln(w, "  -t, --title <s>          Fallback page title when the plan has no # heading")
	fmt.Fprintln(w, "  -y, --year <n>           ISO year for day dates (requires --iso-week)")
	fmt.Fprintln(w, "  -w, --iso-week <n>       ISO week 1-53 for day dates (requires --year)")
	fmt.Fprintln(w, "      --date-format <s>    Date display format")
	fmt.Fprintln(w, "                           Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                           Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                           Use [text] to escape literals: [Week of] MMM D")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <s>          Style name, .css file path, or literal CSS")
	fmt.Fprintln(w, "      --css <s>            Extra CSS appended after the style (path or literal)")
	fmt.Fprintln(w, "      --templates <name>   Template set name")
	fmt.Fprintln(w, "      --asset-path <dir>   Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show per-file details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --version            Print version and exit")
	fmt.Fprintln(w, "  -h, --help               Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  completion <shell>       Generate shell completion script")
	fmt.Fprintln(w, "  help [command]           Show help for a command")
	fmt.Fprintln(w, "  version                  Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MEAL2HTML_CONFIG, MEAL2HTML_STYLE, MEAL2HTML_INPUT_DIR, MEAL2HTML_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MEAL2HTML_TITLE, MEAL2HTML_DATE_FORMAT, MEAL2HTML_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a subcommand.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: meal2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: meal2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
