package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches subcommands, parses flags, and runs the conversion.
// Returns the process exit code.
func realMain(args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "completion":
			if err := runCompletion(args[1:], env); err != nil {
				fmt.Fprintln(env.Stderr, err)
				return exitCodeFor(err)
			}
			return ExitSuccess
		case "help":
			runHelp(args[1:], env)
			return ExitSuccess
		case "version":
			fmt.Fprintf(env.Stdout, "meal2html %s\n", Version)
			return ExitSuccess
		}
	}

	flags, inputs, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			// Usage already printed by the FlagSet hook
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'meal2html --help' for usage.")
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "meal2html %s\n", Version)
		return ExitSuccess
	}

	configureMaxprocs(flags.common.verbose, env.Stderr)
	warnUnknownEnvVars(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, inputs, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// configureMaxprocs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env var is
// invalid, in which case Go runtime defaults apply and the program
// continues safely.
func configureMaxprocs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}
