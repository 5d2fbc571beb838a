package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-meal2html/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a first-position subcommand for completion.
type commandDef struct {
	Name string
	Desc string
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"style":       {Values: assets.StyleNames()},
	"templates":   {Values: assets.TemplateSetNames()},
	"date-format": {Values: []string{"iso", "european", "us", "long"}},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"css":    {FileGlob: "*.css"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// rootFlags returns the flag definitions for the conversion surface.
// Flags come from the real FlagSet so completion never drifts from parsing.
func rootFlags() []flagDef {
	fs, _ := newConvertFlagSet()
	return extractFlagsFromFlagSet(fs)
}

// subcommands lists the word-style commands accepted in the first position.
func subcommands() []commandDef {
	return []commandDef{
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "version", Desc: "Show version information"},
	}
}

// GenerateCompletion writes a shell completion script to w.
// Returns an error if the shell is unsupported or the write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: meal2html completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(meal2html completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(meal2html completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    meal2html completion fish > ~/.config/fish/completions/meal2html.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    meal2html completion powershell | Out-String | Invoke-Expression")
}

// bashCasePattern returns the case pattern matching a flag's spellings.
func bashCasePattern(f flagDef) string {
	if f.Short != "" {
		return fmt.Sprintf("-%s|--%s", f.Short, f.Long)
	}
	return "--" + f.Long
}

// bashExcludeGlob converts "*.yaml,*.yml" into a compgen -X exclusion
// pattern that keeps only matching files.
func bashExcludeGlob(fileGlob string) string {
	parts := strings.Split(fileGlob, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "!*.@(" + strings.Join(exts, "|") + ")"
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	flags := rootFlags()

	var flagWords []string
	for _, f := range flags {
		flagWords = append(flagWords, "--"+f.Long)
		if f.Short != "" {
			flagWords = append(flagWords, "-"+f.Short)
		}
	}

	var cmdWords []string
	for _, c := range subcommands() {
		cmdWords = append(cmdWords, c.Name)
	}

	fmt.Fprintln(w, "# bash completion for meal2html")
	fmt.Fprintln(w, "# Install: eval \"$(meal2html completion bash)\"")
	fmt.Fprintln(w, "_meal2html_completions() {")
	fmt.Fprintln(w, "    local cur prev")
	fmt.Fprintln(w, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # Subcommand arguments")
	fmt.Fprintln(w, "    if [[ ${COMP_WORDS[1]} == completion ]]; then")
	fmt.Fprintln(w, "        COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"${cur}\") )")
	fmt.Fprintln(w, "        return 0")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w, "    if [[ ${COMP_WORDS[1]} == help ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(cmdWords, " "))
	fmt.Fprintln(w, "        return 0")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # Flag value completion")
	fmt.Fprintln(w, "    case \"${prev}\" in")
	for _, f := range flags {
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(w, "        %s)\n", bashCasePattern(f))
			fmt.Fprintf(w, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
			fmt.Fprintln(w, "            return 0")
			fmt.Fprintln(w, "            ;;")
		case flagFile:
			fmt.Fprintf(w, "        %s)\n", bashCasePattern(f))
			fmt.Fprintf(w, "            COMPREPLY=( $(compgen -f -X '%s' -- \"${cur}\") $(compgen -d -- \"${cur}\") )\n", bashExcludeGlob(f.FileGlob))
			fmt.Fprintln(w, "            return 0")
			fmt.Fprintln(w, "            ;;")
		case flagDir:
			fmt.Fprintf(w, "        %s)\n", bashCasePattern(f))
			fmt.Fprintln(w, "            COMPREPLY=( $(compgen -d -- \"${cur}\") )")
			fmt.Fprintln(w, "            return 0")
			fmt.Fprintln(w, "            ;;")
		case flagString, flagInt:
			fmt.Fprintf(w, "        %s)\n", bashCasePattern(f))
			fmt.Fprintln(w, "            return 0")
			fmt.Fprintln(w, "            ;;")
		}
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # Flags")
	fmt.Fprintln(w, "    if [[ ${cur} == -* ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(flagWords, " "))
	fmt.Fprintln(w, "        return 0")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # Subcommands and meal plan files")
	fmt.Fprintln(w, "    if [[ ${COMP_CWORD} -eq 1 ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(cmdWords, " "))
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w, "    COMPREPLY+=( $(compgen -f -X '!*.@(md|markdown)' -- \"${cur}\") $(compgen -d -- \"${cur}\") )")
	fmt.Fprintln(w, "    return 0")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "complete -F _meal2html_completions meal2html")
	return nil
}

// zshGlob converts "*.yaml,*.yml" into a zsh _files glob.
func zshGlob(fileGlob string) string {
	parts := strings.Split(fileGlob, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshArgSpec renders one _arguments optspec for a flag.
func zshArgSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagEnum:
		action = "(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = `_files -g "` + zshGlob(f.FileGlob) + `"`
	case flagDir:
		action = "_files -/"
	}

	var value string
	if f.Type != flagBool {
		value = ":" + f.Long + ":" + action
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, value)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, value)
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	fmt.Fprintln(w, "#compdef meal2html")
	fmt.Fprintln(w, "# zsh completion for meal2html")
	fmt.Fprintln(w, "# Install: eval \"$(meal2html completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_meal2html() {")
	fmt.Fprintln(w, "    local -a subcommands")
	fmt.Fprintln(w, "    subcommands=(")
	for _, c := range subcommands() {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case ${words[2]} in")
	fmt.Fprintln(w, "        completion)")
	fmt.Fprintln(w, "            _arguments '2:shell:(bash zsh fish powershell)'")
	fmt.Fprintln(w, "            return")
	fmt.Fprintln(w, "            ;;")
	fmt.Fprintln(w, "        help)")
	fmt.Fprintln(w, "            _arguments '2:command:(completion help version)'")
	fmt.Fprintln(w, "            return")
	fmt.Fprintln(w, "            ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "        _describe -t commands 'meal2html command' subcommands")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    _arguments -s \\")
	for _, f := range rootFlags() {
		fmt.Fprintf(w, "        %s \\\n", zshArgSpec(f))
	}
	fmt.Fprintln(w, "        '*:meal plan:_files -g \"*.(md|markdown)\"'")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_meal2html \"$@\"")
	return nil
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	fmt.Fprintln(w, "# fish completion for meal2html")
	fmt.Fprintln(w, "# Install: meal2html completion fish > ~/.config/fish/completions/meal2html.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "function __fish_meal2html_needs_command")
	fmt.Fprintln(w, "    set -l cmd (commandline -opc)")
	fmt.Fprintln(w, "    test (count $cmd) -eq 1")
	fmt.Fprintln(w, "end")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "function __fish_meal2html_using_command")
	fmt.Fprintln(w, "    set -l cmd (commandline -opc)")
	fmt.Fprintln(w, "    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]")
	fmt.Fprintln(w, "end")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Subcommands")
	for _, c := range subcommands() {
		fmt.Fprintf(w, "complete -c meal2html -n __fish_meal2html_needs_command -a %s -d '%s'\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Shells for the completion command")
	fmt.Fprintln(w, "complete -c meal2html -n '__fish_meal2html_using_command completion' -x -a 'bash zsh fish powershell'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Conversion flags")
	for _, f := range rootFlags() {
		fmt.Fprint(w, "complete -c meal2html")
		if f.Short != "" {
			fmt.Fprintf(w, " -s %s", f.Short)
		}
		fmt.Fprintf(w, " -l %s", f.Long)
		switch f.Type {
		case flagBool:
			// no argument
		case flagEnum:
			fmt.Fprintf(w, " -x -a '%s'", strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprint(w, " -r")
		case flagDir:
			fmt.Fprint(w, " -x -a '(__fish_complete_directories)'")
		default:
			fmt.Fprint(w, " -x")
		}
		fmt.Fprintf(w, " -d '%s'\n", f.Desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Meal plan files")
	fmt.Fprintln(w, "complete -c meal2html -a '(__fish_complete_suffix .md)'")
	fmt.Fprintln(w, "complete -c meal2html -a '(__fish_complete_suffix .markdown)'")
	return nil
}

// generatePowerShell writes the PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	fmt.Fprintln(w, "# PowerShell completion for meal2html")
	fmt.Fprintln(w, "# Install: meal2html completion powershell | Out-String | Invoke-Expression")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Register-ArgumentCompleter -Native -CommandName meal2html -ScriptBlock {")
	fmt.Fprintln(w, "    param($wordToComplete, $commandAst, $cursorPosition)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    $completions = @(")
	for _, c := range subcommands() {
		fmt.Fprintf(w, "        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n",
			c.Name, c.Name, psEscape(c.Desc))
	}
	for _, f := range rootFlags() {
		long := "--" + f.Long
		fmt.Fprintf(w, "        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')\n",
			long, long, psEscape(f.Desc))
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    $completions | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }")
	fmt.Fprintln(w, "}")
	return nil
}

// psEscape doubles single quotes for PowerShell string literals.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
