package main

import (
	"fmt"
	"os"
	"strings"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	handled, code := dispatchSubcommand(os.Args[1:])
	if handled {
		os.Exit(code)
	}
	printHelp()
}

func dispatchSubcommand(args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "--version", "-v", "version":
		printVersion()
		return true, 0
	case "--help", "-h", "help":
		printHelp()
		return true, 0
	case "id":
		return true, runCommand(runIDCommand, args[1:])
	case "list":
		return true, runCommand(runListCommand, args[1:])
	case "gen":
		return true, runCommand(runGenCommand, args[1:])
	case "check":
		return true, runCommand(runCheckCommand, args[1:])
	case "watch":
		return true, runCommand(runWatchCommand, args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(os.Stderr, "Error: unknown flag: %s\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", args[0])
		}
		fmt.Fprintln(os.Stderr, "Run 'pinpoint --help' for usage.")
		return true, 1
	}
}

func runCommand(handler func([]string) error, args []string) int {
	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeForError(err)
	}
	return 0
}

func printVersion() {
	fmt.Printf("pinpoint %s (%s, built %s)\n", version, commit, buildDate)
}

func printHelp() {
	fmt.Print(`pinpoint - deterministic test locators for UI components

Usage:
  pinpoint <command> [flags]

Commands:
  id       Build one locator identifier from segments
  list     List every locator a manifest derives
  gen      Generate the Go constants (and optional JSON) file
  check    Verify generated files are up to date (exit 1 when stale)
  watch    Regenerate whenever the manifest changes
  version  Print version information
  help     Show this help

Common flags:
  --config PATH     Tool config file (default .pinpoint.yaml)
  --manifest PATH   Component manifest (default pinpoint.yaml)

Run 'pinpoint <command> --help' for command flags.
`)
}
