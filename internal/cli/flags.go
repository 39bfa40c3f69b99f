package cli

import (
	"flag"

	"github.com/xonecas/autotyper/internal/constants"
)

// Flags holds parsed command-line flags. Positional arguments before a
// literal "--" are the tokens to expand and type, in order; arguments
// after it are raw text reachable only through <N> placeholders. Args is
// the placeholder pool: the tokens followed by the raw arguments, so
// indexes match the visible argument positions.
type Flags struct {
	ShowHelp    bool
	ShowVersion bool
	ConfigPath  string
	Debug       bool
	Delay       int // milliseconds; -1 means not set
	Typer       string
	DryRun      bool
	List        bool
	ListFull    bool
	Tokens      []string
	Args        []string
}

// ParseFlags parses command-line flags and returns the result.
// This only parses; the caller handles ShowHelp and ShowVersion.
func ParseFlags() *Flags {
	var f Flags

	flag.BoolVar(&f.ShowHelp, "help", false, "Show help and exit")
	flag.BoolVar(&f.ShowHelp, "h", false, "Show help and exit (shorthand)")
	flag.BoolVar(&f.ShowVersion, "version", false, "Show version and exit")
	flag.BoolVar(&f.ShowVersion, "v", false, "Show version and exit (shorthand)")
	flag.StringVar(&f.ConfigPath, "config", "", "Path to definitions file")
	flag.StringVar(&f.ConfigPath, "c", "", "Path to definitions file (shorthand)")
	flag.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&f.Delay, "delay", -1, "Delay between keystrokes in milliseconds")
	flag.IntVar(&f.Delay, "d", -1, "Delay between keystrokes in milliseconds (shorthand)")
	flag.StringVar(&f.Typer, "typer", constants.DefaultTyper, "Keystroke backend (xdotool, wtype, print)")
	flag.StringVar(&f.Typer, "t", constants.DefaultTyper, "Keystroke backend (shorthand)")
	flag.BoolVar(&f.DryRun, "dry-run", false, "Print expansions to stdout instead of typing")
	flag.BoolVar(&f.DryRun, "n", false, "Print expansions to stdout (shorthand)")
	flag.BoolVar(&f.List, "list", false, "List all defined names and exit")
	flag.BoolVar(&f.List, "l", false, "List all defined names and exit (shorthand)")
	flag.BoolVar(&f.ListFull, "list-full", false, "List all defined names with their expansion and exit")
	flag.BoolVar(&f.ListFull, "L", false, "List names with expansion and exit (shorthand)")

	// Disable default help behavior - caller will handle it
	flag.Usage = func() {}

	flag.Parse()

	f.Tokens, f.Args = splitArgs(flag.Args())
	return &f
}

// splitArgs separates positional arguments at the first "--". Everything
// before it is a token to expand; the placeholder pool is the full list
// with the separator removed, so <N> indexes are stable whether or not
// a "--" is present.
func splitArgs(args []string) (tokens, pool []string) {
	for i, arg := range args {
		if arg == "--" {
			pool = append(append([]string(nil), args[:i]...), args[i+1:]...)
			return args[:i], pool
		}
	}
	return args, args
}
