// Package main is the entry point for the xi editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/xi/internal/app"
	"github.com/dshills/xi/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, code, done := parseFlags(args, stderr)
	if done {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags parses the command line. When done is true the process
// should exit with code without starting the editor.
func parseFlags(args []string, stderr io.Writer) (opts app.Options, code int, done bool) {
	fs := flag.NewFlagSet("xi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion bool
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "xi - a tiny terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: xi [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Arrows            move (Shift selects, Ctrl jumps to line/file ends)\n")
		fmt.Fprintf(stderr, "  Alt+Left/Right    move by word\n")
		fmt.Fprintf(stderr, "  Alt+Up/Down       shift the current line\n")
		fmt.Fprintf(stderr, "  Ctrl+S            save\n")
		fmt.Fprintf(stderr, "  Ctrl+Q            quit\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showVersion {
		fmt.Fprintf(stderr, "xi %s\n", version)
		fmt.Fprintf(stderr, "Commit: %s\n", commit)
		fmt.Fprintf(stderr, "Built: %s\n", date)
		return opts, 0, true
	}

	if opts.LogLevel != "" {
		valid := false
		for _, level := range config.LogLevels {
			valid = valid || opts.LogLevel == level
		}
		if !valid {
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			return opts, 2, true
		}
	}

	opts.Files = fs.Args()
	return opts, 0, false
}
