// SPDX-License-Identifier: MIT

// Command roughsurf synthesizes random rough surfaces with Gaussian
// correlation and works with the results.
//
// Usage:
//
//	roughsurf [-config settings.json] [-log-level info] <command> [flags]
//
// Commands:
//
//	generate  synthesize one surface from flags
//	batch     synthesize every parameter set of a CSV file
//	encode    quantize token surfaces into symbol strings
//	render    draw token surfaces as PNG heat maps or isometric meshes
//	compare   pairwise DTW distances between token surfaces
//	serve     WebSocket synthesis service
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/katalvlaran/roughsurf/config"
	"github.com/katalvlaran/roughsurf/surface"
)

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage")

// app carries what every command needs.
type app struct {
	settings config.Settings
	logger   *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
}

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"generate": {"synthesize one surface from flags", runGenerate},
	"batch":    {"synthesize every parameter set of a CSV file", runBatch},
	"encode":   {"quantize token surfaces into symbol strings", runEncode},
	"render":   {"draw token surfaces as PNG images", runRender},
	"compare":  {"pairwise DTW distances between token surfaces", runCompare},
	"serve":    {"WebSocket synthesis service", runServe},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "roughsurf:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: roughsurf [global flags] <command> [flags]")
	fmt.Fprintln(w, "\nglobal flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].summary)
	}
}

// run parses global flags, loads settings, installs the logger and
// dispatches to a command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("roughsurf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", config.DefaultPath, "settings file (missing file = defaults)")
	logLevel := fs.String("log-level", "", "override log level: debug|info|warn|error")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		settings.Log.Level = *logLevel
		if err = settings.Validate(); err != nil {
			return fmt.Errorf("%w: -log-level: %w", errUsage, err)
		}
	}
	logger, err := settings.NewLogger(stderr)
	if err != nil {
		return err
	}
	surface.SetLogger(logger)
	defer surface.SetLogger(nil)

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", errUsage)
	}
	name := strings.ToLower(fs.Arg(0))
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, fs.Arg(0))
	}
	a := &app{settings: settings, logger: logger.With(slog.String("cmd", name)), stdout: stdout, stderr: stderr}

	return cmd.run(ctx, a, fs.Args()[1:])
}

// newFlagSet returns a per-command flag set writing to the app's stderr.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("roughsurf "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}

// output opens path for writing; "" and "-" mean stdout.
func (a *app) output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// writeTo runs write against path and closes it, keeping the first error.
func (a *app) writeTo(path string, write func(io.Writer) error) (err error) {
	w, closeFn, err := a.output(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	return write(w)
}

// input opens path for reading; "" and "-" mean stdin.
func input(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}
