// Command jsdce removes dead code from JavaScript files.
//
// Usage:
//
//	jsdce [flags] [file ...]
//
// Without file arguments the program is read from stdin and written to
// stdout. Several files are processed concurrently; their outputs are
// written back with -w or printed in argument order.
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
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/t14raptor/jsdce/generator"
	"github.com/t14raptor/jsdce/internal/config"
	"github.com/t14raptor/jsdce/internal/watch"
	"github.com/t14raptor/jsdce/parser"
	"github.com/t14raptor/jsdce/transform/deadcode"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "jsdce:", err)
		os.Exit(1)
	}
}

type flags struct {
	output      string
	write       bool
	watch       bool
	configPath  string
	noConfig    bool
	maxIter     int
	stats       bool
	verbose     bool
	showVersion bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("jsdce", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.output, "o", "", "output file (single input)")
	fs.BoolVar(&f.write, "w", false, "rewrite input files in place")
	fs.BoolVar(&f.watch, "watch", false, "watch input files and re-run on change")
	fs.StringVar(&f.configPath, "config", "", "explicit config file")
	fs.BoolVar(&f.noConfig, "no-config", false, "ignore config files")
	fs.IntVar(&f.maxIter, "max-iter", 0, "cap fixpoint iterations (0 = unbounded)")
	fs.BoolVar(&f.stats, "stats", false, "print a summary of the rewrites to stderr")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: jsdce [flags] [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, fs.Args(), set, nil
}

func loadConfig(f *flags) (*config.Config, error) {
	switch {
	case f.noConfig:
		return &config.Config{}, nil
	case f.configPath != "":
		return config.Load(f.configPath)
	}
	return config.Discover(".")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, files, set, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if f.showVersion {
		fmt.Fprintln(stdout, "jsdce", version)
		return nil
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Check(version); err != nil {
		return err
	}

	opts := cfg.ToOptions(deadcode.DefaultOptions())
	if set["max-iter"] {
		opts.MaxIterations = f.maxIter
	}
	if opts.MaxIterations < 0 {
		return errors.New("-max-iter must not be negative")
	}
	if !set["stats"] && cfg.Stats != nil {
		f.stats = *cfg.Stats
	}
	if !set["v"] && cfg.Verbose != nil {
		f.verbose = *cfg.Verbose
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if cfg.Path != "" {
		logger.Debug("using config", "path", cfg.Path)
	}

	switch {
	case f.output != "" && len(files) != 1:
		return errors.New("-o needs exactly one input file")
	case f.output != "" && f.write:
		return errors.New("-o and -w are mutually exclusive")
	case (f.write || f.watch) && len(files) == 0:
		return errors.New("-w and -watch need input files")
	}

	c := &cli{
		flags:   f,
		opts:    opts,
		log:     logger,
		stdout:  stdout,
		printer: message.NewPrinter(language.English),
		stderr:  stderr,
	}

	if len(files) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, stats, err := c.eliminate("<stdin>", string(src))
		if err != nil {
			return err
		}
		c.summary("<stdin>", stats)
		_, err = io.WriteString(stdout, out)
		return err
	}

	if err := c.processAll(files); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.watch(ctx, files)
}

type cli struct {
	flags   *flags
	opts    deadcode.Options
	log     *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
	printer *message.Printer
}

// eliminate parses src, removes its dead code and prints it back.
func (c *cli) eliminate(name, src string) (string, deadcode.Stats, error) {
	p, err := parser.ParseFile(src)
	if err != nil {
		return "", deadcode.Stats{}, fmt.Errorf("parse %s: %w", name, err)
	}
	opts := c.opts
	opts.Logger = c.log.With("file", name)
	stats := deadcode.Eliminate(p, opts)
	return generator.Generate(p), stats, nil
}

func (c *cli) summary(name string, stats deadcode.Stats) {
	if !c.flags.stats {
		return
	}
	c.printer.Fprintf(c.stderr, "%s: %d inlined, %d removed, %d folded, %d pruned, %d normalized in %d iterations\n",
		name, stats.Inlined, stats.DeclarationsRemoved, stats.ConditionsFolded,
		stats.StatementsPruned, stats.ConditionalsNormalized, stats.Iterations)
}

// processAll runs every file through the pass concurrently and writes the
// results once all of them succeeded.
func (c *cli) processAll(files []string) error {
	outputs := make([]string, len(files))
	stats := make([]deadcode.Stats, len(files))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			outputs[i], stats[i], err = c.eliminate(path, string(src))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total deadcode.Stats
	for i, path := range files {
		c.summary(path, stats[i])
		total.Add(stats[i])
	}
	if len(files) > 1 {
		c.summary("total", total)
	}

	switch {
	case c.flags.write:
		for i, path := range files {
			if err := writeFile(path, outputs[i]); err != nil {
				return err
			}
		}
	case c.flags.output != "":
		return writeFile(c.flags.output, outputs[0])
	default:
		_, err := io.WriteString(c.stdout, strings.Join(outputs, ""))
		return err
	}
	return nil
}

// watch re-processes a file whenever its content changes. A file that
// fails to parse is reported and watched further.
func (c *cli) watch(ctx context.Context, files []string) error {
	w, err := watch.New(files, c.log)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	c.log.Info("watching", "files", len(files))
	err = w.Run(ctx, func(path string) error {
		if err := c.processAll([]string{path}); err != nil {
			c.log.Error("processing failed", "file", path, "err", err)
			return nil
		}
		if c.flags.write {
			// Our own write is seen as a change, record its hash.
			if _, err := w.Changed(path); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
