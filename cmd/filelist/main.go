// Command filelist lists a directory tree three ways (into a slice, into a
// linked list of heap nodes, and into a linked list inside a vmarena
// arena) and reports how long each took.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pavanmanishd/vmarena/pathlist"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "filelist: %v\n", err)
		return 2
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "filelist: %v\n", err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	e := &env{
		cfg:    cfg,
		enum:   pathlist.SystemEnumerator(),
		sep:    string(os.PathSeparator),
		logger: logger,
	}

	return runVariants(e, cfg.Variants, stdout)
}

func runVariants(e *env, names []string, stdout io.Writer) int {
	for _, name := range names {
		v := variants[name]

		var begin time.Time
		n, err := v.run(e, func() { begin = time.Now() })
		took := time.Since(begin)
		if err != nil {
			e.logger.Error("listing failed", "variant", name, "root", e.cfg.Root, "err", err)
			return 1
		}

		fmt.Fprintln(stdout, report(v.name, took, n))
	}
	return 0
}

func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("filelist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  = fs.String("config", "", "JSON config file; flags override its values")
		root        = fs.String("root", ".", "Directory to list")
		reserveMB   = fs.Int("reserve-mb", 1024, "Arena reservation in MiB")
		commitKB    = fs.Int("commit-chunk-kb", 0, "Arena commit chunk in KiB (0: 100 pages)")
		trackTail   = fs.Bool("track-tail", false, "Append to the arena list through a tracked tail")
		variantList = fs.String("variants", "slice,heap,arena", "Comma-separated variants to run")
		logLevel    = fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", *configPath, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.Root = *root
		case "reserve-mb":
			cfg.ReserveMB = *reserveMB
		case "commit-chunk-kb":
			cfg.CommitChunkKB = *commitKB
		case "track-tail":
			cfg.TrackTail = *trackTail
		case "variants":
			cfg.Variants = splitVariants(*variantList)
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, cfg.Validate()
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}
