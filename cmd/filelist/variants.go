package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pavanmanishd/vmarena"
	"github.com/pavanmanishd/vmarena/pathlist"
)

// env is what every variant needs to list a tree.
type env struct {
	cfg    *Config
	enum   pathlist.Enumerator
	sep    string
	logger *slog.Logger
}

// A variant lists cfg.Root and returns the number of entries found, the
// root excluded. start is called right before the listing begins so that
// setup stays out of the timing.
type variant struct {
	name string
	run  func(e *env, start func()) (int, error)
}

var variants = map[string]variant{
	"slice": {"Slice", runSlice},
	"heap":  {"Heap list", runHeap},
	"arena": {"Arena", runArena},
}

func runSlice(e *env, start func()) (int, error) {
	var paths []string

	start()
	err := walkTree(e, e.cfg.Root, func(p string) error {
		paths = append(paths, p)
		return nil
	})

	return len(paths), err
}

type heapNode struct {
	name string
	next *heapNode
}

func runHeap(e *env, start func()) (int, error) {
	first := &heapNode{name: e.cfg.Root}

	start()
	err := walkTree(e, e.cfg.Root, func(p string) error {
		tail := first
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = &heapNode{name: p}
		return nil
	})

	n := 0
	for h := first.next; h != nil; h = h.next {
		n++
	}

	return n, err
}

func runArena(e *env, start func()) (int, error) {
	var opts []vmarena.Option
	opts = append(opts, vmarena.WithLogger(e.logger))
	if e.cfg.CommitChunkKB > 0 {
		opts = append(opts, vmarena.WithCommitChunk(e.cfg.CommitChunkKB<<10))
	}

	a, err := vmarena.NewArena(e.cfg.ReserveMB<<20, opts...)
	if err != nil {
		return 0, err
	}
	defer func() { _ = a.Release() }()

	var listOpts []pathlist.ListOption
	if e.cfg.TrackTail {
		listOpts = append(listOpts, pathlist.WithTailTracking())
	}
	l, err := pathlist.NewList(a, e.cfg.Root, listOpts...)
	if err != nil {
		return 0, err
	}

	s := pathlist.NewScanner(
		pathlist.WithEnumerator(e.enum),
		pathlist.WithSeparator(e.sep),
		pathlist.WithLogger(e.logger),
		pathlist.WithOnError(func(se *pathlist.ScanError) error {
			e.logger.Warn("skipping directory", "op", se.Op, "path", se.Path, "err", se.Err)
			return nil
		}),
	)

	start()
	_, err = s.Scan(l)

	e.logger.Debug("arena after scan", "used", a.Used(), "committed", a.Committed(), "commits", a.Metrics().Commits)

	return l.Len() - 1, err
}

// walkTree repeats pathlist.Scanner's traversal on purpose so the slice
// and heap variants measure no arena code.
//
// It lists dir the same way pathlist.Scanner does, in pre-order,
// calling visit with every path. Paths longer than pathlist.MaxPath stop
// the walk; directories that cannot be listed are skipped.
func walkTree(e *env, dir string, visit func(string) error) error {
	var pb pathlist.Builder

	if err := joinPath(&pb, dir, e.sep, "*"); err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	it, err := e.enum.Open(pb.String())
	if err != nil {
		e.logger.Warn("skipping directory", "op", "open", "path", dir, "err", err)
		return nil
	}
	defer func() { _ = it.Close() }()

	for {
		ent, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			e.logger.Warn("skipping directory", "op", "readdir", "path", dir, "err", err)
			return nil
		}
		if ent.Name == "." || ent.Name == ".." {
			continue
		}

		pb.Reset()
		if err := joinPath(&pb, dir, e.sep, ent.Name); err != nil {
			return fmt.Errorf("walk %s: %w", dir, err)
		}

		p := pb.String()
		if err := visit(p); err != nil {
			return err
		}
		if ent.IsDir {
			if err := walkTree(e, p, visit); err != nil {
				return err
			}
		}
	}
}

func joinPath(pb *pathlist.Builder, dir, sep, name string) error {
	if err := pb.Append(dir); err != nil {
		return err
	}
	if !strings.HasSuffix(dir, sep) {
		if err := pb.Append(sep); err != nil {
			return err
		}
	}
	return pb.Append(name)
}
