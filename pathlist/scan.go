package pathlist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ScanError is reported when a directory cannot be listed.
type ScanError struct {
	// Op is the operation that failed: "open" or "readdir".
	Op string
	// Path is the directory, as stored in the list.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Option configures a Scanner. Options are applied in order.
type Option func(*options)

type options struct {
	enum    Enumerator
	sep     string
	onError func(*ScanError) error
	logger  *slog.Logger
}

// WithEnumerator sets the directory enumerator. Defaults to SystemEnumerator().
func WithEnumerator(e Enumerator) Option {
	return func(o *options) {
		o.enum = e
	}
}

// WithSeparator sets the separator placed between a directory and an entry
// name. Defaults to os.PathSeparator, which is also used when sep is empty.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.sep = sep
	}
}

// WithOnError sets the callback for directories that cannot be listed.
//
// Returning nil skips the directory's subtree and continues the scan;
// returning an error stops the scan with that error. Without a callback
// the scan skips the subtree, logs a warning, and returns every skipped
// directory's error joined together once it is done.
func WithOnError(fn func(*ScanError) error) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Scanner walks a directory tree and appends every path it finds to a List.
type Scanner struct {
	enum    Enumerator
	sep     string
	onError func(*ScanError) error
	logger  *slog.Logger
}

// NewScanner returns a Scanner configured by opts.
func NewScanner(opts ...Option) *Scanner {
	o := options{sep: string(os.PathSeparator)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.enum == nil {
		o.enum = SystemEnumerator()
	}
	if o.sep == "" {
		o.sep = string(os.PathSeparator)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Scanner{enum: o.enum, sep: o.sep, onError: o.onError, logger: o.logger}
}

type scanState struct {
	list    *List
	skipped []error
}

// Scan lists the tree under l.Root() and appends one node per entry, in
// pre-order: every directory is followed by its whole subtree before its
// next sibling. Siblings keep the enumerator's order. "." and ".." are
// never listed.
//
// It returns the number of nodes appended. ErrPathTooLong and arena
// errors stop the scan. Directories that cannot be listed are handled as
// described in WithOnError.
func (s *Scanner) Scan(l *List) (int, error) {
	st := &scanState{list: l}
	before := l.Len()

	err := s.scanDir(st, l.Root())
	count := l.Len() - before
	if err != nil {
		return count, err
	}

	s.logger.Debug("scan done", "root", l.Root(), "found", count, "skipped", len(st.skipped))

	return count, errors.Join(st.skipped...)
}

func (s *Scanner) scanDir(st *scanState, dir string) error {
	var pb Builder

	err := s.join(&pb, dir, "*")
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	it, err := s.enum.Open(pb.String())
	if err != nil {
		return s.skip(st, &ScanError{Op: "open", Path: dir, Err: err})
	}
	defer func() { _ = it.Close() }()

	for {
		e, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return s.skip(st, &ScanError{Op: "readdir", Path: dir, Err: err})
		}

		if e.Name == "." || e.Name == ".." {
			continue
		}

		pb.Reset()
		err = s.join(&pb, dir, e.Name)
		if err != nil {
			return fmt.Errorf("scan %s: %w", dir, err)
		}

		n, err := NewNode(st.list.Arena(), pb.Bytes())
		if err != nil {
			return fmt.Errorf("scan %s: %w", dir, err)
		}
		st.list.Append(n)

		if e.IsDir {
			// The node's copy of the path outlives pb's next reset.
			err = s.scanDir(st, n.Name())
			if err != nil {
				return err
			}
		}
	}
}

// join writes dir, a separator, and name into pb. No separator is added
// when dir already ends with one.
func (s *Scanner) join(pb *Builder, dir, name string) error {
	err := pb.Append(dir)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(dir, s.sep) {
		err = pb.Append(s.sep)
		if err != nil {
			return err
		}
	}

	return pb.Append(name)
}

func (s *Scanner) skip(st *scanState, e *ScanError) error {
	if s.onError != nil {
		return s.onError(e)
	}

	s.logger.Warn("skipping directory", "op", e.Op, "path", e.Path, "err", e.Err)
	st.skipped = append(st.skipped, e)

	return nil
}
