package vmarena

import "log/slog"

// DefaultCommitPages is the default commit chunk, in pages.
const DefaultCommitPages = 100

// Option configures an Arena. Options are applied in order.
type Option func(*options)

type options struct {
	commitChunk int
	memory      Memory
	logger      *slog.Logger
}

// WithCommitChunk sets the minimum number of bytes committed each time
// an allocation crosses the committed frontier.
//
// The value is rounded up to the page size. Values <= 0 use
// DefaultCommitPages pages.
//
// Small chunks commit often and keep little memory idle. Large chunks
// commit rarely but leave up to one chunk of committed memory unused.
func WithCommitChunk(bytes int) Option {
	return func(o *options) {
		o.commitChunk = bytes
	}
}

// WithMemory sets the memory source. Defaults to SystemMemory().
func WithMemory(m Memory) Option {
	return func(o *options) {
		o.memory = m
	}
}

// WithLogger sets the logger used for commit and release events.
// Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.memory == nil {
		o.memory = SystemMemory()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	page := o.memory.PageSize()
	if o.commitChunk <= 0 {
		o.commitChunk = DefaultCommitPages * page
	}
	o.commitChunk = alignUp(o.commitChunk, page)

	return o
}
