// Package pathlist walks a directory tree and records every path it finds
// in a singly-linked list whose nodes live in a vmarena.Arena.
package pathlist

import (
	"errors"
	"iter"
	"strings"

	"github.com/pavanmanishd/vmarena"
)

// ErrEmptyPath is returned by NewList for an empty root.
var ErrEmptyPath = errors.New("empty path")

// Appender links a node at the tail of a list.
type Appender interface {
	Append(n *Node)
}

// walkAppender finds the tail by following next links from the head on
// every call. Building a list of n nodes costs O(n²).
type walkAppender struct {
	head *Node
}

func (w *walkAppender) Append(n *Node) {
	tail := w.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
}

// trackAppender remembers the tail. Appending is O(1).
type trackAppender struct {
	tail *Node
}

func (t *trackAppender) Append(n *Node) {
	for t.tail.next != nil {
		t.tail = t.tail.next
	}
	t.tail.next = n
	t.tail = n
}

// ListOption configures a List.
type ListOption func(*listOptions)

type listOptions struct {
	trackTail bool
}

// WithTailTracking makes the list remember its tail instead of walking to
// it on every append. The resulting list is identical; only the cost of
// building it changes.
func WithTailTracking() ListOption {
	return func(o *listOptions) {
		o.trackTail = true
	}
}

// List is a singly-linked list of paths whose nodes live in an arena.
// The head is a sentinel node holding the root path.
type List struct {
	arena    *vmarena.Arena
	head     *Node
	appender Appender
	n        int
}

// NewList allocates the root node in a and returns a list holding only it.
func NewList(a *vmarena.Arena, root string, opts ...ListOption) (*List, error) {
	if root == "" {
		return nil, ErrEmptyPath
	}

	var o listOptions
	for _, opt := range opts {
		opt(&o)
	}

	head, err := NewNode(a, []byte(root))
	if err != nil {
		return nil, err
	}

	l := &List{arena: a, head: head, n: 1}
	if o.trackTail {
		l.appender = &trackAppender{tail: head}
	} else {
		l.appender = &walkAppender{head: head}
	}

	return l, nil
}

// Arena returns the arena the list's nodes live in.
func (l *List) Arena() *vmarena.Arena {
	return l.arena
}

// Head returns the root node.
func (l *List) Head() *Node {
	return l.head
}

// Root returns the root path.
func (l *List) Root() string {
	return l.head.Name()
}

// Len returns the number of nodes, root included.
func (l *List) Len() int {
	return l.n
}

// Append links n at the tail. n must be a fresh node from NewNode.
func (l *List) Append(n *Node) {
	l.appender.Append(n)
	l.n++
}

// All iterates over the nodes in link order, root first.
func (l *List) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Paths copies every path out of the arena, root first.
func (l *List) Paths() []string {
	paths := make([]string, 0, l.n)
	for n := range l.All() {
		paths = append(paths, strings.Clone(n.Name()))
	}
	return paths
}
