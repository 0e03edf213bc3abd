package pathlist

import (
	"unsafe"

	"github.com/pavanmanishd/vmarena"
)

// Node is one discovered path, stored in an arena.
//
// A node is a fixed header immediately followed, in the same allocation,
// by the path bytes and a NUL terminator:
//
//	┌──────────┬──────────┬───┬───┬───┬───┬────┐
//	│ length   │ next     │ . │ / │ a │ b │ \0 │
//	└──────────┴──────────┴───┴───┴───┴───┴────┘
//	 headerSize            length + 1 bytes
//
// Nodes never move and are never freed individually. next is a link, not
// an owner: the arena owns every node.
type Node struct {
	length uintptr
	next   *Node
}

const headerSize = int(unsafe.Sizeof(Node{}))

// NewNode allocates a node sized exactly for path and copies path into it.
func NewNode(a *vmarena.Arena, path []byte) (*Node, error) {
	size := headerSize + len(path) + 1

	p, err := a.Allocate(size)
	if err != nil {
		return nil, err
	}

	n := (*Node)(p)
	n.length = uintptr(len(path))
	n.next = nil

	payload := unsafe.Slice((*byte)(unsafe.Add(p, headerSize)), len(path)+1)
	copy(payload, path)
	payload[len(path)] = 0

	return n, nil
}

// Name returns the stored path. The string points into the arena and is
// valid until the arena is released.
func (n *Node) Name() string {
	return unsafe.String(n.payload(), n.length)
}

// Terminated returns the stored path including its NUL terminator.
// The slice points into the arena and must not be modified.
func (n *Node) Terminated() []byte {
	return unsafe.Slice(n.payload(), n.length+1)
}

// Len returns the length of the stored path, terminator excluded.
func (n *Node) Len() int {
	return int(n.length)
}

// Next returns the following node, or nil at the tail.
func (n *Node) Next() *Node {
	return n.next
}

func (n *Node) payload() *byte {
	return (*byte)(unsafe.Add(unsafe.Pointer(n), headerSize))
}
