package vmarena

import (
	"fmt"
	"math"
	"os"
	"unsafe"
)

// Memory is the host's reserve/commit virtual memory primitive.
//
// Reserve returns a region of exactly size bytes whose contents may not be
// touched until committed. Commit backs b, which is always a prefix of a
// region returned by Reserve, with readable and writable memory. Committing
// an already committed prefix again must succeed. Release gives the whole
// region back; it is only called with the exact slice Reserve returned.
type Memory interface {
	Reserve(size int) ([]byte, error)
	Commit(b []byte) error
	Release(region []byte) error
	PageSize() int
}

// HeapMemory is a Memory backed by the Go heap.
//
// Reserve allocates the whole region at once, so nothing is saved by
// committing lazily and Commit does nothing. It is the fallback on
// platforms without a mapping primitive and is handy in tests.
//
// The Go heap only guarantees 8-byte alignment for byte slices, so Reserve
// over-allocates and returns a region starting on an Alignment boundary.
type HeapMemory struct{}

func (HeapMemory) Reserve(size int) ([]byte, error) {
	if size <= 0 || size > math.MaxInt-Alignment {
		return nil, fmt.Errorf("reserve %d bytes: invalid size", size)
	}

	buf := make([]byte, size+Alignment-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := int(-base & uintptr(Alignment-1))

	return buf[off : off+size : off+size], nil
}

func (HeapMemory) Commit([]byte) error { return nil }

func (HeapMemory) Release([]byte) error { return nil }

func (HeapMemory) PageSize() int { return os.Getpagesize() }
