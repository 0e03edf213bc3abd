package vmarena

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The returned pointer is valid as long as the arena hasn't been released.
//
// T must not contain pointers into the Go heap: the garbage collector does
// not see the arena's memory. Pointers to other arena values are fine.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}

	p, err := a.Allocate(size)
	if err != nil {
		return nil, err
	}

	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p), nil
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the
// arena. The same restriction on T as for Alloc applies.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n <= 0 || elemSize == 0 {
		return nil, ErrInvalidSize
	}
	if n > a.Reserved()/elemSize {
		return nil, ErrOutOfReservedSpace
	}

	total := elemSize * n
	p, err := a.Allocate(total)
	if err != nil {
		return nil, err
	}

	clear(unsafe.Slice((*byte)(p), total))
	return unsafe.Slice((*T)(p), n), nil
}

// CopyBytes allocates len(src) bytes and copies src into them.
func (a *Arena) CopyBytes(src []byte) ([]byte, error) {
	b, err := a.AllocBytes(len(src))
	if err != nil {
		return nil, err
	}
	copy(b, src)
	return b, nil
}

// PtrAndKeepAlive returns t and keeps the arena reachable until this call.
// This is useful when the only remaining reference to the arena would
// otherwise die before t is last used.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
