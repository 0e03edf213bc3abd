// Package vmarena implements a linear arena over reserved virtual memory.
// Typical usage: reserve generously once, allocate many small objects that
// all die together, then Release.
package vmarena

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Alignment is the alignment of every address returned by the arena
// (16 bytes on 64-bit platforms).
const Alignment = 2 * int(unsafe.Sizeof(uintptr(0)))

// Arena is a linear allocator over one reserved address range.
// Not goroutine-safe.
type Arena struct {
	mem    Memory
	region []byte // the whole reservation, nil after Release

	used      int // bytes handed out, from the start of region
	committed int // bytes backed by physical memory
	reserved  int

	commitChunk int
	pageSize    int

	allocs  int
	commits int

	logger *slog.Logger
}

// NewArena reserves reserveSize bytes of address space without committing
// any of it.
func NewArena(reserveSize int, opts ...Option) (*Arena, error) {
	o := applyOptions(opts)

	if reserveSize <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrReservationFailed, reserveSize)
	}

	region, err := o.memory.Reserve(reserveSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReservationFailed, err)
	}

	a := &Arena{
		mem:         o.memory,
		region:      region,
		reserved:    reserveSize,
		commitChunk: o.commitChunk,
		pageSize:    o.memory.PageSize(),
		logger:      o.logger,
	}
	a.logger.Debug("arena reserved", "reserved", reserveSize, "commit_chunk", a.commitChunk)

	return a, nil
}

// Allocate returns the address of a block of at least size bytes.
//
// The block starts at the current used offset and is aligned to Alignment.
// Blocks never move and stay valid until Release. Freshly committed memory
// is zero, but callers that need zeroed memory should use Alloc or
// AllocSlice.
//
// On failure the arena is left untouched.
func (a *Arena) Allocate(size int) (unsafe.Pointer, error) {
	if a.region == nil {
		return nil, ErrReleased
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if a.used >= a.reserved {
		return nil, ErrOutOfReservedSpace
	}

	// Checked before aligning so huge sizes cannot overflow.
	free := a.reserved - a.used
	if size > free {
		return nil, fmt.Errorf("%w: need %d bytes, %d left", ErrOutOfReservedSpace, size, free)
	}
	aligned := alignUp(size, Alignment)
	if aligned > free {
		return nil, fmt.Errorf("%w: need %d bytes, %d left", ErrOutOfReservedSpace, aligned, free)
	}

	if a.used+aligned > a.committed {
		err := a.commit(aligned)
		if err != nil {
			return nil, err
		}
	}

	p := unsafe.Pointer(&a.region[a.used])
	a.used += aligned
	a.allocs++

	return p, nil
}

// AllocBytes returns a []byte of length n pointing into the arena.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	p, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(p), n), nil
}

// commit grows the committed prefix so that aligned more bytes fit.
//
// The arena commits at least one commit chunk at a time, clamped to the
// reservation. The whole prefix [0, target) is committed, not just the
// new tail.
func (a *Arena) commit(aligned int) error {
	grow := max(alignUp(aligned, a.pageSize), a.commitChunk)
	target := min(a.committed+grow, a.reserved)

	err := a.mem.Commit(a.region[:target])
	if err != nil {
		return fmt.Errorf("%w: %d bytes: %w", ErrCommitFailed, target, err)
	}

	a.logger.Debug("arena commit", "from", a.committed, "to", target, "used", a.used)
	a.committed = target
	a.commits++

	return nil
}

// Release decommits and unreserves the whole region. Every pointer handed
// out by the arena becomes invalid. Calling Release again is a no-op.
//
// If the memory source fails to release the region, the arena is left as
// it was and Release may be retried.
func (a *Arena) Release() error {
	if a.region == nil {
		return nil
	}

	err := a.mem.Release(a.region)
	if err != nil {
		return fmt.Errorf("arena: release: %w", err)
	}

	a.region = nil
	a.used, a.committed = 0, 0

	a.logger.Debug("arena released", "reserved", a.reserved, "allocs", a.allocs, "commits", a.commits)

	return nil
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.region == nil
}

// alignUp rounds n up to a multiple of align, which must be a power of two.
func alignUp(n, align int) int {
	mask := align - 1
	return (n + mask) &^ mask
}
