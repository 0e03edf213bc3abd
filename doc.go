// Package vmarena implements a linear (bump-pointer) arena over a reserved
// virtual address range that commits physical pages on demand.
//
// # Overview
//
// An arena reserves one contiguous range of address space when it is
// created and never grows beyond it. Allocations are served by moving a
// single offset forward. Physical memory is committed lazily, in chunks,
// the first time an allocation crosses the committed frontier:
//
//	0                used        committed                reserved
//	├─────────────────┼───────────┼─────────────────────────┤
//	│ handed out      │ committed │ reserved, not backed    │
//
// The invariant used <= committed <= reserved holds at all times.
//
// # Basic Usage
//
//	a, err := vmarena.NewArena(1 << 30) // reserve 1 GiB of address space
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	buf, err := a.AllocBytes(1024)
//	p, err := vmarena.Alloc[MyStruct](a)
//
// # Commit Chunk
//
// Committing pages is a system call, so the arena commits at least
// [WithCommitChunk] bytes (100 pages by default) each time it runs out.
// Larger chunks mean fewer commits and more committed-but-unused memory.
// This is the most performance-sensitive setting of the arena.
//
// # Memory Sources
//
// On Linux, the BSDs and macOS the range is reserved with an anonymous
// PROT_NONE mapping and committed with mprotect. On Windows VirtualAlloc
// is used with MEM_RESERVE and MEM_COMMIT. Other platforms fall back to
// [HeapMemory]. Tests can inject their own [Memory] with [WithMemory].
//
// # Important Notes
//
//   - Memory is only valid until [Arena.Release] is called
//   - There is no individual deallocation and no reset
//   - The arena is not safe for concurrent use; guard it with a lock or
//     use one arena per goroutine
//   - The region is not scanned by the garbage collector, so values
//     stored in it must not hold pointers into the Go heap
//   - Every allocation is aligned to [Alignment]
package vmarena
