package vmarena

// Used returns the number of bytes handed out, including alignment padding.
func (a *Arena) Used() int {
	return a.used
}

// Committed returns the number of bytes backed by physical memory.
func (a *Arena) Committed() int {
	return a.committed
}

// Reserved returns the size of the reserved range. It never changes.
func (a *Arena) Reserved() int {
	return a.reserved
}

// Available returns the number of bytes that can still be handed out.
// Returns 0 after Release.
func (a *Arena) Available() int {
	if a.region == nil {
		return 0
	}
	return a.reserved - a.used
}

// CommitChunk returns the minimum commit size in bytes.
func (a *Arena) CommitChunk() int {
	return a.commitChunk
}

// PageSize returns the page size of the arena's memory source.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Utilization returns the ratio of used to committed bytes (0.0 to 1.0).
// Returns 0.0 if nothing is committed.
func (a *Arena) Utilization() float64 {
	if a.committed == 0 {
		return 0
	}
	return float64(a.used) / float64(a.committed)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Used:        a.used,
		Committed:   a.committed,
		Reserved:    a.reserved,
		Allocations: a.allocs,
		Commits:     a.commits,
		CommitChunk: a.commitChunk,
		Waste:       a.committed - a.used,
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Used        int     // Bytes handed out
	Committed   int     // Bytes backed by physical memory
	Reserved    int     // Size of the reservation
	Allocations int     // Successful allocations
	Commits     int     // Successful commit calls
	CommitChunk int     // Minimum commit size
	Waste       int     // Committed but not yet used
	Utilization float64 // Used / Committed (0.0-1.0)
}
