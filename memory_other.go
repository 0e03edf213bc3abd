//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package vmarena

// SystemMemory returns HeapMemory on platforms without a reserve/commit
// primitive.
func SystemMemory() Memory { return HeapMemory{} }
