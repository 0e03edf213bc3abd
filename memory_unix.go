//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package vmarena

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SystemMemory returns the host's virtual memory source.
//
// Address space is reserved with an anonymous PROT_NONE mapping; commits
// flip a prefix of it to PROT_READ|PROT_WRITE. Pages are only backed by
// physical memory once touched.
func SystemMemory() Memory { return mmapMemory{} }

type mmapMemory struct{}

func (mmapMemory) Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, unix.EINVAL)
	}

	b, err := unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}

	return b, nil
}

func (mmapMemory) Commit(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	err := unix.Mprotect(b, unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		return fmt.Errorf("mprotect %d bytes: %w", len(b), err)
	}

	return nil
}

func (mmapMemory) Release(region []byte) error {
	if len(region) == 0 {
		return nil
	}

	err := unix.Munmap(region)
	if err != nil {
		return fmt.Errorf("munmap: %w", err)
	}

	return nil
}

func (mmapMemory) PageSize() int { return os.Getpagesize() }
