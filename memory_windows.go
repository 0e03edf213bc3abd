//go:build windows

package vmarena

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SystemMemory returns the host's virtual memory source.
//
// Address space is reserved with VirtualAlloc(MEM_RESERVE) and committed
// with VirtualAlloc(MEM_COMMIT) over a prefix of the reservation.
func SystemMemory() Memory { return virtualMemory{} }

type virtualMemory struct{}

func (virtualMemory) Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("VirtualAlloc %d bytes: %w", size, windows.ERROR_INVALID_PARAMETER)
	}

	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("VirtualAlloc reserve %d bytes: %w", size, err)
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func (virtualMemory) Commit(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	_, err := windows.VirtualAlloc(base, uintptr(len(b)), windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return fmt.Errorf("VirtualAlloc commit %d bytes: %w", len(b), err)
	}

	return nil
}

func (virtualMemory) Release(region []byte) error {
	if len(region) == 0 {
		return nil
	}

	// MEM_RELEASE requires size 0 and decommits as part of the release.
	base := uintptr(unsafe.Pointer(unsafe.SliceData(region)))
	err := windows.VirtualFree(base, 0, windows.MEM_RELEASE)
	if err != nil {
		return fmt.Errorf("VirtualFree: %w", err)
	}

	return nil
}

func (virtualMemory) PageSize() int { return os.Getpagesize() }
