//go:build windows

package pathlist

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/windows"
)

// SystemEnumerator returns the host directory enumerator.
//
// The pattern is handed to FindFirstFile as is, so "dir\*" lists dir.
func SystemEnumerator() Enumerator { return findEnumerator{} }

type findEnumerator struct{}

func (findEnumerator) Open(pattern string) (DirIterator, error) {
	p, err := windows.UTF16PtrFromString(pattern)
	if err != nil {
		return nil, err
	}

	it := &findIterator{}
	h, err := windows.FindFirstFile(p, &it.data)
	if err != nil {
		return nil, fmt.Errorf("FindFirstFile %s: %w", pattern, err)
	}
	it.handle = h
	it.pending = true

	return it, nil
}

type findIterator struct {
	handle  windows.Handle
	data    windows.Win32finddata
	pending bool // data holds an entry not yet returned
	eof     bool
}

func (it *findIterator) Next() (Entry, error) {
	if it.eof {
		return Entry{}, io.EOF
	}

	if !it.pending {
		err := windows.FindNextFile(it.handle, &it.data)
		if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
			it.eof = true
			return Entry{}, io.EOF
		}
		if err != nil {
			return Entry{}, fmt.Errorf("FindNextFile: %w", err)
		}
	}
	it.pending = false

	return Entry{
		Name:  windows.UTF16ToString(it.data.FileName[:]),
		IsDir: isDir(it.data.FileAttributes),
	}, nil
}

// isDir reports plain directories. Reparse points (symlinks, junctions)
// are not descended into.
func isDir(attrs uint32) bool {
	return attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 && attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT == 0
}

func (it *findIterator) Close() error {
	if it.handle == 0 {
		return nil
	}

	err := windows.FindClose(it.handle)
	it.handle = 0
	if err != nil {
		return fmt.Errorf("FindClose: %w", err)
	}

	return nil
}
