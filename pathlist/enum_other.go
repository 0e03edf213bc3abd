//go:build !linux && !windows

package pathlist

import (
	"io"
	"io/fs"
	"os"
)

const readDirBatchSize = 256

// SystemEnumerator returns the host directory enumerator.
//
// This backend reads entries in batches with (*os.File).ReadDir, which
// keeps the directory's own order.
func SystemEnumerator() Enumerator { return readDirEnumerator{} }

type readDirEnumerator struct{}

func (readDirEnumerator) Open(pattern string) (DirIterator, error) {
	f, err := os.Open(patternDir(pattern))
	if err != nil {
		return nil, err
	}
	return &readDirIterator{f: f}, nil
}

type readDirIterator struct {
	f       *os.File
	entries []fs.DirEntry
	eof     bool
}

func (it *readDirIterator) Next() (Entry, error) {
	for len(it.entries) == 0 {
		if it.eof {
			return Entry{}, io.EOF
		}

		entries, err := it.f.ReadDir(readDirBatchSize)
		if len(entries) > 0 {
			it.entries = entries
			continue
		}
		if err != nil && err != io.EOF {
			return Entry{}, err
		}
		it.eof = true
	}

	e := it.entries[0]
	it.entries = it.entries[1:]

	// Type() does not follow symlinks, so a link to a directory is not one.
	return Entry{Name: e.Name(), IsDir: e.Type().IsDir()}, nil
}

func (it *readDirIterator) Close() error {
	return it.f.Close()
}
