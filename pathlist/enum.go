package pathlist

import (
	"io"
	"io/fs"
	"os"
	"strings"
)

// Entry is one directory entry as reported by an Enumerator.
type Entry struct {
	Name  string
	IsDir bool
}

// DirIterator yields the entries of one directory in host order.
// Next returns io.EOF once there are no more entries.
type DirIterator interface {
	Next() (Entry, error)
	Close() error
}

// Enumerator opens directories for listing.
//
// Open receives a match-all pattern: the directory path followed by a
// separator and "*". Implementations list the directory's direct children,
// which may include "." and "..".
type Enumerator interface {
	Open(pattern string) (DirIterator, error)
}

// patternDir strips the trailing separator and "*" from a match-all pattern.
func patternDir(pattern string) string {
	dir := strings.TrimSuffix(pattern, "*")
	if len(dir) > 1 {
		last := dir[len(dir)-1]
		if last == os.PathSeparator || last == '/' || last == '\\' {
			dir = dir[:len(dir)-1]
		}
	}
	if dir == "" {
		return "."
	}
	return dir
}

// FSEnumerator lists directories of an fs.FS. Paths are converted to
// slash-separated, cleaned fs paths, so it pairs with a "/" separator.
// Entries come back in the order fs.ReadDir returns them (sorted by name).
type FSEnumerator struct {
	FS fs.FS
}

func (e FSEnumerator) Open(pattern string) (DirIterator, error) {
	dir := strings.TrimPrefix(patternDir(pattern), "./")

	entries, err := fs.ReadDir(e.FS, dir)
	if err != nil {
		return nil, err
	}

	return &sliceIterator{entries: entries}, nil
}

type sliceIterator struct {
	entries []fs.DirEntry
	pos     int
}

func (it *sliceIterator) Next() (Entry, error) {
	if it.pos >= len(it.entries) {
		return Entry{}, io.EOF
	}

	e := it.entries[it.pos]
	it.pos++

	return Entry{Name: e.Name(), IsDir: e.IsDir()}, nil
}

func (it *sliceIterator) Close() error {
	it.entries = nil
	return nil
}
