//go:build linux

package pathlist

// Directory enumeration for Linux reads raw linux_dirent64 records with
// getdents64 and parses them in place. d_type is trusted when the
// filesystem fills it in; DT_UNKNOWN falls back to fstatat.

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// linux_dirent64 offsets (from linux/dirent.h):
//
//	struct linux_dirent64 {
//	    ino64_t        d_ino;    // 8 bytes  (offset 0)
//	    off64_t        d_off;    // 8 bytes  (offset 8)
//	    unsigned short d_reclen; // 2 bytes  (offset 16)
//	    unsigned char  d_type;   // 1 byte   (offset 18)
//	    char           d_name[]; // variable (offset 19)
//	};
const (
	direntReclenOffset = 16
	direntTypeOffset   = 18
	direntNameOffset   = 19
	direntMinSize      = direntNameOffset

	direntBufSize = 8 * 1024
)

var errInvalidDirent = errors.New("invalid dirent")

// SystemEnumerator returns the host directory enumerator.
func SystemEnumerator() Enumerator { return getdentsEnumerator{} }

type getdentsEnumerator struct{}

func (getdentsEnumerator) Open(pattern string) (DirIterator, error) {
	dir := patternDir(pattern)

	var (
		fd  int
		err error
	)
	for {
		fd, err = unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	return &getdentsIterator{fd: fd, buf: make([]byte, direntBufSize)}, nil
}

type getdentsIterator struct {
	fd   int
	buf  []byte
	data []byte // unparsed records left in buf
	eof  bool
}

func (it *getdentsIterator) Next() (Entry, error) {
	for {
		if len(it.data) == 0 {
			if it.eof {
				return Entry{}, io.EOF
			}
			err := it.fill()
			if err != nil {
				return Entry{}, err
			}
			continue
		}

		if len(it.data) < direntMinSize {
			return Entry{}, errInvalidDirent
		}

		reclen := int(binary.NativeEndian.Uint16(it.data[direntReclenOffset:]))
		if reclen < direntMinSize || reclen > len(it.data) {
			return Entry{}, errInvalidDirent
		}

		rec := it.data[:reclen]
		it.data = it.data[reclen:]

		name := rec[direntNameOffset:]
		for i, b := range name {
			if b == 0 {
				name = name[:i]
				break
			}
		}
		if len(name) == 0 {
			continue
		}

		isDir := false
		switch rec[direntTypeOffset] {
		case unix.DT_DIR:
			isDir = true
		case unix.DT_UNKNOWN:
			isDir = it.statIsDir(name)
		}

		return Entry{Name: string(name), IsDir: isDir}, nil
	}
}

func (it *getdentsIterator) fill() error {
	for {
		n, err := unix.Getdents(it.fd, it.buf)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("getdents: %w", err)
		}
		if n <= 0 {
			it.eof = true
		}
		it.data = it.buf[:max(n, 0)]
		return nil
	}
}

// statIsDir classifies an entry with fstatat(AT_SYMLINK_NOFOLLOW).
// Entries that cannot be classified are treated as non-directories.
func (it *getdentsIterator) statIsDir(name []byte) bool {
	var st unix.Stat_t
	for {
		err := unix.Fstatat(it.fd, string(name), &st, unix.AT_SYMLINK_NOFOLLOW)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false
		}
		return st.Mode&unix.S_IFMT == unix.S_IFDIR
	}
}

func (it *getdentsIterator) Close() error {
	if it.fd < 0 {
		return nil
	}

	// close(2) is not retried on EINTR.
	err := unix.Close(it.fd)
	it.fd = -1
	if err != nil {
		return fmt.Errorf("close dir: %w", err)
	}

	return nil
}
