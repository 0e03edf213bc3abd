package pathlist

import (
	"errors"
	"fmt"
)

// MaxPath is the capacity of a Builder, terminator included.
const MaxPath = 260

// ErrPathTooLong is returned when a path would not fit in MaxPath bytes.
var ErrPathTooLong = errors.New("path too long")

// Builder assembles a NUL-terminated path in a fixed-size buffer.
//
// The zero value is an empty builder. Builders are values: each recursion
// level of a scan owns its own.
type Builder struct {
	buf  [MaxPath]byte
	used int
}

// Reset empties the builder. Bytes past the terminator are left as they are.
func (b *Builder) Reset() {
	b.used = 0
	b.buf[0] = 0
}

// Append adds text and a fresh terminator.
// It fails with ErrPathTooLong, leaving the builder unchanged, unless
// Len()+len(text)+1 < MaxPath.
func (b *Builder) Append(text string) error {
	if b.used+len(text)+1 >= MaxPath {
		return fmt.Errorf("%w: %d+%d bytes exceeds %d", ErrPathTooLong, b.used, len(text), MaxPath-2)
	}

	n := copy(b.buf[b.used:], text)
	b.used += n
	b.buf[b.used] = 0

	return nil
}

// AppendBytes is Append for a byte slice.
func (b *Builder) AppendBytes(text []byte) error {
	if b.used+len(text)+1 >= MaxPath {
		return fmt.Errorf("%w: %d+%d bytes exceeds %d", ErrPathTooLong, b.used, len(text), MaxPath-2)
	}

	n := copy(b.buf[b.used:], text)
	b.used += n
	b.buf[b.used] = 0

	return nil
}

// Len returns the length of the path, terminator excluded.
func (b *Builder) Len() int {
	return b.used
}

// Bytes returns the path without its terminator. The slice aliases the
// builder and is only valid until the next Reset or Append.
func (b *Builder) Bytes() []byte {
	return b.buf[:b.used]
}

// Terminated returns the path including its NUL terminator, with the same
// lifetime as Bytes.
func (b *Builder) Terminated() []byte {
	return b.buf[:b.used+1]
}

func (b *Builder) String() string {
	return string(b.buf[:b.used])
}
