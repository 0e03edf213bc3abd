package pathlist

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderRoundTrip(t *testing.T) {
	var b Builder
	b.Reset()

	if err := b.Append("ab"); err != nil {
		t.Fatal(err)
	}
	if err := b.Append("cd"); err != nil {
		t.Fatal(err)
	}

	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	if got := string(b.Terminated()); got != "abcd\x00" {
		t.Errorf("Terminated() = %q, want %q", got, "abcd\x00")
	}
	if b.String() != "abcd" || string(b.Bytes()) != "abcd" {
		t.Errorf("String() = %q, Bytes() = %q, want abcd", b.String(), b.Bytes())
	}
}

func TestBuilderReset(t *testing.T) {
	var b Builder
	if err := b.Append("long/prefix"); err != nil {
		t.Fatal(err)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
	if got := string(b.Terminated()); got != "\x00" {
		t.Errorf("Terminated() after Reset = %q, want NUL", got)
	}

	if err := b.Append("x"); err != nil {
		t.Fatal(err)
	}
	if got := string(b.Terminated()); got != "x\x00" {
		t.Errorf("Terminated() = %q, want %q", got, "x\x00")
	}
}

func TestBuilderCapacity(t *testing.T) {
	tests := []struct {
		name    string
		prefix  int
		text    int
		wantErr bool
	}{
		{"empty", 0, 0, false},
		{"longest path", 0, MaxPath - 2, false},
		{"terminator would be the last byte", 0, MaxPath - 1, true},
		{"total reaches capacity", 0, MaxPath, true},
		{"prefix plus text fits", 100, MaxPath - 102, false},
		{"prefix plus text too long", 100, MaxPath - 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Builder
			if tt.prefix > 0 {
				if err := b.Append(strings.Repeat("p", tt.prefix)); err != nil {
					t.Fatal(err)
				}
			}

			err := b.Append(strings.Repeat("t", tt.text))
			if tt.wantErr {
				if !errors.Is(err, ErrPathTooLong) {
					t.Fatalf("Append(%d bytes) after %d = %v, want ErrPathTooLong", tt.text, tt.prefix, err)
				}
				if b.Len() != tt.prefix {
					t.Errorf("failed Append changed Len() to %d, want %d", b.Len(), tt.prefix)
				}
				return
			}
			if err != nil {
				t.Fatalf("Append(%d bytes) after %d: %v", tt.text, tt.prefix, err)
			}
			if b.Len() != tt.prefix+tt.text {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.prefix+tt.text)
			}
		})
	}
}

func TestBuilderNoTruncation(t *testing.T) {
	var b Builder
	if err := b.Append("keep"); err != nil {
		t.Fatal(err)
	}

	err := b.AppendBytes([]byte(strings.Repeat("x", MaxPath)))
	if !errors.Is(err, ErrPathTooLong) {
		t.Fatalf("AppendBytes = %v, want ErrPathTooLong", err)
	}
	if got := string(b.Terminated()); got != "keep\x00" {
		t.Errorf("builder after overflow = %q, want %q", got, "keep\x00")
	}
}

func TestBuilderAppendBytes(t *testing.T) {
	var b Builder
	for _, part := range []string{"root", "/", "dir"} {
		if err := b.AppendBytes([]byte(part)); err != nil {
			t.Fatal(err)
		}
	}
	if b.String() != "root/dir" {
		t.Errorf("String() = %q, want %q", b.String(), "root/dir")
	}
}
