package vmarena_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vmarena"
	"github.com/pavanmanishd/vmarena/pathlist"
)

// BenchmarkWorstCaseScenarios covers the patterns where the arena list
// does poorly. These help decide when not to use it.
func BenchmarkWorstCaseScenarios(b *testing.B) {
	// Appending by walking from the head is quadratic in the list length.
	for _, siblings := range []int{100, 1000, 5000} {
		enum := pathlist.FSEnumerator{FS: syntheticTree(1, siblings, 0)}

		b.Run(fmt.Sprintf("WideDirectory_Walk_%d", siblings), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				scanOnce(b, enum, ".")
			}
		})
		b.Run(fmt.Sprintf("WideDirectory_Track_%d", siblings), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				scanOnce(b, enum, ".", pathlist.WithTailTracking())
			}
		})
	}

	// A one-page commit chunk forces a commit call for nearly every page.
	b.Run("OnePageCommitChunk", func(b *testing.B) {
		page := vmarena.SystemMemory().PageSize()
		for i := 0; i < b.N; i++ {
			a, err := vmarena.NewArena(64<<20, vmarena.WithCommitChunk(page))
			if err != nil {
				b.Fatal(err)
			}
			for j := 0; j < 1024; j++ {
				if _, err := a.AllocBytes(page); err != nil {
					b.Fatal(err)
				}
			}
			_ = a.Release()
		}
	})

	// Short-lived arenas pay a reserve and release per use.
	b.Run("ArenaPerObject", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a, err := vmarena.NewArena(1 << 20)
			if err != nil {
				b.Fatal(err)
			}
			if _, err := vmarena.Alloc[int64](a); err != nil {
				b.Fatal(err)
			}
			_ = a.Release()
		}
	})
}
