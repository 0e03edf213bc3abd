package vmarena

import (
	"errors"
	"fmt"
)

// Example demonstrates basic arena usage
func Example() {
	// Reserve 1 GiB of address space; nothing is committed yet.
	a, err := NewArena(1 << 30)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer a.Release() // Always clean up

	// Allocate raw bytes
	buf, _ := a.AllocBytes(1024)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// Allocate a typed value (zeroed)
	ptr, _ := Alloc[int](a)
	*ptr = 42
	fmt.Printf("Allocated int with value: %d\n", *ptr)

	// Allocate a slice
	slice, _ := AllocSlice[int](a, 5)
	for i := range slice {
		slice[i] = i * 2
	}
	fmt.Printf("Allocated slice: %v\n", slice)

	fmt.Printf("Memory in use: %d bytes\n", a.Used())
	fmt.Printf("Committed at least what is used: %v\n", a.Committed() >= a.Used())

	// Output:
	// Allocated buffer of size: 1024
	// Allocated int with value: 42
	// Allocated slice: [0 2 4 6 8]
	// Memory in use: 1088 bytes
	// Committed at least what is used: true
}

// ExampleArena_Allocate shows that a full arena refuses further allocations.
func ExampleArena_Allocate() {
	a, err := NewArena(4096, WithMemory(HeapMemory{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer a.Release()

	_, err = a.Allocate(4096)
	fmt.Println("fill:", err)

	_, err = a.Allocate(1)
	fmt.Println("next:", errors.Is(err, ErrOutOfReservedSpace))

	// Output:
	// fill: <nil>
	// next: true
}

// ExampleWithCommitChunk compares how often two commit chunk sizes commit.
func ExampleWithCommitChunk() {
	run := func(chunk int) int {
		a, err := NewArena(64<<20, WithCommitChunk(chunk))
		if err != nil {
			return -1
		}
		defer a.Release()

		for i := 0; i < 10000; i++ {
			if _, err := a.Allocate(100); err != nil {
				return -1
			}
		}
		return a.Metrics().Commits
	}

	small, large := run(1), run(4<<20)
	fmt.Println("small chunk commits more often:", small > large)
	fmt.Println("large chunk commits once:", large == 1)

	// Output:
	// small chunk commits more often: true
	// large chunk commits once: true
}
