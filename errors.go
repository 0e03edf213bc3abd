package vmarena

import "errors"

var (
	// ErrReservationFailed is returned by NewArena when the address range
	// cannot be reserved. The arena is unusable.
	ErrReservationFailed = errors.New("arena: reservation failed")

	// ErrOutOfReservedSpace is returned when an allocation does not fit in
	// what is left of the reserved range. The arena never grows past its
	// initial reservation.
	ErrOutOfReservedSpace = errors.New("arena: out of reserved space")

	// ErrCommitFailed is returned when the host declines to back more pages.
	ErrCommitFailed = errors.New("arena: commit failed")

	// ErrInvalidSize is returned for allocation requests of zero or negative size.
	ErrInvalidSize = errors.New("arena: invalid size")

	// ErrReleased is returned for any allocation after Release.
	ErrReleased = errors.New("arena: use after Release")
)
