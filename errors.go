package soa

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the sentinel behind every checked-access failure.
	ErrOutOfRange = errors.New("index out of range")

	// ErrTooLarge is the sentinel behind requests that exceed MaxLen.
	ErrTooLarge = errors.New("length exceeds maximum")
)

// ErrIndexOutOfBounds is returned by At when the index is not below Len.
//
// errors.Is(err, ErrOutOfRange) reports true for it.
type ErrIndexOutOfBounds struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, len %d", e.Index, e.Len)
}

func (e *ErrIndexOutOfBounds) Unwrap() error { return ErrOutOfRange }

// ErrCapacityExceeded is returned when a requested length or capacity is
// negative or larger than MaxLen. No column has been modified when it is
// returned.
type ErrCapacityExceeded struct {
	Requested int
	Max       int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, max %d", e.Requested, e.Max)
}

func (e *ErrCapacityExceeded) Unwrap() error { return ErrTooLarge }
