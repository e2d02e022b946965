package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a constructor argument is invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a bit index or range lies outside [0, Len()].
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrInvalidLength indicates a negative bit array length.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d", e.Length)
}

func (e *ErrInvalidLength) Unwrap() error { return ErrInvalidArgument }

// ErrIndex indicates a single-bit access outside [0, Length).
//
// It matches ErrIndexOutOfRange via errors.Is.
type ErrIndex struct {
	Op     string
	Index  int
	Length int
}

func (e *ErrIndex) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Length)
}

func (e *ErrIndex) Unwrap() error { return ErrIndexOutOfRange }

// ErrRange indicates a ranged operation whose bounds fall outside [0, Length].
//
// It matches ErrIndexOutOfRange via errors.Is.
type ErrRange struct {
	Op     string
	From   int
	To     int
	Length int
}

func (e *ErrRange) Error() string {
	return fmt.Sprintf("%s: range [%d, %d) out of bounds [0, %d]", e.Op, e.From, e.To, e.Length)
}

func (e *ErrRange) Unwrap() error { return ErrIndexOutOfRange }
