package types

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the codec and the Merkleizer. Returned errors wrap
// one of these with context, so callers should match them with errors.Is.
var (
	// ErrRange is returned when an integer does not fit in its bit width.
	ErrRange = errors.New("integer out of range")
	// ErrLengthMismatch is returned when a fixed-size value has the wrong
	// length or element count, or when fixed-size input carries extra bytes.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrCapacityExceeded is returned when a list holds more than its limit.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrSchema is returned when an encoding cannot be represented, such as
	// offsets that overflow the 4-byte offset field.
	ErrSchema = errors.New("schema error")
	// ErrTruncatedInput is returned when decoding runs out of bytes.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrCorruptOffsetTable is returned when decoded offsets are out of order
	// or point outside the input.
	ErrCorruptOffsetTable = errors.New("corrupt offset table")
	// ErrUnsupportedValue is returned when a Go value does not have the
	// in-memory form a descriptor expects.
	ErrUnsupportedValue = errors.New("unsupported value")
)
