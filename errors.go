package segview

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index or sub-range bound falls
	// outside the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for malformed arguments, such as a
	// sub-range with from > to or a segment rejected by the validator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrUnsupported is returned by every mutating operation.
	// It wraps errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("sequence is read-only: %w", errors.ErrUnsupported)

	// ErrNoSuchElement is returned when a cursor is advanced past its bound.
	ErrNoSuchElement = errors.New("no such element")
)

// IndexError reports an index outside the valid range of a sequence.
//
// It matches ErrIndexOutOfRange via errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: index %d, length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// RangeError reports a sub-range whose lower bound exceeds its upper bound.
//
// It matches ErrInvalidArgument via errors.Is.
type RangeError struct {
	From int
	To   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: from (%d) > to (%d)", e.From, e.To)
}

func (e *RangeError) Unwrap() error { return ErrInvalidArgument }

// InvalidSegmentError reports a segment that failed the immutability check
// at construction time.
//
// It matches ErrInvalidArgument via errors.Is. The validator's own error,
// if any, is available through errors.Unwrap chains.
type InvalidSegmentError struct {
	Position int
	Type     string
	cause    error
}

func (e *InvalidSegmentError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("segment %d of type %s is not known to be immutable: %v", e.Position, e.Type, e.cause)
	}
	return fmt.Sprintf("segment %d of type %s is not known to be immutable", e.Position, e.Type)
}

func (e *InvalidSegmentError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidArgument, e.cause}
	}
	return []error{ErrInvalidArgument}
}

func indexError(index, length int) error {
	return &IndexError{Index: index, Len: length}
}
