package segview

import (
	"fmt"
	"reflect"
)

// Validator decides, once at construction time, whether a segment may be
// wrapped. position is the segment's index in the construction input.
//
// A non-nil error rejects the segment. Errors that are not already an
// *InvalidSegmentError are wrapped in one.
type Validator func(position int, segment any) error

// DefaultValidator accepts segments whose type implements Immutable, which
// includes Frozen, View and the canonical empty sequence.
func DefaultValidator(position int, segment any) error {
	if _, ok := segment.(Immutable); ok {
		return nil
	}
	return &InvalidSegmentError{Position: position, Type: fmt.Sprintf("%T", segment)}
}

// TrustAll accepts every segment. The caller takes responsibility for
// never mutating what it hands in.
func TrustAll(int, any) error { return nil }

// TrustTypes returns a validator that accepts Immutable segments plus any
// segment whose dynamic type matches the type of one of the samples.
func TrustTypes(samples ...any) Validator {
	trusted := make(map[reflect.Type]struct{}, len(samples))
	for _, s := range samples {
		trusted[reflect.TypeOf(s)] = struct{}{}
	}
	return func(position int, segment any) error {
		if _, ok := trusted[reflect.TypeOf(segment)]; ok {
			return nil
		}
		return DefaultValidator(position, segment)
	}
}
