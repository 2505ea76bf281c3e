package segview

import (
	"errors"
	"fmt"
	"slices"
)

// New returns a read-only sequence presenting segments, in order, as one
// contiguous sequence.
//
// The slice of segment handles is copied; the segments themselves are
// borrowed and must never change afterwards. Every segment is checked by
// the configured Validator (DefaultValidator unless WithValidator is
// given) and the first rejection aborts construction.
//
// No segments, or a single empty segment, yield the canonical empty
// sequence.
func New[E comparable](segments []Segment[E], opts ...Option) (Sequence[E], error) {
	o := applyOptions(opts)

	seq, err := build(segments, o)
	o.logger.LogBuild(len(segments), err)
	o.metricsCollector.RecordBuild(len(segments), err)
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// Concat is New with default options and variadic segments.
func Concat[E comparable](segments ...Segment[E]) (Sequence[E], error) {
	return New(segments)
}

func build[E comparable](segments []Segment[E], o options) (Sequence[E], error) {
	if len(segments) == 0 {
		return Empty[E](), nil
	}

	handles := slices.Clone(segments)
	for i, s := range handles {
		if s == nil {
			return nil, fmt.Errorf("%w: segment %d is nil", ErrNilArgument, i)
		}
		if err := o.validator(i, s); err != nil {
			var ise *InvalidSegmentError
			if !errors.As(err, &ise) {
				err = &InvalidSegmentError{Position: i, Type: fmt.Sprintf("%T", s), cause: err}
			}
			return nil, err
		}
	}

	if len(handles) == 1 && handles[0].Len() == 0 {
		return Empty[E](), nil
	}
	return newView(handles, o.metricsCollector), nil
}
