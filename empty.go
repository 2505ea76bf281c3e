package segview

import (
	"fmt"
	"iter"
)

// empty is the canonical empty sequence. It has no state, so every value
// of empty[E] compares equal to every other.
type empty[E comparable] struct {
	readOnly[E]
}

// Empty returns the canonical empty sequence for E.
func Empty[E comparable]() Sequence[E] { return empty[E]{} }

func (empty[E]) Immutable()               {}
func (empty[E]) Len() int                 { return 0 }
func (empty[E]) IsEmpty() bool            { return true }
func (empty[E]) Contains(E) bool          { return false }
func (empty[E]) IndexOf(E) int            { return -1 }
func (empty[E]) LastIndexOf(E) int        { return -1 }
func (empty[E]) CopyTo([]E) int           { return 0 }
func (empty[E]) ToSlice() []E             { return []E{} }
func (empty[E]) Hash() uint64             { return 1 }
func (empty[E]) String() string           { return "[]" }
func (empty[E]) All() iter.Seq[E]         { return func(func(E) bool) {} }
func (empty[E]) Iterator() *Cursor[E]     { return newCursor[E](nil, 0, 0, 0, 0) }
func (empty[E]) Positions(E) *PositionSet { return newPositionSet() }

func (empty[E]) At(i int) (E, error) {
	var zero E
	return zero, indexError(i, 0)
}

func (empty[E]) ContainsAll(xs iter.Seq[E]) (bool, error) {
	if xs == nil {
		return false, fmt.Errorf("%w: ContainsAll requires a sequence", ErrNilArgument)
	}
	for range xs {
		return false, nil
	}
	return true, nil
}

func (e empty[E]) Slice(from, to int) (Sequence[E], error) {
	switch {
	case from < 0:
		return nil, indexError(from, 0)
	case from > to:
		return nil, &RangeError{From: from, To: to}
	case from == to:
		return e, nil
	default:
		return nil, indexError(to, 0)
	}
}

func (e empty[E]) Sub(from, to int) (Segment[E], error) {
	return e.Slice(from, to)
}

func (empty[E]) CopyInto(dst []E) []E {
	if len(dst) > 0 {
		var zero E
		dst[0] = zero
	}
	return dst
}

func (empty[E]) CursorAt(index int) (*Cursor[E], error) {
	if index != 0 {
		return nil, indexError(index, 0)
	}
	return newCursor[E](nil, 0, 0, 0, 0), nil
}

func (empty[E]) Backward() iter.Seq2[int, E] { return func(func(int, E) bool) {} }

func (empty[E]) ForEach(fn func(E)) error {
	if fn == nil {
		return fmt.Errorf("%w: ForEach requires a function", ErrNilArgument)
	}
	return nil
}

func (empty[E]) Equal(other Segment[E]) bool {
	return !isNil(other) && other.Len() == 0
}

var (
	_ Sequence[int] = empty[int]{}
	_ Immutable     = empty[int]{}
)
