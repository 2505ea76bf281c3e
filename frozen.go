package segview

import (
	"iter"
	"slices"
)

// Frozen is an immutable, slice-backed segment. Its backing array is
// private to the Frozen value and the sub-ranges derived from it.
type Frozen[E comparable] struct {
	elems []E
}

// Freeze copies elems into a new Frozen segment.
func Freeze[E comparable](elems []E) *Frozen[E] {
	return &Frozen[E]{elems: slices.Clone(elems)}
}

// Of returns a Frozen segment holding the given elements.
func Of[E comparable](elems ...E) *Frozen[E] {
	return Freeze(elems)
}

// Immutable implements Immutable.
func (f *Frozen[E]) Immutable() {}

// Len returns the number of elements.
func (f *Frozen[E]) Len() int { return len(f.elems) }

// At returns the element at i.
func (f *Frozen[E]) At(i int) (E, error) {
	if i < 0 || i >= len(f.elems) {
		var zero E
		return zero, indexError(i, len(f.elems))
	}
	return f.elems[i], nil
}

// Contains reports whether x is present.
func (f *Frozen[E]) Contains(x E) bool { return slices.Contains(f.elems, x) }

// IndexOf returns the first index of x, or -1.
func (f *Frozen[E]) IndexOf(x E) int { return slices.Index(f.elems, x) }

// LastIndexOf returns the last index of x, or -1.
func (f *Frozen[E]) LastIndexOf(x E) int {
	for i := len(f.elems) - 1; i >= 0; i-- {
		if f.elems[i] == x {
			return i
		}
	}
	return -1
}

// Sub returns [from, to) sharing the same backing array.
func (f *Frozen[E]) Sub(from, to int) (Segment[E], error) {
	switch {
	case from < 0:
		return nil, indexError(from, len(f.elems))
	case to > len(f.elems):
		return nil, indexError(to, len(f.elems))
	case from > to:
		return nil, &RangeError{From: from, To: to}
	}
	return &Frozen[E]{elems: f.elems[from:to:to]}, nil
}

// CopyTo copies up to len(dst) elements into dst.
func (f *Frozen[E]) CopyTo(dst []E) int { return copy(dst, f.elems) }

// All yields every element in order.
func (f *Frozen[E]) All() iter.Seq[E] { return slices.Values(f.elems) }

// Equal reports whether other holds the same elements in the same order.
func (f *Frozen[E]) Equal(other Segment[E]) bool { return equalSeq[E](f, other) }

// Hash returns the list hash of the elements; see HashOf.
func (f *Frozen[E]) Hash() uint64 { return HashOf(f.All()) }

// String renders the segment as [e0, e1, ...].
func (f *Frozen[E]) String() string { return format(f.All()) }

var (
	_ Segment[int] = (*Frozen[int])(nil)
	_ Immutable    = (*Frozen[int])(nil)
)
