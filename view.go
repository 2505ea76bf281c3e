package segview

import (
	"fmt"
	"iter"
	"sync/atomic"
	"time"
)

// View presents an ordered list of immutable segments as one contiguous,
// read-only sequence. Element data is never copied; only the list of
// segment handles is.
//
// A View is safe for concurrent reads once constructed.
type View[E comparable] struct {
	readOnly[E]

	segments []Segment[E]

	// length holds the memoized total length plus one; zero means not yet
	// computed. Concurrent first readers compute the same sum, so whichever
	// store lands last is still correct.
	length atomic.Int64

	metrics MetricsCollector
}

func newView[E comparable](segments []Segment[E], metrics MetricsCollector) *View[E] {
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &View[E]{segments: segments, metrics: metrics}
}

// Immutable implements Immutable.
func (v *View[E]) Immutable() {}

// Segments returns the number of wrapped segments, empty ones included.
func (v *View[E]) Segments() int { return len(v.segments) }

// Len returns the total number of elements across all segments.
func (v *View[E]) Len() int {
	if n := v.length.Load(); n != 0 {
		return int(n - 1)
	}
	n := 0
	for _, s := range v.segments {
		n += s.Len()
	}
	v.length.Store(int64(n) + 1)
	return n
}

// IsEmpty reports whether the view has no elements.
func (v *View[E]) IsEmpty() bool { return v.Len() == 0 }

// At returns the element at logical index i. The cost is proportional to
// the number of segments, not the number of elements.
func (v *View[E]) At(i int) (E, error) {
	if i >= 0 {
		local := i
		for _, s := range v.segments {
			n := s.Len()
			if local < n {
				return s.At(local)
			}
			local -= n
		}
	}
	var zero E
	return zero, indexError(i, v.Len())
}

// Contains reports whether any segment contains x.
func (v *View[E]) Contains(x E) bool {
	for _, s := range v.segments {
		if s.Contains(x) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every element yielded by xs is contained.
func (v *View[E]) ContainsAll(xs iter.Seq[E]) (bool, error) {
	if xs == nil {
		return false, fmt.Errorf("%w: ContainsAll requires a sequence", ErrNilArgument)
	}
	for x := range xs {
		if !v.Contains(x) {
			return false, nil
		}
	}
	return true, nil
}

// IndexOf returns the logical index of the first occurrence of x, or -1.
func (v *View[E]) IndexOf(x E) int {
	prefix := 0
	for _, s := range v.segments {
		if i := s.IndexOf(x); i != -1 {
			return prefix + i
		}
		prefix += s.Len()
	}
	return -1
}

// LastIndexOf returns the logical index of the last occurrence of x, or -1.
func (v *View[E]) LastIndexOf(x E) int {
	// start is the logical index of segment i's first element.
	start := v.Len()
	for i := len(v.segments) - 1; i >= 0; i-- {
		s := v.segments[i]
		start -= s.Len()
		if j := s.LastIndexOf(x); j != -1 {
			return start + j
		}
	}
	return -1
}

// Positions returns the logical index of every occurrence of x.
func (v *View[E]) Positions(x E) *PositionSet {
	ps := newPositionSet()
	offset := 0
	for _, s := range v.segments {
		if s.Contains(x) {
			addMatches(ps, offset, s.All(), x)
		}
		offset += s.Len()
	}
	return ps
}

// Slice returns the elements in [from, to) as a Sequence.
//
// An empty range yields the canonical empty sequence. A range inside a
// single segment is delegated to that segment. Otherwise a new view is
// built over the tail of the first segment, the untouched segments in
// between, and the head of the last segment.
func (v *View[E]) Slice(from, to int) (Sequence[E], error) {
	if from < 0 {
		return nil, indexError(from, v.Len())
	}
	if from > to {
		return nil, &RangeError{From: from, To: to}
	}
	if from == to {
		v.metrics.RecordSlice(SliceEmpty)
		return Empty[E](), nil
	}
	n := v.Len()
	if to > n {
		return nil, indexError(to, n)
	}

	// offset tracks the logical index of segments[first] and, after the
	// second loop, of segments[last].
	first, offset := 0, 0
	for ; first < len(v.segments); first++ {
		l := v.segments[first].Len()
		if from < offset+l {
			break
		}
		offset += l
	}
	localFrom := from - offset

	last := first
	for ; last < len(v.segments); last++ {
		l := v.segments[last].Len()
		if to <= offset+l {
			break
		}
		offset += l
	}
	localTo := to - offset

	if first == last {
		sub, err := v.segments[first].Sub(localFrom, localTo)
		if err != nil {
			return nil, err
		}
		v.metrics.RecordSlice(SliceDelegated)
		if seq, ok := sub.(Sequence[E]); ok {
			return seq, nil
		}
		sv := newView([]Segment[E]{sub}, v.metrics)
		sv.length.Store(int64(to-from) + 1)
		return sv, nil
	}

	segments := make([]Segment[E], 0, last-first+1)
	tail, err := v.segments[first].Sub(localFrom, v.segments[first].Len())
	if err != nil {
		return nil, err
	}
	segments = append(segments, tail)
	segments = append(segments, v.segments[first+1:last]...)
	head, err := v.segments[last].Sub(0, localTo)
	if err != nil {
		return nil, err
	}
	segments = append(segments, head)

	v.metrics.RecordSlice(SliceWrapped)
	sv := newView(segments, v.metrics)
	sv.length.Store(int64(to-from) + 1)
	return sv, nil
}

// Sub implements Segment by way of Slice.
func (v *View[E]) Sub(from, to int) (Segment[E], error) {
	return v.Slice(from, to)
}

// All yields every element in logical order.
func (v *View[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, s := range v.segments {
			for e := range s.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *View[E]) Backward() iter.Seq2[int, E] {
	return backward(v.endCursor)
}

// ForEach calls fn for every element in logical order.
func (v *View[E]) ForEach(fn func(E)) error {
	if fn == nil {
		return fmt.Errorf("%w: ForEach requires a function", ErrNilArgument)
	}
	for _, s := range v.segments {
		for e := range s.All() {
			fn(e)
		}
	}
	return nil
}

// Iterator returns a cursor positioned before the first element.
func (v *View[E]) Iterator() *Cursor[E] {
	return newCursor(v.segments, v.Len(), 0, 0, 0)
}

// CursorAt returns a cursor whose next element is the one at index.
// index may equal Len, in which case the cursor starts past the end.
func (v *View[E]) CursorAt(index int) (*Cursor[E], error) {
	n := v.Len()
	if index < 0 || index > n {
		return nil, indexError(index, n)
	}
	local := index
	for i, s := range v.segments {
		l := s.Len()
		if local <= l {
			return newCursor(v.segments, n, i, local, index), nil
		}
		local -= l
	}
	// Only reachable with no segments, where index must be 0.
	return newCursor(v.segments, n, 0, 0, 0), nil
}

func (v *View[E]) endCursor() *Cursor[E] {
	c, _ := v.CursorAt(v.Len())
	return c
}

// ToSlice returns a freshly allocated copy of all elements.
func (v *View[E]) ToSlice() []E {
	start := time.Now()
	out := make([]E, v.Len())
	v.CopyTo(out)
	v.metrics.RecordMaterialize(len(out), time.Since(start))
	return out
}

// CopyInto copies all elements into dst when it is large enough, otherwise
// into a new slice, and returns the slice written to. If dst is longer than
// needed, the slot right after the last element is set to the zero value
// and the rest of dst is left untouched.
func (v *View[E]) CopyInto(dst []E) []E {
	start := time.Now()
	n := v.Len()
	if len(dst) < n {
		dst = make([]E, n)
	} else if len(dst) > n {
		var zero E
		dst[n] = zero
	}
	v.CopyTo(dst[:n])
	v.metrics.RecordMaterialize(n, time.Since(start))
	return dst
}

// CopyTo copies up to len(dst) elements into dst and returns the count.
func (v *View[E]) CopyTo(dst []E) int {
	written := 0
	for _, s := range v.segments {
		if written == len(dst) {
			break
		}
		written += s.CopyTo(dst[written:])
	}
	return written
}

// Equal reports whether other holds the same elements in the same order.
func (v *View[E]) Equal(other Segment[E]) bool {
	if o, ok := other.(*View[E]); ok && o == v {
		return true
	}
	return equalSeq[E](v, other)
}

// Hash returns the list hash of the elements; see HashOf.
func (v *View[E]) Hash() uint64 { return HashOf(v.All()) }

// String renders the view as [e0, e1, ...].
func (v *View[E]) String() string { return format(v.All()) }

var (
	_ Sequence[int] = (*View[int])(nil)
	_ Immutable     = (*View[int])(nil)
)
