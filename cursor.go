package segview

import (
	"fmt"
	"iter"
)

// Cursor is a bidirectional position in a sequence. It sits between two
// elements: Next returns the one after it, Previous the one before it.
//
// A cursor is not safe for concurrent use, but any number of cursors may
// walk the same sequence concurrently.
type Cursor[E comparable] struct {
	segments []Segment[E]
	size     int

	seg int // current segment
	off int // offset of the next element within segments[seg]
	pos int // logical index of the next element
}

func newCursor[E comparable](segments []Segment[E], size, seg, off, pos int) *Cursor[E] {
	return &Cursor[E]{segments: segments, size: size, seg: seg, off: off, pos: pos}
}

// HasNext reports whether Next would return an element.
func (c *Cursor[E]) HasNext() bool { return c.pos < c.size }

// HasPrevious reports whether Previous would return an element.
func (c *Cursor[E]) HasPrevious() bool { return c.pos > 0 }

// NextIndex returns the logical index of the element Next would return.
func (c *Cursor[E]) NextIndex() int { return c.pos }

// PreviousIndex returns the logical index of the element Previous would
// return, or -1 at the start.
func (c *Cursor[E]) PreviousIndex() int { return c.pos - 1 }

// Next returns the next element and advances the cursor, skipping empty
// segments. It returns ErrNoSuchElement past the end.
func (c *Cursor[E]) Next() (E, error) {
	if !c.HasNext() {
		var zero E
		return zero, ErrNoSuchElement
	}
	for c.off >= c.segments[c.seg].Len() {
		c.seg++
		c.off = 0
	}
	e, err := c.segments[c.seg].At(c.off)
	if err != nil {
		return e, err
	}
	c.off++
	c.pos++
	return e, nil
}

// Previous returns the previous element and moves the cursor back,
// skipping empty segments. It returns ErrNoSuchElement at the start.
func (c *Cursor[E]) Previous() (E, error) {
	if !c.HasPrevious() {
		var zero E
		return zero, ErrNoSuchElement
	}
	for c.off == 0 {
		c.seg--
		c.off = c.segments[c.seg].Len()
	}
	e, err := c.segments[c.seg].At(c.off - 1)
	if err != nil {
		return e, err
	}
	c.off--
	c.pos--
	return e, nil
}

// ForEachRemaining calls fn for every element after the cursor and leaves
// the cursor at the end.
func (c *Cursor[E]) ForEachRemaining(fn func(E)) error {
	if fn == nil {
		return fmt.Errorf("%w: ForEachRemaining requires a function", ErrNilArgument)
	}
	for c.HasNext() {
		e, err := c.Next()
		if err != nil {
			return err
		}
		fn(e)
	}
	return nil
}

// Remove always fails; the sequence is read-only.
func (c *Cursor[E]) Remove() error { return ErrUnsupported }

// Set always fails; the sequence is read-only.
func (c *Cursor[E]) Set(E) error { return ErrUnsupported }

// Insert always fails; the sequence is read-only.
func (c *Cursor[E]) Insert(E) error { return ErrUnsupported }

// backward walks a fresh end cursor towards the start on every range,
// yielding index/element pairs.
func backward[E comparable](end func() *Cursor[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		c := end()
		for c.HasPrevious() {
			i := c.PreviousIndex()
			e, err := c.Previous()
			if err != nil || !yield(i, e) {
				return
			}
		}
	}
}
