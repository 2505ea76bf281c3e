package segview

import "iter"

// Segment is the minimal read-only capability a segment must provide.
//
// A segment handed to a View must never change its length or contents
// afterwards. The view borrows it; it neither copies nor owns the data.
type Segment[E comparable] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at i, or an error matching ErrIndexOutOfRange.
	At(i int) (E, error)

	// Contains reports whether x is present.
	Contains(x E) bool

	// IndexOf returns the first index of x, or -1.
	IndexOf(x E) int

	// LastIndexOf returns the last index of x, or -1.
	LastIndexOf(x E) int

	// Sub returns the elements in [from, to) without copying them.
	Sub(from, to int) (Segment[E], error)

	// CopyTo copies up to len(dst) elements into dst and returns the count.
	CopyTo(dst []E) int

	// All yields every element in order.
	All() iter.Seq[E]
}

// Sequence is the full read contract shared by View and the canonical
// empty sequence. Every Sequence is also a Segment, so views nest.
//
// Mutating methods exist so a Sequence can stand in wherever a list
// abstraction is expected; all of them return ErrUnsupported.
type Sequence[E comparable] interface {
	Segment[E]

	IsEmpty() bool
	ContainsAll(xs iter.Seq[E]) (bool, error)
	Slice(from, to int) (Sequence[E], error)
	Positions(x E) *PositionSet

	ToSlice() []E
	CopyInto(dst []E) []E

	Iterator() *Cursor[E]
	CursorAt(index int) (*Cursor[E], error)
	Backward() iter.Seq2[int, E]
	ForEach(fn func(E)) error

	Equal(other Segment[E]) bool
	Hash() uint64
	String() string

	Mutator[E]
}

// Mutator lists the mutating operations of a list abstraction.
type Mutator[E comparable] interface {
	Append(xs ...E) error
	Remove(x E) error
	AppendAll(xs iter.Seq[E]) error
	Insert(index int, xs ...E) error
	Set(index int, x E) error
	Delete(index int) error
	DeleteFunc(del func(E) bool) error
	RemoveAll(xs iter.Seq[E]) error
	RetainAll(xs iter.Seq[E]) error
	Clear() error
	Sort(cmp func(a, b E) int) error
	ReplaceAll(fn func(E) E) error
}

// Immutable is implemented by segment types that guarantee their contents
// never change after construction. DefaultValidator trusts such types.
type Immutable interface {
	Immutable()
}
