// Package segview provides a read-only sequence view over several immutable
// segments, without copying their elements.
//
// Concatenating large immutable collections costs time and memory
// proportional to their total size. A View instead keeps the segments as
// they are and answers every query by locating the segment that holds a
// logical index: lookup cost grows with the number of segments, never with
// the number of elements.
//
// # Quick Start
//
//	a := segview.Of("a", "b")
//	b := segview.Of("c", "d", "e")
//
//	v, err := segview.Concat[string](a, b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	x, _ := v.At(3)          // "d"
//	sub, _ := v.Slice(1, 4)  // [b, c, d], still no copy
//	fmt.Println(v, sub, x)
//
// # Segments
//
// Anything implementing Segment can be wrapped. Frozen is the built-in
// slice-backed implementation; views are segments too and nest freely.
// Segments are borrowed: the view never copies or owns element data, so a
// segment must not change after it has been handed in.
//
// Whether a segment is trusted to be immutable is a policy decision made
// once at construction by a Validator. DefaultValidator accepts types that
// implement Immutable; TrustTypes and TrustAll widen that policy.
//
// # Read-Only Contract
//
// Sequence mirrors a full list contract. Its mutating methods, and those of
// Cursor, exist only to fail with ErrUnsupported.
//
// # Equality and Hashing
//
// Equal and Hash agree with a plain slice of the same elements: see
// EqualSlice, HashOf and HashSlice.
//
// # Concurrency
//
// A constructed view is safe for unsynchronized concurrent reads. The only
// internal mutable state is the memoized length, which racing readers
// compute identically.
package segview
