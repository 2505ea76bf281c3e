package segview

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
	"strings"
)

// hashSeed is fixed for the life of the process so that equal sequences
// hash equally regardless of their representation.
var hashSeed = maphash.MakeSeed()

// HashOf computes the list hash of the elements yielded by seq: starting
// at 1, each element updates the accumulator as 31*h + hash(e). Views,
// frozen segments and plain slices holding equal elements hash equally
// within a process.
func HashOf[E comparable](seq iter.Seq[E]) uint64 {
	h := uint64(1)
	for e := range seq {
		h = 31*h + maphash.Comparable(hashSeed, e)
	}
	return h
}

// HashSlice is HashOf for a plain slice.
func HashSlice[E comparable](s []E) uint64 {
	return HashOf(slices.Values(s))
}

// EqualSlice reports whether seg holds exactly the elements of s, in order.
func EqualSlice[E comparable](seg Segment[E], s []E) bool {
	return equalSeq[E](seg, Freeze(s))
}

func equalSeq[E comparable](a, b Segment[E]) bool {
	if isNil(b) || a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for e := range a.All() {
		o, ok := next()
		if !ok || o != e {
			return false
		}
	}
	return true
}

// isNil reports whether s is nil, including a nil *View or *Frozen held
// in a non-nil interface.
func isNil[E comparable](s Segment[E]) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *View[E]:
		return v == nil
	case *Frozen[E]:
		return v == nil
	}
	return false
}

// format renders elements as "[e0, e1, ...]", or "[]" when there are none.
func format[E any](seq iter.Seq[E]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for e := range seq {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte(']')
	return sb.String()
}
