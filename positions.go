package segview

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/segview/internal/conv"
)

// PositionSet is a compressed set of logical indices, as returned by
// Positions. It wraps a 64-bit roaring bitmap.
type PositionSet struct {
	rb *roaring64.Bitmap
}

func newPositionSet() *PositionSet {
	return &PositionSet{rb: roaring64.New()}
}

// addMatches adds offset+i for every element at local index i that equals x.
func addMatches[E comparable](ps *PositionSet, offset int, seq iter.Seq[E], x E) {
	i := offset
	for e := range seq {
		if e == x {
			ps.rb.Add(conv.MustUint64(i))
		}
		i++
	}
}

// Len returns the number of positions.
func (ps *PositionSet) Len() int { return conv.MustInt(ps.rb.GetCardinality()) }

// IsEmpty reports whether the set holds no positions.
func (ps *PositionSet) IsEmpty() bool { return ps.rb.IsEmpty() }

// Contains reports whether index is in the set.
func (ps *PositionSet) Contains(index int) bool {
	if index < 0 {
		return false
	}
	return ps.rb.Contains(conv.MustUint64(index))
}

// First returns the smallest position, or false if the set is empty.
func (ps *PositionSet) First() (int, bool) {
	if ps.rb.IsEmpty() {
		return -1, false
	}
	return conv.MustInt(ps.rb.Minimum()), true
}

// Last returns the largest position, or false if the set is empty.
func (ps *PositionSet) Last() (int, bool) {
	if ps.rb.IsEmpty() {
		return -1, false
	}
	return conv.MustInt(ps.rb.Maximum()), true
}

// All yields positions in ascending order.
func (ps *PositionSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := ps.rb.Iterator()
		for it.HasNext() {
			if !yield(conv.MustInt(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the positions in ascending order.
func (ps *PositionSet) ToSlice() []int {
	out := make([]int, 0, ps.Len())
	for p := range ps.All() {
		out = append(out, p)
	}
	return out
}

// Union returns a new set holding the positions of both sets.
func (ps *PositionSet) Union(other *PositionSet) *PositionSet {
	return &PositionSet{rb: roaring64.Or(ps.rb, other.rb)}
}

// SizeInBytes returns the serialized size of the underlying bitmap.
func (ps *PositionSet) SizeInBytes() uint64 { return ps.rb.GetSizeInBytes() }
