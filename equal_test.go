package segview

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	runAll(t, filledFixtures(t), func(t *testing.T, seq Sequence[string]) {
		assert.True(t, seq.Equal(seq))
		assert.True(t, seq.Equal(Freeze(referenceFilled)))
		assert.True(t, seq.Equal(mustNew(t, ascendingSizes...)))
		assert.True(t, EqualSlice(seq, referenceFilled))

		assert.False(t, seq.Equal(nil))
		assert.False(t, seq.Equal(Of("test1", "test2")))
		assert.False(t, seq.Equal(Empty[string]()))
		assert.False(t, EqualSlice(seq, referenceDuplicated))

		perturbed := slices.Clone(referenceFilled)
		perturbed[3] = "test"
		assert.False(t, seq.Equal(Freeze(perturbed)))

		longer := append(slices.Clone(referenceFilled), "test7")
		assert.False(t, seq.Equal(Freeze(longer)))
	})

	runAll(t, emptyFixtures(t), func(t *testing.T, seq Sequence[string]) {
		assert.True(t, seq.Equal(Empty[string]()))
		assert.True(t, seq.Equal(Of[string]()))
		assert.True(t, EqualSlice(seq, []string{}))
		assert.True(t, EqualSlice(seq, nil))
		assert.False(t, seq.Equal(Of("test1")))
		assert.False(t, seq.Equal(nil))
	})
}

func TestEqual_TypedNil(t *testing.T) {
	seq := mustNew(t, []int{1}, []int{2, 3})

	assert.False(t, seq.Equal((*View[int])(nil)))
	assert.False(t, seq.Equal((*Frozen[int])(nil)))
	assert.False(t, Of(1, 2, 3).Equal((*View[int])(nil)))
	assert.False(t, Empty[int]().Equal((*Frozen[int])(nil)))
	assert.False(t, Empty[int]().Equal(nil))
}

func TestEqual_Symmetric(t *testing.T) {
	a := mustNew(t, ascendingSizes...)
	b := mustNew(t, descendingSizes...)
	f := Freeze(referenceFilled)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, f.Equal(a))
	assert.True(t, a.Equal(f))
}

func TestHash(t *testing.T) {
	want := HashSlice(referenceFilled)

	runAll(t, filledFixtures(t), func(t *testing.T, seq Sequence[string]) {
		assert.Equal(t, want, seq.Hash())
		assert.Equal(t, seq.Hash(), seq.Hash())
		assert.Equal(t, HashSlice(seq.ToSlice()), seq.Hash())
	})

	runAll(t, emptyFixtures(t), func(t *testing.T, seq Sequence[string]) {
		assert.Equal(t, uint64(1), seq.Hash())
		assert.Equal(t, HashSlice([]string{}), seq.Hash())
	})

	assert.Equal(t, want, Freeze(referenceFilled).Hash())

	// Order matters.
	reversed := slices.Clone(referenceFilled)
	slices.Reverse(reversed)
	assert.NotEqual(t, want, HashSlice(reversed))
}

func TestHashOf(t *testing.T) {
	ints := []int{4, 8, 15, 16, 23, 42}
	seq := mustNew(t, ints[:2], ints[2:5], ints[5:])

	assert.Equal(t, HashSlice(ints), seq.Hash())
	assert.Equal(t, HashOf(slices.Values(ints)), HashSlice(ints))
	assert.Equal(t, uint64(1), HashOf(slices.Values([]int(nil))))
}

func TestString(t *testing.T) {
	runAll(t, filledFixtures(t), func(t *testing.T, seq Sequence[string]) {
		assert.Equal(t, "[test1, test2, test3, test4, test5, test6]", seq.String())
	})

	runAll(t, emptyFixtures(t), func(t *testing.T, seq Sequence[string]) {
		assert.Equal(t, "[]", seq.String())
	})

	seq := mustNew(t, []int{1}, []int{2, 3})
	assert.Equal(t, "[1, 2, 3]", seq.String())
	assert.Equal(t, "[1, 2]", Of(1, 2).String())
}

func TestForEach(t *testing.T) {
	runAll(t, filledFixtures(t), func(t *testing.T, seq Sequence[string]) {
		var got []string
		require.NoError(t, seq.ForEach(func(s string) { got = append(got, s) }))
		assert.Equal(t, referenceFilled, got)

		assert.ErrorIs(t, seq.ForEach(nil), ErrNilArgument)
	})

	runAll(t, emptyFixtures(t), func(t *testing.T, seq Sequence[string]) {
		calls := 0
		require.NoError(t, seq.ForEach(func(string) { calls++ }))
		assert.Zero(t, calls)

		assert.ErrorIs(t, seq.ForEach(nil), ErrNilArgument)
	})
}
