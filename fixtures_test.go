package segview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	referenceFilled = []string{"test1", "test2", "test3", "test4", "test5", "test6"}
	ascendingSizes  = [][]string{{}, {"test1"}, {"test2", "test3"}, {"test4", "test5", "test6"}}
	descendingSizes = [][]string{{"test1", "test2", "test3"}, {"test4", "test5"}, {"test6"}, {}}

	referenceDuplicated = []string{"test1", "test2", "test1", "test4", "test5", "test2"}
	duplicatedEntries   = [][]string{{"test1", "test2", "test1"}, {"test4", "test5"}, {"test2"}, {}}
)

type fixture struct {
	name string
	seq  Sequence[string]
}

func frozen[E comparable](parts ...[]E) []Segment[E] {
	segs := make([]Segment[E], len(parts))
	for i, p := range parts {
		segs[i] = Freeze(p)
	}
	return segs
}

func mustNew[E comparable](t testing.TB, parts ...[]E) Sequence[E] {
	t.Helper()
	seq, err := New(frozen(parts...))
	require.NoError(t, err)
	return seq
}

// filledFixtures all hold referenceFilled.
func filledFixtures(t testing.TB) []fixture {
	return []fixture{
		{"ascending segment sizes", mustNew(t, ascendingSizes...)},
		{"descending segment sizes", mustNew(t, descendingSizes...)},
		{"single segment", mustNew(t, referenceFilled)},
		{"nested views", mustNested(t)},
	}
}

// emptyFixtures all hold no elements.
func emptyFixtures(t testing.TB) []fixture {
	return []fixture{
		{"no segments", mustNew[string](t)},
		{"one empty segment", mustNew(t, []string{})},
		{"several empty segments", mustNew(t, []string{}, nil, []string{})},
		{"canonical empty", Empty[string]()},
	}
}

func duplicatedFixtures(t testing.TB) []fixture {
	return []fixture{
		{"segments with duplicates", mustNew(t, duplicatedEntries...)},
		{"single segment", mustNew(t, referenceDuplicated)},
	}
}

func mustNested(t testing.TB) Sequence[string] {
	t.Helper()
	inner := mustNew(t, []string{"test2"}, []string{}, []string{"test3", "test4"})
	seq, err := New([]Segment[string]{Of("test1"), inner, Of("test5", "test6")})
	require.NoError(t, err)
	return seq
}

func runAll(t *testing.T, fixtures []fixture, fn func(t *testing.T, seq Sequence[string])) {
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			fn(t, f.seq)
		})
	}
}
