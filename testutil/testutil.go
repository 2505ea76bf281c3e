package testutil

import (
	"context"
	"math/rand"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UUID returns a random version 4 UUID string drawn from the seeded source,
// so runs with the same seed produce the same values.
func (r *RNG) UUID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uuidLocked()
}

func (r *RNG) uuidLocked() string {
	id, err := uuid.NewRandomFromReader(r.rand)
	if err != nil {
		// math/rand never fails to fill a buffer.
		panic(err)
	}
	return id.String()
}

// UUIDs returns n random UUID strings.
func (r *RNG) UUIDs(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		out[i] = r.uuidLocked()
	}
	return out
}

// UUIDSegments generates num segments of perSegment UUID strings each.
func (r *RNG) UUIDSegments(num, perSegment int) [][]string {
	segments := make([][]string, num)
	for i := range segments {
		segments[i] = r.UUIDs(perSegment)
	}
	return segments
}

// Ints returns n pseudo-random ints in [0, maxVal).
// Small ranges give plenty of duplicates for search tests.
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Split cuts elems into parts consecutive segments at random points.
// Segments may be empty, which exercises boundary skipping.
// Flatten(Split(r, elems, k)...) always equals elems.
func Split[E any](r *RNG, elems []E, parts int) [][]E {
	if parts <= 0 {
		return nil
	}
	cuts := make([]int, parts-1)
	r.mu.Lock()
	for i := range cuts {
		cuts[i] = r.rand.Intn(len(elems) + 1)
	}
	r.mu.Unlock()
	slices.Sort(cuts)

	out := make([][]E, 0, parts)
	prev := 0
	for _, c := range cuts {
		out = append(out, elems[prev:c:c])
		prev = c
	}
	return append(out, elems[prev:])
}

// Flatten concatenates segments into one freshly allocated slice. It is the
// ground truth that views are checked against.
func Flatten[E any](segments ...[]E) []E {
	total := 0
	for _, s := range segments {
		total += len(s)
	}
	out := make([]E, 0, total)
	for _, s := range segments {
		out = append(out, s...)
	}
	return out
}

// Parallel runs fn on workers goroutines and returns the first error.
// The context passed to fn is cancelled once any worker fails.
func Parallel(ctx context.Context, workers int, fn func(ctx context.Context, worker int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			return fn(ctx, w)
		})
	}
	return g.Wait()
}
