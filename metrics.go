package segview

import (
	"sync/atomic"
	"time"
)

// SliceKind classifies how Slice satisfied a request.
type SliceKind int

const (
	// SliceEmpty means the range was empty and the canonical empty
	// sequence was returned.
	SliceEmpty SliceKind = iota
	// SliceDelegated means the range fell inside one segment and was
	// served by that segment's own sub-range.
	SliceDelegated
	// SliceWrapped means the range crossed segments and a new view was built.
	SliceWrapped
)

func (k SliceKind) String() string {
	switch k {
	case SliceEmpty:
		return "empty"
	case SliceDelegated:
		return "delegated"
	case SliceWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see the
// metrics/prometheus package for a ready-made Prometheus implementation.
//
// Methods are called on read paths and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordBuild is called after each construction attempt.
	// segments is the number of segments supplied, err is nil on success.
	RecordBuild(segments int, err error)

	// RecordSlice is called after each successful Slice.
	RecordSlice(kind SliceKind)

	// RecordMaterialize is called after each ToSlice or CopyInto.
	// elements is the number of elements copied.
	RecordMaterialize(elements int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, error)               {}
func (NoopMetricsCollector) RecordSlice(SliceKind)                {}
func (NoopMetricsCollector) RecordMaterialize(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount           atomic.Int64
	BuildErrors          atomic.Int64
	BuildSegments        atomic.Int64
	SliceEmpty           atomic.Int64
	SliceDelegated       atomic.Int64
	SliceWrapped         atomic.Int64
	MaterializeCount     atomic.Int64
	MaterializedElements atomic.Int64
	MaterializeNanos     atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(segments int, err error) {
	b.BuildCount.Add(1)
	b.BuildSegments.Add(int64(segments))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordSlice implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSlice(kind SliceKind) {
	switch kind {
	case SliceEmpty:
		b.SliceEmpty.Add(1)
	case SliceDelegated:
		b.SliceDelegated.Add(1)
	case SliceWrapped:
		b.SliceWrapped.Add(1)
	}
}

// RecordMaterialize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMaterialize(elements int, duration time.Duration) {
	b.MaterializeCount.Add(1)
	b.MaterializedElements.Add(int64(elements))
	b.MaterializeNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:           b.BuildCount.Load(),
		BuildErrors:          b.BuildErrors.Load(),
		BuildSegments:        b.BuildSegments.Load(),
		SliceEmpty:           b.SliceEmpty.Load(),
		SliceDelegated:       b.SliceDelegated.Load(),
		SliceWrapped:         b.SliceWrapped.Load(),
		MaterializeCount:     b.MaterializeCount.Load(),
		MaterializedElements: b.MaterializedElements.Load(),
		MaterializeAvgNanos:  b.getAvgMaterializeNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgMaterializeNanos() int64 {
	count := b.MaterializeCount.Load()
	if count == 0 {
		return 0
	}
	return b.MaterializeNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount           int64
	BuildErrors          int64
	BuildSegments        int64
	SliceEmpty           int64
	SliceDelegated       int64
	SliceWrapped         int64
	MaterializeCount     int64
	MaterializedElements int64
	MaterializeAvgNanos  int64
}

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)
