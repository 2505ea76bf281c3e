package segview

import "slices"

// Builder is an immutable fluent builder for views.
// Each method returns a new builder with the updated configuration,
// so a partially configured builder can be shared and extended safely.
//
// Example:
//
//	v, err := segview.NewBuilder[string]().
//	    AddElems("a", "b").
//	    Add(existingView).
//	    Metrics(collector).
//	    Build()
type Builder[E comparable] struct {
	segments  []Segment[E]
	validator Validator
	logger    *Logger
	metrics   MetricsCollector
}

// NewBuilder creates an empty builder.
func NewBuilder[E comparable]() Builder[E] {
	return Builder[E]{}
}

// Add appends segments.
func (b Builder[E]) Add(segments ...Segment[E]) Builder[E] {
	b.segments = slices.Concat(b.segments, segments)
	return b
}

// AddElems appends a Frozen copy of elems as one segment.
func (b Builder[E]) AddElems(elems ...E) Builder[E] {
	return b.Add(Freeze(elems))
}

// Validator sets the immutability check.
func (b Builder[E]) Validator(v Validator) Builder[E] {
	b.validator = v
	return b
}

// Logger sets the logger used during Build.
func (b Builder[E]) Logger(l *Logger) Builder[E] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector.
func (b Builder[E]) Metrics(m MetricsCollector) Builder[E] {
	b.metrics = m
	return b
}

// Len returns the number of segments added so far.
func (b Builder[E]) Len() int { return len(b.segments) }

// Build constructs the sequence. See New.
func (b Builder[E]) Build() (Sequence[E], error) {
	var opts []Option
	if b.validator != nil {
		opts = append(opts, WithValidator(b.validator))
	}
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return New(b.segments, opts...)
}
