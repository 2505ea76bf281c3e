package segview

import "log/slog"

type options struct {
	validator        Validator
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		validator:        DefaultValidator,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures view construction.
type Option func(*options)

// WithValidator replaces the immutability check run on every segment.
//
// If nil is passed, DefaultValidator is used.
func WithValidator(v Validator) Option {
	return func(o *options) {
		if v == nil {
			v = DefaultValidator
		}
		o.validator = v
	}
}

// WithMetricsCollector configures a metrics collector for construction,
// slicing and copy-out. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &segview.BasicMetricsCollector{}
//	v, _ := segview.New(segments, segview.WithMetricsCollector(metrics))
//	_ = v.ToSlice()
//	stats := metrics.GetStats()
//	fmt.Printf("Materialized: %d elements\n", stats.MaterializedElements)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for construction.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := segview.NewJSONLogger(slog.LevelDebug)
//	v, err := segview.New(segments, segview.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
