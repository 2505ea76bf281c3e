// Package prometheus exports segview metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, err := segprom.NewCollector(reg)
//	v, err := segview.New(segments, segview.WithMetricsCollector(c))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/segview"
)

// Collector implements segview.MetricsCollector on top of Prometheus
// counters and a histogram.
type Collector struct {
	builds       *prometheus.CounterVec
	buildSegs    prometheus.Counter
	slices       *prometheus.CounterVec
	materialized prometheus.Counter
	copyLatency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "segview_builds_total",
			Help: "Total view constructions",
		}, []string{"status"}),
		buildSegs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "segview_build_segments_total",
			Help: "Total segments supplied to view constructions",
		}),
		slices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "segview_slices_total",
			Help: "Total sub-range requests by how they were served",
		}, []string{"kind"}),
		materialized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "segview_materialized_elements_total",
			Help: "Total elements copied out of views",
		}),
		copyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "segview_materialize_duration_seconds",
			Help:    "Latency of copying a view into a slice",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, m := range []prometheus.Collector{c.builds, c.buildSegs, c.slices, c.materialized, c.copyLatency} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordBuild implements segview.MetricsCollector.
func (c *Collector) RecordBuild(segments int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.builds.WithLabelValues(status).Inc()
	c.buildSegs.Add(float64(segments))
}

// RecordSlice implements segview.MetricsCollector.
func (c *Collector) RecordSlice(kind segview.SliceKind) {
	c.slices.WithLabelValues(kind.String()).Inc()
}

// RecordMaterialize implements segview.MetricsCollector.
func (c *Collector) RecordMaterialize(elements int, d time.Duration) {
	c.materialized.Add(float64(elements))
	c.copyLatency.Observe(d.Seconds())
}

var _ segview.MetricsCollector = (*Collector)(nil)
