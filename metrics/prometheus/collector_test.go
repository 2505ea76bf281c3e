package prometheus

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/segview"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	v, err := segview.New([]segview.Segment[string]{
		segview.Of("a", "b"),
		segview.Of("c"),
	}, segview.WithMetricsCollector(c))
	require.NoError(t, err)

	_, err = v.Slice(0, 3)
	require.NoError(t, err)
	_, err = v.Slice(0, 1)
	require.NoError(t, err)
	_, err = v.Slice(1, 1)
	require.NoError(t, err)
	_ = v.ToSlice()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.builds.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.buildSegs))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.slices.WithLabelValues("wrapped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.slices.WithLabelValues("delegated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.slices.WithLabelValues("empty")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.materialized))
}

func TestCollector_BuildError(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.RecordBuild(3, errors.New("rejected"))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.builds.WithLabelValues("error")))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}
