package prommetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/space"
	"github.com/peterstace/space/geom"
)

type body struct {
	pos geom.Vec2
}

func (b *body) Position() geom.Vec2 { return b.pos }

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, "test")

	s, err := space.New[*body](geom.NewBound2(0, 0, 4, 4),
		space.WithLeafItemLimit(2), space.WithMetricsCollector(c))
	require.NoError(t, err)

	a, b := &body{pos: geom.V2(1, 1)}, &body{pos: geom.V2(3, 3)}
	s.Add(a)
	s.Add(a)
	s.Add(b)
	s.InRadius(1, geom.V2(1, 1))
	s.InBounds(s.Bound())
	s.InBounds(geom.NewBound2(0, 0, 0.5, 0.5))
	s.Delete(b)
	s.Delete(a)
	s.Move(a)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.adds.WithLabelValues(resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.adds.WithLabelValues(resultMissed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.deletes.WithLabelValues(resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.moves.WithLabelValues(resultMissed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queries.WithLabelValues("radius")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.queries.WithLabelValues("bounds")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.subdivisions.WithLabelValues("8")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.merges.WithLabelValues("8")))
	assert.Zero(t, testutil.ToFloat64(c.staleDeletes))

	// The histograms hold one series per query kind seen.
	assert.Equal(t, 2, testutil.CollectAndCount(c.queryResults))
	assert.Equal(t, 2, testutil.CollectAndCount(c.queryLatency))
}

func TestCollectorRegistersWithNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, "sim")
	c.RecordStaleDelete()

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "sim_space_stale_deletes")

	assert.Panics(t, func() { New(reg, "sim") })
}
