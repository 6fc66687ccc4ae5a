// Package prommetrics reports spatial index events to Prometheus.
package prommetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/peterstace/space"
)

const (
	resultLabel     = "result"
	kindLabel       = "kind"
	depthLimitLabel = "depth_limit"

	resultOK     = "ok"
	resultMissed = "missed"
)

// Collector implements space.MetricsCollector on top of Prometheus metrics.
type Collector struct {
	adds         *prometheus.CounterVec
	deletes      *prometheus.CounterVec
	moves        *prometheus.CounterVec
	queries      *prometheus.CounterVec
	queryResults *prometheus.HistogramVec
	queryLatency *prometheus.HistogramVec
	subdivisions *prometheus.CounterVec
	merges       *prometheus.CounterVec
	staleDeletes prometheus.Counter
}

var _ space.MetricsCollector = (*Collector)(nil)

// New registers the index metrics with reg, which defaults to
// prometheus.DefaultRegisterer when nil. Every metric name is prefixed with
// namespace. Registering two collectors with the same namespace on one
// registry panics.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		adds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_adds",
			Help:      "The number of Add calls, by whether the item was added.",
		}, []string{
			resultLabel,
		}),

		deletes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_deletes",
			Help:      "The number of Delete calls, by whether the item was present.",
		}, []string{
			resultLabel,
		}),

		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_moves",
			Help:      "The number of Move calls, by whether the item was present.",
		}, []string{
			resultLabel,
		}),

		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_queries",
			Help:      "The number of queries run.",
		}, []string{
			kindLabel,
		}),

		queryResults: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "space_query_results",
			Help:      "The number of items returned by a query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{
			kindLabel,
		}),

		queryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "space_query_latency",
			Help:      "The time to run a query.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{
			kindLabel,
		}),

		subdivisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_subdivisions",
			Help:      "The number of leaves split into children, by remaining depth limit.",
		}, []string{
			depthLimitLabel,
		}),

		merges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_merges",
			Help:      "The number of nodes merged back into a leaf, by remaining depth limit.",
		}, []string{
			depthLimitLabel,
		}),

		staleDeletes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_stale_deletes",
			Help:      "The number of deletes that had to search every child of a node.",
		}),
	}
}

func (c *Collector) RecordAdd(ok bool) {
	c.adds.With(prometheus.Labels{
		resultLabel: result(ok),
	}).Inc()
}

func (c *Collector) RecordDelete(ok bool) {
	c.deletes.With(prometheus.Labels{
		resultLabel: result(ok),
	}).Inc()
}

func (c *Collector) RecordMove(ok bool) {
	c.moves.With(prometheus.Labels{
		resultLabel: result(ok),
	}).Inc()
}

func (c *Collector) RecordQuery(kind space.QueryKind, results int, duration time.Duration) {
	labels := prometheus.Labels{
		kindLabel: kind.String(),
	}
	c.queries.With(labels).Inc()
	c.queryResults.With(labels).Observe(float64(results))
	c.queryLatency.With(labels).Observe(duration.Seconds())
}

func (c *Collector) RecordSubdivide(depthLimit int) {
	c.subdivisions.With(prometheus.Labels{
		depthLimitLabel: strconv.Itoa(depthLimit),
	}).Inc()
}

func (c *Collector) RecordMerge(depthLimit int) {
	c.merges.With(prometheus.Labels{
		depthLimitLabel: strconv.Itoa(depthLimit),
	}).Inc()
}

func (c *Collector) RecordStaleDelete() {
	c.staleDeletes.Inc()
}

func result(ok bool) string {
	if ok {
		return resultOK
	}
	return resultMissed
}
