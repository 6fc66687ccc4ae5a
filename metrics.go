package space

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives index events. Implement it to feed a monitoring
// system; see the prommetrics package for Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each Add. ok is false for duplicates.
	RecordAdd(ok bool)

	// RecordDelete is called after each Delete. ok is false for absent items.
	RecordDelete(ok bool)

	// RecordMove is called after each Move. ok is false for absent items.
	RecordMove(ok bool)

	// RecordQuery is called after each query with the number of results.
	RecordQuery(kind QueryKind, results int, duration time.Duration)

	// RecordSubdivide is called when a node with the given remaining depth
	// limit splits.
	RecordSubdivide(depthLimit int)

	// RecordMerge is called when a node with the given remaining depth limit
	// drops its children after falling below half the leaf item limit.
	RecordMerge(depthLimit int)

	// RecordStaleDelete is called when a delete missed the predicted child.
	RecordStaleDelete()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(bool)                            {}
func (NoopMetricsCollector) RecordDelete(bool)                         {}
func (NoopMetricsCollector) RecordMove(bool)                           {}
func (NoopMetricsCollector) RecordQuery(QueryKind, int, time.Duration) {}
func (NoopMetricsCollector) RecordSubdivide(int)                       {}
func (NoopMetricsCollector) RecordMerge(int)                           {}
func (NoopMetricsCollector) RecordStaleDelete()                        {}

// BasicMetricsCollector counts events in memory.
type BasicMetricsCollector struct {
	Adds          atomic.Int64
	AddsRejected  atomic.Int64
	Deletes       atomic.Int64
	DeletesMissed atomic.Int64
	Moves         atomic.Int64
	MovesMissed   atomic.Int64
	Queries       atomic.Int64
	QueryResults  atomic.Int64
	QueryNanos    atomic.Int64
	Subdivisions  atomic.Int64
	Merges        atomic.Int64
	StaleDeletes  atomic.Int64
}

func (b *BasicMetricsCollector) RecordAdd(ok bool) {
	if ok {
		b.Adds.Add(1)
	} else {
		b.AddsRejected.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordDelete(ok bool) {
	if ok {
		b.Deletes.Add(1)
	} else {
		b.DeletesMissed.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordMove(ok bool) {
	if ok {
		b.Moves.Add(1)
	} else {
		b.MovesMissed.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordQuery(_ QueryKind, results int, duration time.Duration) {
	b.Queries.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryNanos.Add(duration.Nanoseconds())
}

func (b *BasicMetricsCollector) RecordSubdivide(int) { b.Subdivisions.Add(1) }
func (b *BasicMetricsCollector) RecordMerge(int)     { b.Merges.Add(1) }
func (b *BasicMetricsCollector) RecordStaleDelete()  { b.StaleDeletes.Add(1) }
