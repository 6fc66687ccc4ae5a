// Package space implements an adaptive spatial partitioning index: a quadtree
// over geom.Vec2 or an octree over geom.Vec3.
//
// Every node holds the full set of items placed anywhere in its subtree.
// A leaf subdivides into 2^D equal children once it holds LeafItemLimit items
// and its children are merged away again once the count falls below half
// that limit.
//
// A Space is not safe for concurrent use. Callers must serialize mutations,
// and queries may only run concurrently with each other.
package space

import (
	"iter"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/peterstace/space/geom"
)

// Item is anything with a position. Items are told apart by Go equality, so
// pointer types give identity semantics: two distinct items at the same
// coordinates are two entries.
type Item[V geom.Vector[V]] interface {
	comparable
	Position() V
}

// Space is the index. Its nodes live in an arena and reference their
// children by index.
type Space[T Item[V], V geom.Vector[V]] struct {
	nodes  []node[V]
	free   []int // released child blocks, by index of their first node
	root   int
	fanout int

	handles     map[T]uint32
	items       []T
	placed      []V
	freeHandles []uint32

	leafItemLimit int
	logger        *Logger
	metrics       MetricsCollector
}

// New creates an empty index covering bound. A zero bound selects the unit
// bound. See WithDepthLimit and WithLeafItemLimit for the subdivision
// parameters.
func New[T Item[V], V geom.Vector[V]](bound geom.Bound[V], optFns ...Option) (*Space[T, V], error) {
	if bound.IsZero() {
		bound = geom.UnitBound[V]()
	}
	if !bound.Valid() {
		return nil, &ConfigError{Field: "bound", Value: bound.String(), cause: ErrInvalidBound}
	}
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	s := &Space[T, V]{
		fanout:        1 << geom.Dims[V](),
		handles:       make(map[T]uint32),
		leafItemLimit: o.leafItemLimit,
		logger:        o.logger,
		metrics:       o.metrics,
	}
	s.nodes = append(s.nodes, s.newNode(bound, o.depthLimit))
	s.root = 0
	return s, nil
}

// Bound returns the region covered by the root node.
func (s *Space[T, V]) Bound() geom.Bound[V] {
	return s.nodes[s.root].bound
}

// Len returns the number of items in the index.
func (s *Space[T, V]) Len() int {
	return len(s.handles)
}

// Has reports whether item is in the index.
func (s *Space[T, V]) Has(item T) bool {
	_, ok := s.handles[item]
	return ok
}

// Add inserts item at its current position. It returns false if item is
// already present. Items outside Bound are accepted and stored in the edge
// cell nearest to them; queries are only exact for items inside Bound.
func (s *Space[T, V]) Add(item T) bool {
	if _, ok := s.handles[item]; ok {
		s.metrics.RecordAdd(false)
		return false
	}
	h := s.register(item)
	s.add(s.root, h)
	s.metrics.RecordAdd(true)
	return true
}

// Delete removes item. It returns false if item is not present.
func (s *Space[T, V]) Delete(item T) bool {
	h, ok := s.handles[item]
	if !ok {
		s.metrics.RecordDelete(false)
		return false
	}
	s.delete(s.root, h, item.Position())
	s.unregister(item, h)
	s.metrics.RecordDelete(true)
	return true
}

// Move relocates item after the caller has changed its position. It returns
// false if item is not present. Changing an item's position without calling
// Move leaves it indexed at its old position.
func (s *Space[T, V]) Move(item T) bool {
	h, ok := s.handles[item]
	if !ok {
		s.metrics.RecordMove(false)
		return false
	}
	p := item.Position()
	s.delete(s.root, h, p)
	s.placed[h] = p
	s.add(s.root, h)
	s.metrics.RecordMove(true)
	return true
}

// All iterates over every item in the index, in no particular order.
func (s *Space[T, V]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.nodes[s.root].items.Iterator()
		for it.HasNext() {
			if !yield(s.items[it.Next()]) {
				return
			}
		}
	}
}

// InCell returns the items sharing the deepest cell that contains p. The
// result is empty if p lies outside the index bound.
func (s *Space[T, V]) InCell(p V) []T {
	start := time.Now()
	var out []T
	if s.nodes[s.root].bound.Contains(p) {
		out = s.collect(s.nodes[s.leafContaining(s.root, p)].items)
	}
	s.metrics.RecordQuery(QueryCell, len(out), time.Since(start))
	return out
}

// InBounds returns the items whose position lies inside b, edges included.
// If Bound fits in b, every item is returned, including items added outside
// Bound that b does not contain.
func (s *Space[T, V]) InBounds(b geom.Bound[V]) []T {
	start := time.Now()
	found := roaring.New()
	s.inBounds(s.root, b, found)
	out := s.collect(found)
	s.metrics.RecordQuery(QueryBounds, len(out), time.Since(start))
	return out
}

// InRadius returns the items within distance radius of center, the boundary
// included. A negative radius matches nothing.
func (s *Space[T, V]) InRadius(radius float64, center V) []T {
	start := time.Now()
	var out []T
	if radius >= 0 {
		found := roaring.New()
		s.inRadius(s.root, geom.Cube(center, radius), radius*radius, center, found)
		out = s.collect(found)
	}
	s.metrics.RecordQuery(QueryRadius, len(out), time.Since(start))
	return out
}

func (s *Space[T, V]) register(item T) uint32 {
	var h uint32
	if n := len(s.freeHandles); n > 0 {
		h = s.freeHandles[n-1]
		s.freeHandles = s.freeHandles[:n-1]
		s.items[h] = item
		s.placed[h] = item.Position()
	} else {
		h = uint32(len(s.items))
		s.items = append(s.items, item)
		s.placed = append(s.placed, item.Position())
	}
	s.handles[item] = h
	return h
}

func (s *Space[T, V]) unregister(item T, h uint32) {
	delete(s.handles, item)
	var zero T
	s.items[h] = zero
	s.freeHandles = append(s.freeHandles, h)
}

func (s *Space[T, V]) collect(b *roaring.Bitmap) []T {
	if b.IsEmpty() {
		return nil
	}
	out := make([]T, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, s.items[it.Next()])
	}
	return out
}
