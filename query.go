package space

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/peterstace/space/geom"
)

// QueryKind names one of the query algorithms, for metrics.
type QueryKind int

const (
	QueryCell QueryKind = iota
	QueryBounds
	QueryRadius
)

func (k QueryKind) String() string {
	switch k {
	case QueryCell:
		return "cell"
	case QueryBounds:
		return "bounds"
	case QueryRadius:
		return "radius"
	}
	return "unknown"
}

// Pruning uses Touches rather than Overlaps: an item may sit exactly on the
// shared edge of two cells, or the probe may be degenerate, and both must
// still reach the leaf holding the item.

func (s *Space[T, V]) inBounds(n int, b geom.Bound[V], found *roaring.Bitmap) {
	nd := &s.nodes[n]
	if !nd.bound.Touches(b) {
		return
	}
	if nd.bound.FitsIn(b) {
		found.Or(nd.items)
		return
	}
	if !nd.isLeaf() {
		for c := 0; c < s.fanout; c++ {
			s.inBounds(nd.children+c, b, found)
		}
		return
	}
	it := nd.items.Iterator()
	for it.HasNext() {
		h := it.Next()
		if b.Contains(s.placed[h]) {
			found.Add(h)
		}
	}
}

// inRadius never takes the FitsIn shortcut, since a cell inside the probe
// cube can still have corners outside the radius.
func (s *Space[T, V]) inRadius(n int, probe geom.Bound[V], radiusSq float64, center V, found *roaring.Bitmap) {
	nd := &s.nodes[n]
	if !nd.bound.Touches(probe) {
		return
	}
	if !nd.isLeaf() {
		for c := 0; c < s.fanout; c++ {
			s.inRadius(nd.children+c, probe, radiusSq, center, found)
		}
		return
	}
	it := nd.items.Iterator()
	for it.HasNext() {
		h := it.Next()
		if center.DistSq(s.placed[h]) <= radiusSq {
			found.Add(h)
		}
	}
}
