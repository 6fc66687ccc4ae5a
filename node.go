package space

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/peterstace/space/geom"
)

// noChildren marks a leaf node.
const noChildren = -1

// node is a slot in the arena. Internal nodes keep the union of their
// descendants' items, so items is always the full membership of the subtree.
type node[V geom.Vector[V]] struct {
	bound geom.Bound[V]
	items *roaring.Bitmap

	// children is the arena index of the first of fanout consecutive child
	// nodes, or noChildren.
	children int

	depthLimit    int
	leafItemLimit int
}

func (n *node[V]) isLeaf() bool {
	return n.children == noChildren
}

func (s *Space[T, V]) newNode(bound geom.Bound[V], depthLimit int) node[V] {
	limit := s.leafItemLimit
	if depthLimit == 0 {
		limit = math.MaxInt
	}
	return node[V]{
		bound:         bound,
		items:         roaring.New(),
		children:      noChildren,
		depthLimit:    depthLimit,
		leafItemLimit: limit,
	}
}

// add inserts handle h into the subtree rooted at n. It returns false if h
// is already present at n.
func (s *Space[T, V]) add(n int, h uint32) bool {
	if !s.nodes[n].items.CheckedAdd(h) {
		return false
	}
	s.adjustSize(n)
	if s.nodes[n].isLeaf() {
		return true
	}
	s.add(s.childContaining(n, s.placed[h]), h)
	return true
}

// delete removes handle h from the subtree rooted at n, looking for it first
// in the child that covers p. It returns false if h is not present at n.
func (s *Space[T, V]) delete(n int, h uint32, p V) bool {
	if !s.nodes[n].items.CheckedRemove(h) {
		return false
	}
	s.adjustSize(n)
	if s.nodes[n].isLeaf() {
		return true
	}

	// p is the item's current position, which is not where it was placed if
	// it moved since. Fall back to every child, predicting from the placement
	// below this node.
	if !s.delete(s.childContaining(n, p), h, p) {
		first := s.nodes[n].children
		for c := 0; c < s.fanout; c++ {
			s.delete(first+c, h, s.placed[h])
		}
		s.logger.LogStaleDelete(h, s.nodes[n].depthLimit)
		s.metrics.RecordStaleDelete()
	}

	if s.nodes[n].items.IsEmpty() {
		s.release(n)
	}
	return true
}

// adjustSize subdivides a full leaf and merges an internal node whose item
// count has fallen below half the leaf limit.
func (s *Space[T, V]) adjustSize(n int) {
	nd := &s.nodes[n]
	count := int(nd.items.GetCardinality())
	if nd.isLeaf() {
		if count >= nd.leafItemLimit {
			s.subdivide(n)
		}
		return
	}
	if float64(count) < float64(nd.leafItemLimit)*0.5 {
		s.merge(n)
	}
}

// subdivide gives the leaf n a block of children and places its items into
// them. The items of n itself are left as they are.
func (s *Space[T, V]) subdivide(n int) {
	first := s.allocBlock()
	parent := s.nodes[n]
	mid := parent.bound.Middle()
	for c := 0; c < s.fanout; c++ {
		s.nodes[first+c] = s.newNode(childBound(parent.bound, mid, c), parent.depthLimit-1)
	}
	s.nodes[n].children = first
	s.logger.LogSubdivide(parent.bound, parent.depthLimit, int(parent.items.GetCardinality()))
	s.metrics.RecordSubdivide(parent.depthLimit)

	it := parent.items.Iterator()
	for it.HasNext() {
		h := it.Next()
		s.add(s.childContaining(n, s.placed[h]), h)
	}
}

// merge turns n back into a leaf. Its items are already authoritative.
func (s *Space[T, V]) merge(n int) {
	s.logger.LogMerge(s.nodes[n].bound, s.nodes[n].depthLimit, int(s.nodes[n].items.GetCardinality()))
	s.metrics.RecordMerge(s.nodes[n].depthLimit)
	s.release(n)
}

// release discards the children of n and everything below them.
func (s *Space[T, V]) release(n int) {
	first := s.nodes[n].children
	if first == noChildren {
		return
	}
	for c := 0; c < s.fanout; c++ {
		s.release(first + c)
		s.nodes[first+c] = node[V]{children: noChildren}
	}
	s.nodes[n].children = noChildren
	s.free = append(s.free, first)
}

// allocBlock returns the index of fanout consecutive unused nodes, reusing a
// released block when there is one.
func (s *Space[T, V]) allocBlock() int {
	if k := len(s.free); k > 0 {
		first := s.free[k-1]
		s.free = s.free[:k-1]
		return first
	}
	first := len(s.nodes)
	s.nodes = append(s.nodes, make([]node[V], s.fanout)...)
	return first
}
