package space

import "github.com/peterstace/space/geom"

// childIndex gives the child of a node with middle mid that covers p. Bit i
// of the index is set when p is on the high side of mid along axis i, with
// ties going high: in 2D, 0 is low x low y, 1 high x low y, 2 low x high y
// and 3 high x high y.
func childIndex[V geom.Vector[V]](mid, p V) int {
	var idx int
	for i := 0; i < p.Dims(); i++ {
		if p.Axis(i) >= mid.Axis(i) {
			idx |= 1 << i
		}
	}
	return idx
}

// childBound returns the bound of child c of a node covering b, where mid is
// the middle of b.
func childBound[V geom.Vector[V]](b geom.Bound[V], mid V, c int) geom.Bound[V] {
	out := b
	for i := 0; i < mid.Dims(); i++ {
		if c&(1<<i) == 0 {
			out.High = out.High.WithAxis(i, mid.Axis(i))
		} else {
			out.Low = out.Low.WithAxis(i, mid.Axis(i))
		}
	}
	return out
}

// childContaining returns the arena index of the child of internal node n
// that covers p.
func (s *Space[T, V]) childContaining(n int, p V) int {
	nd := &s.nodes[n]
	return nd.children + childIndex(nd.bound.Middle(), p)
}

// leafContaining descends from n to the leaf that covers p.
func (s *Space[T, V]) leafContaining(n int, p V) int {
	for !s.nodes[n].isLeaf() {
		n = s.childContaining(n, p)
	}
	return n
}
