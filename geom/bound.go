package geom

import (
	"math"
	"strconv"
	"strings"
)

// Bound is an axis-aligned bounding box. Low holds the minimum coordinate on
// every axis and High the maximum.
type Bound[V Vector[V]] struct {
	Low, High V
}

// NewBound creates a bound from its low and high corners.
func NewBound[V Vector[V]](low, high V) Bound[V] {
	return Bound[V]{Low: low, High: high}
}

// BoundTo creates a bound anchored at the origin and extending to high.
func BoundTo[V Vector[V]](high V) Bound[V] {
	var low V
	return Bound[V]{Low: low, High: high}
}

// UnitBound returns the bound from the origin to 1 on every axis.
func UnitBound[V Vector[V]]() Bound[V] {
	return BoundTo(Splat[V](1))
}

// Cube returns the bound centred on center that extends half in every
// direction along each axis.
func Cube[V Vector[V]](center V, half float64) Bound[V] {
	d := Splat[V](half)
	return Bound[V]{Low: center.Sub(d), High: center.Add(d)}
}

func NewBound2(lowX, lowY, highX, highY float64) Bound[Vec2] {
	return Bound[Vec2]{Low: Vec2{lowX, lowY}, High: Vec2{highX, highY}}
}

func NewBound3(lowX, lowY, lowZ, highX, highY, highZ float64) Bound[Vec3] {
	return Bound[Vec3]{Low: Vec3{lowX, lowY, lowZ}, High: Vec3{highX, highY, highZ}}
}

// IsZero reports whether both corners are at the origin.
func (b Bound[V]) IsZero() bool {
	for i := 0; i < b.Low.Dims(); i++ {
		if b.Low.Axis(i) != 0 || b.High.Axis(i) != 0 {
			return false
		}
	}
	return true
}

// Valid reports whether Low <= High on every axis and no coordinate is NaN.
func (b Bound[V]) Valid() bool {
	for i := 0; i < b.Low.Dims(); i++ {
		lo, hi := b.Low.Axis(i), b.High.Axis(i)
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside b. Edges are inclusive.
func (b Bound[V]) Contains(p V) bool {
	for i := 0; i < p.Dims(); i++ {
		x := p.Axis(i)
		if x < b.Low.Axis(i) || x > b.High.Axis(i) {
			return false
		}
	}
	return true
}

// FitsIn reports whether b lies entirely inside other. Edges are inclusive.
func (b Bound[V]) FitsIn(other Bound[V]) bool {
	for i := 0; i < b.Low.Dims(); i++ {
		if other.Low.Axis(i) > b.Low.Axis(i) || other.High.Axis(i) < b.High.Axis(i) {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and other intersect. Bounds that only touch at
// an edge or corner do not overlap, but a zero-size bound strictly inside
// other does.
func (b Bound[V]) Overlaps(other Bound[V]) bool {
	for i := 0; i < b.Low.Dims(); i++ {
		if b.Low.Axis(i) >= other.High.Axis(i) || b.High.Axis(i) <= other.Low.Axis(i) {
			return false
		}
	}
	return true
}

// Touches is like Overlaps but also true for bounds sharing only an edge,
// a corner, or for degenerate bounds lying inside the other.
func (b Bound[V]) Touches(other Bound[V]) bool {
	for i := 0; i < b.Low.Dims(); i++ {
		if b.Low.Axis(i) > other.High.Axis(i) || b.High.Axis(i) < other.Low.Axis(i) {
			return false
		}
	}
	return true
}

// Overlap returns the intersection of b and other. ok is false when they do
// not overlap.
func (b Bound[V]) Overlap(other Bound[V]) (_ Bound[V], ok bool) {
	if !b.Overlaps(other) {
		return Bound[V]{}, false
	}
	out := b
	for i := 0; i < b.Low.Dims(); i++ {
		out.Low = out.Low.WithAxis(i, math.Max(b.Low.Axis(i), other.Low.Axis(i)))
		out.High = out.High.WithAxis(i, math.Min(b.High.Axis(i), other.High.Axis(i)))
	}
	return out, true
}

// Union gives the smallest bound containing both b and other.
func (b Bound[V]) Union(other Bound[V]) Bound[V] {
	out := b
	for i := 0; i < b.Low.Dims(); i++ {
		out.Low = out.Low.WithAxis(i, math.Min(b.Low.Axis(i), other.Low.Axis(i)))
		out.High = out.High.WithAxis(i, math.Max(b.High.Axis(i), other.High.Axis(i)))
	}
	return out
}

// Middle returns the centre point of b.
func (b Bound[V]) Middle() V {
	return b.Low.Add(b.High).Scale(0.5)
}

func (b Bound[V]) Size() V {
	return b.High.Sub(b.Low)
}

// Measure is the area of a 2D bound or the volume of a 3D one.
func (b Bound[V]) Measure() float64 {
	m := 1.0
	for i := 0; i < b.Low.Dims(); i++ {
		m *= b.High.Axis(i) - b.Low.Axis(i)
	}
	return m
}

func (b Bound[V]) String() string {
	var sb strings.Builder
	sb.WriteString("Bound")
	sb.WriteString(strconv.Itoa(b.Low.Dims()))
	sb.WriteByte('(')
	for j, v := range [2]V{b.Low, b.High} {
		for i := 0; i < v.Dims(); i++ {
			if j > 0 || i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatFloat(v.Axis(i)))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
