package geom

import "math"

// Line2 is a 2D line segment.
type Line2 struct {
	Start, End Vec2
}

func (l Line2) Length() float64   { return l.Start.Dist(l.End) }
func (l Line2) LengthSq() float64 { return l.Start.DistSq(l.End) }

// TaxiLength returns the manhattan length of the segment.
func (l Line2) TaxiLength() float64 { return l.Start.DistTaxi(l.End) }

func (l Line2) String() string {
	return "Line2(" + formatFloat(l.Start.X) + "," + formatFloat(l.Start.Y) + "," +
		formatFloat(l.End.X) + "," + formatFloat(l.End.Y) + ")"
}

// Intersection returns the point where l crosses other. ok is false if the
// segments do not cross or are parallel.
func (l Line2) Intersection(other Line2) (Vec2, bool) {
	return LineIntersection(l.Start, l.End, other.Start, other.End)
}

// LineIntersection returns the point where segment p0-p1 crosses segment
// p2-p3, endpoints included.
func LineIntersection(p0, p1, p2, p3 Vec2) (_ Vec2, ok bool) {
	denom := (p3.Y-p2.Y)*(p1.X-p0.X) - (p3.X-p2.X)*(p1.Y-p0.Y)
	if denom == 0 {
		return Vec2{}, false
	}
	a := ((p3.X-p2.X)*(p0.Y-p2.Y) - (p3.Y-p2.Y)*(p0.X-p2.X)) / denom
	b := ((p1.X-p0.X)*(p0.Y-p2.Y) - (p1.Y-p0.Y)*(p0.X-p2.X)) / denom
	if a < 0 || a > 1 || b < 0 || b > 1 {
		return Vec2{}, false
	}
	return Vec2{p0.X + a*(p1.X-p0.X), p0.Y + a*(p1.Y-p0.Y)}, true
}

// PointLocationAlongLine projects p onto the infinite line through a and b
// and returns its parameter: 0 at a, 1 at b. A degenerate line gives NaN.
func PointLocationAlongLine(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.MagSq()
	if lenSq == 0 {
		return math.NaN()
	}
	return p.Sub(a).Dot(ab) / lenSq
}
