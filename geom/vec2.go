package geom

import (
	"math"
	"strconv"
)

// Vec2 is a 2D vector or point. All methods return new values and never
// modify the receiver.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Vec2FromDir creates a vector of the given magnitude pointing at direction
// (radians, counter-clockwise from the positive x axis).
func Vec2FromDir(direction, magnitude float64) Vec2 {
	return Vec2{math.Cos(direction) * magnitude, math.Sin(direction) * magnitude}
}

func (v Vec2) Dims() int { return 2 }

// Axis returns the coordinate along axis i (0 is x, 1 is y).
func (v Vec2) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("geom: Vec2 axis out of range: " + strconv.Itoa(i))
}

// WithAxis returns a copy of v with the coordinate along axis i replaced.
func (v Vec2) WithAxis(i int, x float64) Vec2 {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panic("geom: Vec2 axis out of range: " + strconv.Itoa(i))
	}
	return v
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns the component-wise product.
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{v.X * w.X, v.Y * w.Y} }

// Div returns the component-wise quotient.
func (v Vec2) Div(w Vec2) Vec2 { return Vec2{v.X / w.X, v.Y / w.Y} }

// Rem returns the component-wise remainder, carrying the sign of v.
func (v Vec2) Rem(w Vec2) Vec2 {
	return Vec2{math.Mod(v.X, w.X), math.Mod(v.Y, w.Y)}
}

// Mod returns the component-wise modulus, always carrying the sign of w.
func (v Vec2) Mod(w Vec2) Vec2 {
	return Vec2{mod(v.X, w.X), mod(v.Y, w.Y)}
}

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Lerp linearly interpolates from v towards w by amount.
func (v Vec2) Lerp(w Vec2, amount float64) Vec2 {
	return Vec2{v.X + (w.X-v.X)*amount, v.Y + (w.Y-v.Y)*amount}
}

func (v Vec2) Min(w Vec2) Vec2 { return Vec2{math.Min(v.X, w.X), math.Min(v.Y, w.Y)} }
func (v Vec2) Max(w Vec2) Vec2 { return Vec2{math.Max(v.X, w.X), math.Max(v.Y, w.Y)} }
func (v Vec2) Abs() Vec2       { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vec2) Floor() Vec2     { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }
func (v Vec2) Ceil() Vec2      { return Vec2{math.Ceil(v.X), math.Ceil(v.Y)} }

// Round rounds each component, with halves rounded up.
func (v Vec2) Round() Vec2 { return Vec2{roundHalfUp(v.X), roundHalfUp(v.Y)} }

// Norm scales v to the given magnitude. The zero vector is returned as is.
func (v Vec2) Norm(magnitude float64) Vec2 {
	m := v.Mag()
	if m == 0 {
		return v
	}
	return v.Scale(magnitude / m)
}

// Limit scales v down to magnitude if it is longer than that.
func (v Vec2) Limit(magnitude float64) Vec2 {
	m := v.Mag()
	if m < magnitude {
		return v
	}
	return v.Scale(magnitude / m)
}

// RotateTo points v at direction while keeping its magnitude.
func (v Vec2) RotateTo(direction float64) Vec2 {
	return Vec2FromDir(direction, v.Mag())
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

func (v Vec2) Dist(w Vec2) float64 { return math.Hypot(w.X-v.X, w.Y-v.Y) }

func (v Vec2) DistSq(w Vec2) float64 {
	dx, dy := w.X-v.X, w.Y-v.Y
	return dx*dx + dy*dy
}

// DistTaxi returns the manhattan distance between v and w.
func (v Vec2) DistTaxi(w Vec2) float64 {
	return math.Abs(w.X-v.X) + math.Abs(w.Y-v.Y)
}

func (v Vec2) Mag() float64   { return math.Hypot(v.X, v.Y) }
func (v Vec2) MagSq() float64 { return v.X*v.X + v.Y*v.Y }

// Dir returns the angle of v in radians.
func (v Vec2) Dir() float64 { return math.Atan2(v.Y, v.X) }

// Area returns X*Y, treating v as the size of a rectangle.
func (v Vec2) Area() float64 { return v.X * v.Y }

// YX returns v with its components swapped.
func (v Vec2) YX() Vec2 { return Vec2{v.Y, v.X} }

func (v Vec2) String() string {
	return "Vec2(" + formatFloat(v.X) + "," + formatFloat(v.Y) + ")"
}

func mod(x, d float64) float64 {
	return math.Mod(math.Mod(x, d)+d, d)
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
