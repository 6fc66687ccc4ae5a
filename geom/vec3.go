package geom

import (
	"math"
	"strconv"
)

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromDir creates a vector from spherical angles: theta is measured from
// the positive z axis and phi is the azimuth in the xy plane.
func Vec3FromDir(theta, phi, magnitude float64) Vec3 {
	z := math.Cos(theta) * magnitude
	xy := math.Sin(theta) * magnitude
	return Vec3{math.Cos(phi) * xy, math.Sin(phi) * xy, z}
}

func (v Vec3) Dims() int { return 3 }

// Axis returns the coordinate along axis i (0 is x, 1 is y, 2 is z).
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("geom: Vec3 axis out of range: " + strconv.Itoa(i))
}

// WithAxis returns a copy of v with the coordinate along axis i replaced.
func (v Vec3) WithAxis(i int, x float64) Vec3 {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic("geom: Vec3 axis out of range: " + strconv.Itoa(i))
	}
	return v
}

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3) Mul(w Vec3) Vec3 { return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }
func (v Vec3) Div(w Vec3) Vec3 { return Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z} }

func (v Vec3) Rem(w Vec3) Vec3 {
	return Vec3{math.Mod(v.X, w.X), math.Mod(v.Y, w.Y), math.Mod(v.Z, w.Z)}
}

func (v Vec3) Mod(w Vec3) Vec3 {
	return Vec3{mod(v.X, w.X), mod(v.Y, w.Y), mod(v.Z, w.Z)}
}

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Lerp(w Vec3, amount float64) Vec3 {
	return Vec3{
		v.X + (w.X-v.X)*amount,
		v.Y + (w.Y-v.Y)*amount,
		v.Z + (w.Z-v.Z)*amount,
	}
}

func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

func (v Vec3) Abs() Vec3   { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }
func (v Vec3) Floor() Vec3 { return Vec3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)} }
func (v Vec3) Ceil() Vec3  { return Vec3{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z)} }

func (v Vec3) Round() Vec3 {
	return Vec3{roundHalfUp(v.X), roundHalfUp(v.Y), roundHalfUp(v.Z)}
}

func (v Vec3) Norm(magnitude float64) Vec3 {
	m := v.Mag()
	if m == 0 {
		return v
	}
	return v.Scale(magnitude / m)
}

func (v Vec3) Limit(magnitude float64) Vec3 {
	m := v.Mag()
	if m < magnitude {
		return v
	}
	return v.Scale(magnitude / m)
}

func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Dist(w Vec3) float64 { return w.Sub(v).Mag() }

func (v Vec3) DistSq(w Vec3) float64 {
	dx, dy, dz := w.X-v.X, w.Y-v.Y, w.Z-v.Z
	return dx*dx + dy*dy + dz*dz
}

func (v Vec3) DistTaxi(w Vec3) float64 {
	return math.Abs(w.X-v.X) + math.Abs(w.Y-v.Y) + math.Abs(w.Z-v.Z)
}

func (v Vec3) Mag() float64   { return math.Sqrt(v.MagSq()) }
func (v Vec3) MagSq() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Volume returns X*Y*Z, treating v as the size of a box.
func (v Vec3) Volume() float64 { return v.X * v.Y * v.Z }

// XY, XZ and YZ project v onto the named plane.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }
func (v Vec3) YZ() Vec2 { return Vec2{v.Y, v.Z} }

func (v Vec3) String() string {
	return "Vec3(" + formatFloat(v.X) + "," + formatFloat(v.Y) + "," + formatFloat(v.Z) + ")"
}
