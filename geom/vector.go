// Package geom provides the 2D and 3D vector and axis-aligned bound
// primitives shared by the rest of the module.
package geom

// Vector is satisfied by Vec2 and Vec3. It lets bounds, the spatial index and
// the verlet solver be written once for both dimensions.
type Vector[V any] interface {
	Vec2 | Vec3

	// Dims is the number of axes (2 or 3). It does not depend on the receiver.
	Dims() int
	Axis(i int) float64
	WithAxis(i int, x float64) V

	Add(V) V
	Sub(V) V
	Scale(k float64) V
	Dot(V) float64
	Dist(V) float64
	DistSq(V) float64
	Mag() float64
	Norm(magnitude float64) V
	String() string
}

// Dims returns the number of axes of V.
func Dims[V Vector[V]]() int {
	var v V
	return v.Dims()
}

// Splat returns a vector with every coordinate set to x.
func Splat[V Vector[V]](x float64) V {
	var v V
	for i := 0; i < v.Dims(); i++ {
		v = v.WithAxis(i, x)
	}
	return v
}
