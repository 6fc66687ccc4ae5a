// Package verlet is a mass-spring solver using verlet integration. Points
// carry their velocity implicitly as the difference between their current
// and previous positions, and links pull or push pairs of points towards an
// ideal length.
package verlet

import (
	"math"
	"slices"

	"github.com/peterstace/space/geom"
)

// Solver owns a set of points and the links between them. Points and links
// are stepped in the order they were added.
type Solver[V geom.Vector[V]] struct {
	points []*Point[V]
	links  []*Link[V]
}

// New returns an empty solver.
func New[V geom.Vector[V]]() *Solver[V] {
	return &Solver[V]{}
}

// PointOptions configures AddPoint. Zero fields take their defaults.
type PointOptions[V geom.Vector[V]] struct {
	Position V
	Mass     float64 // default 1
}

// LinkOptions configures AddLink. Zero fields take their defaults.
type LinkOptions[V geom.Vector[V]] struct {
	A, B *Point[V]

	// IdealLength defaults to the distance between A and B when the link is
	// added. Linking two points at the same position without an explicit
	// IdealLength gives an ideal length of 0. Its deformation is then
	// NaN or infinite: the link exerts no force while the points coincide and
	// breaks as soon as they separate.
	IdealLength   float64
	Stiffness     float64 // default 1
	BreakingForce float64 // default 1
}

// Point is a mass in the solver.
type Point[V geom.Vector[V]] struct {
	solver *Solver[V]
	links  []*Link[V]

	position     V
	lastPosition V
	force        V
	mass         float64
}

// Link is a spring between two points.
type Link[V geom.Vector[V]] struct {
	solver *Solver[V]
	a, b   *Point[V]

	idealLength   float64
	stiffness     float64
	breakingForce float64
}

// AddPoint adds a point at rest.
func (s *Solver[V]) AddPoint(opts PointOptions[V]) *Point[V] {
	p := &Point[V]{
		solver:       s,
		position:     opts.Position,
		lastPosition: opts.Position,
		mass:         opts.Mass,
	}
	if p.mass == 0 {
		p.mass = 1
	}
	s.points = append(s.points, p)
	return p
}

// AddLink links two points of the solver.
func (s *Solver[V]) AddLink(opts LinkOptions[V]) *Link[V] {
	l := &Link[V]{
		solver:        s,
		a:             opts.A,
		b:             opts.B,
		idealLength:   opts.IdealLength,
		stiffness:     opts.Stiffness,
		breakingForce: opts.BreakingForce,
	}
	if l.idealLength == 0 {
		l.idealLength = opts.A.lastPosition.Dist(opts.B.lastPosition)
	}
	if l.stiffness == 0 {
		l.stiffness = 1
	}
	if l.breakingForce == 0 {
		l.breakingForce = 1
	}
	s.links = append(s.links, l)
	opts.A.links = append(opts.A.links, l)
	opts.B.links = append(opts.B.links, l)
	return l
}

// Step advances the simulation by one tick: points coast along their
// velocity, links compute their forces (breaking if overloaded), then the
// forces are applied.
func (s *Solver[V]) Step() {
	for _, p := range s.points {
		p.stepPosition()
	}
	for _, l := range slices.Clone(s.links) {
		l.updateForce()
	}
	for _, p := range s.points {
		p.applyForce()
	}
}

// Points returns the points in the order they were added.
func (s *Solver[V]) Points() []*Point[V] {
	return slices.Clone(s.points)
}

// Links returns the unbroken links in the order they were added.
func (s *Solver[V]) Links() []*Link[V] {
	return slices.Clone(s.links)
}

func (p *Point[V]) Position() V { return p.position }

// Velocity is the displacement over the last step.
func (p *Point[V]) Velocity() V {
	return p.position.Sub(p.lastPosition)
}

func (p *Point[V]) SetVelocity(v V) {
	p.lastPosition = p.position.Sub(v)
}

// Translate moves the point without changing its velocity.
func (p *Point[V]) Translate(d V) {
	p.position = p.position.Add(d)
	p.lastPosition = p.lastPosition.Add(d)
}

// Delete removes the point and every link attached to it.
func (p *Point[V]) Delete() {
	p.solver.points = remove(p.solver.points, p)
	for _, l := range slices.Clone(p.links) {
		l.Delete()
	}
}

func (p *Point[V]) stepPosition() {
	v := p.Velocity()
	p.lastPosition = p.position
	p.position = p.position.Add(v)
}

func (p *Point[V]) applyForce() {
	p.position = p.position.Add(p.force.Scale(1 / p.mass))
	var zero V
	p.force = zero
}

func (l *Link[V]) Points() (a, b *Point[V]) { return l.a, l.b }

func (l *Link[V]) IdealLength() float64 { return l.idealLength }

// TrueLength is the current distance between the linked points.
func (l *Link[V]) TrueLength() float64 {
	return l.a.position.Dist(l.b.position)
}

// Delete removes the link from the solver and from both of its points.
func (l *Link[V]) Delete() {
	l.solver.links = remove(l.solver.links, l)
	l.a.links = remove(l.a.links, l)
	l.b.links = remove(l.b.links, l)
}

// updateForce adds the spring force to both points. The response is linear
// for small deformations and quadratic for large ones.
func (l *Link[V]) updateForce() {
	deformation := (l.TrueLength() - l.idealLength) / l.idealLength * l.stiffness
	force := deformation*0.2 + deformation*math.Abs(deformation)
	if force > l.breakingForce {
		l.Delete()
		return
	}
	f := l.b.position.Sub(l.a.position).Norm(force)
	l.a.force = l.a.force.Add(f)
	l.b.force = l.b.force.Sub(f)
}

func remove[E comparable](s []E, e E) []E {
	if i := slices.Index(s, e); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}
