package space

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/space/geom"
)

type body struct {
	pos geom.Vec2
}

func (b *body) Position() geom.Vec2 { return b.pos }

type body3 struct {
	pos geom.Vec3
}

func (b *body3) Position() geom.Vec3 { return b.pos }

func TestRandom(t *testing.T) {
	for depthLimit := 0; depthLimit <= 4; depthLimit++ {
		for leafLimit := 1; leafLimit <= 6; leafLimit++ {
			name := fmt.Sprintf("depth_%d_leaf_%d", depthLimit, leafLimit)
			t.Run(name, func(t *testing.T) {
				rnd := rand.New(rand.NewSource(int64(depthLimit*10 + leafLimit)))
				s, err := New[*body](geom.NewBound2(0, 0, 10, 10),
					WithDepthLimit(depthLimit), WithLeafItemLimit(leafLimit))
				require.NoError(t, err)

				var present []*body
				for op := 0; op < 300; op++ {
					switch r := rnd.Intn(10); {
					case r < 5 || len(present) == 0:
						b := &body{pos: randomPoint(rnd, 10)}
						require.True(t, s.Add(b))
						require.False(t, s.Add(b))
						present = append(present, b)
					case r < 8:
						i := rnd.Intn(len(present))
						require.True(t, s.Delete(present[i]))
						require.False(t, s.Delete(present[i]))
						present = append(present[:i], present[i+1:]...)
					default:
						b := present[rnd.Intn(len(present))]
						b.pos = randomPoint(rnd, 10)
						require.True(t, s.Move(b))
					}
					checkInvariants(t, s)
					require.Equal(t, len(present), s.Len())
				}

				for i := 0; i < 20; i++ {
					lo := randomPoint(rnd, 10)
					q := geom.NewBound(lo, lo.Add(randomPoint(rnd, 5)))
					assert.ElementsMatch(t, bruteBounds(present, q), s.InBounds(q), "bounds %v", q)

					center := randomPoint(rnd, 10)
					radius := float64(rnd.Intn(8)) * 0.5
					assert.ElementsMatch(t, bruteRadius(present, radius, center), s.InRadius(radius, center),
						"radius %v around %v", radius, center)
				}
				assert.ElementsMatch(t, present, s.InBounds(s.Bound()))
			})
		}
	}
}

func TestRandom3D(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	s, err := New[*body3](geom.NewBound3(-8, -8, -8, 8, 8, 8), WithLeafItemLimit(3))
	require.NoError(t, err)

	var present []*body3
	for i := 0; i < 400; i++ {
		b := &body3{pos: geom.V3(
			float64(rnd.Intn(33))*0.5-8,
			float64(rnd.Intn(33))*0.5-8,
			float64(rnd.Intn(33))*0.5-8,
		)}
		require.True(t, s.Add(b))
		present = append(present, b)
	}
	for _, b := range present[:150] {
		require.True(t, s.Delete(b))
	}
	present = present[150:]
	checkInvariants(t, s)

	for i := 0; i < 30; i++ {
		center := geom.V3(float64(rnd.Intn(17)-8), float64(rnd.Intn(17)-8), float64(rnd.Intn(17)-8))
		radius := float64(rnd.Intn(10)) * 0.5
		assert.ElementsMatch(t, bruteRadius(present, radius, center), s.InRadius(radius, center))

		q := geom.Cube(center, radius)
		assert.ElementsMatch(t, bruteBounds(present, q), s.InBounds(q))
	}
}

// randomPoint returns a point on a half unit grid so that items regularly
// land on cell edges and on each other.
func randomPoint(rnd *rand.Rand, size int) geom.Vec2 {
	return geom.V2(float64(rnd.Intn(2*size+1))*0.5, float64(rnd.Intn(2*size+1))*0.5)
}

func bruteBounds[T Item[V], V geom.Vector[V]](items []T, b geom.Bound[V]) []T {
	var out []T
	for _, item := range items {
		if b.Contains(item.Position()) {
			out = append(out, item)
		}
	}
	return out
}

func bruteRadius[T Item[V], V geom.Vector[V]](items []T, radius float64, center V) []T {
	var out []T
	for _, item := range items {
		if item.Position().DistSq(center) <= radius*radius {
			out = append(out, item)
		}
	}
	return out
}

func checkInvariants[T Item[V], V geom.Vector[V]](t *testing.T, s *Space[T, V]) {
	t.Helper()

	require.Equal(t, len(s.handles), int(s.nodes[s.root].items.GetCardinality()))
	for item, h := range s.handles {
		require.Equal(t, item, s.items[h])
		require.True(t, s.nodes[s.root].items.Contains(h))
	}

	// Each node should be reached at most once from the root, and every node
	// should either be reachable or belong to a released block.
	visited := make(map[int]bool)
	var recurse func(int)
	recurse = func(n int) {
		require.False(t, visited[n], "node %d visited twice", n)
		visited[n] = true
		nd := s.nodes[n]
		count := int(nd.items.GetCardinality())

		if nd.isLeaf() {
			if nd.depthLimit == 0 {
				require.Equal(t, math.MaxInt, nd.leafItemLimit)
			} else {
				require.Less(t, count, nd.leafItemLimit, "full leaf %v", nd.bound)
			}
			it := nd.items.Iterator()
			for it.HasNext() {
				p := s.placed[it.Next()]
				if s.Bound().Contains(p) {
					require.True(t, nd.bound.Contains(p), "%v outside leaf %v", p, nd.bound)
				}
			}
			return
		}

		require.Greater(t, nd.depthLimit, 0)
		require.GreaterOrEqual(t, float64(count), float64(nd.leafItemLimit)*0.5)

		// Children partition the parent's items.
		var childTotal int
		mid := nd.bound.Middle()
		for c := 0; c < s.fanout; c++ {
			child := s.nodes[nd.children+c]
			require.Equal(t, childBound(nd.bound, mid, c), child.bound)
			require.Equal(t, nd.depthLimit-1, child.depthLimit)
			childTotal += int(child.items.GetCardinality())
			require.True(t, roaring.AndNot(child.items, nd.items).IsEmpty())
			recurse(nd.children + c)
		}
		require.Equal(t, count, childTotal)
	}
	recurse(s.root)

	for _, first := range s.free {
		for c := 0; c < s.fanout; c++ {
			require.False(t, visited[first+c], "released node %d is reachable", first+c)
			visited[first+c] = true
		}
	}
	require.Len(t, visited, len(s.nodes))
}
