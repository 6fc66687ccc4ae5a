package space

import "github.com/peterstace/space/geom"

// Load creates an index covering bound and adds items to it. Duplicate items
// are added once.
func Load[T Item[V], V geom.Vector[V]](bound geom.Bound[V], items []T, optFns ...Option) (*Space[T, V], error) {
	s, err := New[T](bound, optFns...)
	if err != nil {
		return nil, err
	}
	s.AddAll(items)
	return s, nil
}

// AddAll adds every item that is not already present and returns how many
// were added.
func (s *Space[T, V]) AddAll(items []T) int {
	var added int
	for _, item := range items {
		if s.Add(item) {
			added++
		}
	}
	return added
}
