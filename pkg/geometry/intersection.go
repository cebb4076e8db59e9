package geometry

import (
	"fmt"
	"sort"
)

// Intersection records where along a ray a shape was hit
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates an intersection at t with the given shape
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Equal compares t and shape identity
func (i Intersection) Equal(other Intersection) bool {
	if i.Object == nil || other.Object == nil {
		return i.T == other.T && i.Object == nil && other.Object == nil
	}
	return i.T == other.T && i.Object.ID() == other.Object.ID()
}

func (i Intersection) String() string {
	if i.Object == nil {
		return fmt.Sprintf("intersection(t=%.5f)", i.T)
	}
	return fmt.Sprintf("intersection(t=%.5f, %s %s)", i.T, i.Object.Kind(), i.Object.ID())
}

// Intersections is a list of intersections, kept ascending by t
type Intersections []Intersection

// NewIntersections copies xs and sorts it by t. Ties keep their input order.
func NewIntersections(xs ...Intersection) Intersections {
	out := make(Intersections, len(xs))
	copy(out, xs)
	out.Sort()
	return out
}

// Sort orders the list by t in place, keeping the relative order of equal t
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the first intersection with t > 0.
// The list must already be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
