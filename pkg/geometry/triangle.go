package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle is a flat triangle defined by three object-space points
type Triangle struct {
	base
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle and precomputes its edges and face normal
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		base:   newBase(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// Kind returns the shape name
func (tr *Triangle) Kind() string { return "triangle" }

// Intersect implements Shape
func (tr *Triangle) Intersect(ray core.Ray) Intersections { return intersect(tr, ray) }

// NormalAt implements Shape
func (tr *Triangle) NormalAt(p core.Tuple) core.Tuple { return normalAt(tr, &tr.base, p) }

// localIntersect uses the Möller-Trumbore algorithm
func (tr *Triangle) localIntersect(ray core.Ray) []float64 {
	dirCrossE2 := ray.Direction.Cross(tr.E2)
	det := tr.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	return []float64{f * tr.E2.Dot(originCrossE1)}
}

func (tr *Triangle) localNormalAt(core.Tuple) core.Tuple {
	return tr.Normal
}
