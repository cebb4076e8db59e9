package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct {
	base
}

// NewPlane creates a new plane with the default material and identity transform
func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

// Kind returns the shape name
func (p *Plane) Kind() string { return "plane" }

// Intersect implements Shape
func (p *Plane) Intersect(ray core.Ray) Intersections { return intersect(p, ray) }

// NormalAt implements Shape
func (p *Plane) NormalAt(point core.Tuple) core.Tuple { return normalAt(p, &p.base, point) }

func (p *Plane) localIntersect(ray core.Ray) []float64 {
	// Parallel and coplanar rays never hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func (p *Plane) localNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
