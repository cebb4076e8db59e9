package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	base
}

// NewSphere creates a new unit sphere with the default material and identity transform
func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

// NewGlassSphere creates a unit sphere made of clear glass
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.NewGlass())
	return s
}

// Kind returns the shape name
func (s *Sphere) Kind() string { return "sphere" }

// Intersect implements Shape
func (s *Sphere) Intersect(ray core.Ray) Intersections { return intersect(s, ray) }

// NormalAt implements Shape
func (s *Sphere) NormalAt(p core.Tuple) core.Tuple { return normalAt(s, &s.base, p) }

func (s *Sphere) localIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1.0

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

func (s *Sphere) localNormalAt(p core.Tuple) core.Tuple {
	return p.Subtract(core.NewPoint(0, 0, 0))
}
