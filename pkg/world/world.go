package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// DefaultMaxDepth is the reflection/refraction budget callers seed ColorAt with
const DefaultMaxDepth = 5

// World is a collection of shapes lit by a single point light.
// It is read-only during rendering and safe for concurrent ColorAt calls.
type World struct {
	Light   lights.PointLight
	Objects []geometry.Shape

	// Fresnel weights reflection and refraction by Schlick reflectance
	// on materials that are both reflective and transparent
	Fresnel bool
}

// New creates a world with the given light and objects
func New(light lights.PointLight, objects ...geometry.Shape) *World {
	return &World{Light: light, Objects: objects}
}

// Add appends objects to the world
func (w *World) Add(objects ...geometry.Shape) {
	w.Objects = append(w.Objects, objects...)
}

// Default returns the two-sphere reference world
func Default() *World {
	outer := geometry.NewSphere()
	m := material.Default()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	// Scaling by 0.5 is always invertible
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	return New(light, outer, inner)
}

// Intersect intersects every object in collection order and returns the sorted union
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ShadeHit returns the color at a prepared hit: surface plus reflected plus refracted
func (w *World) ShadeHit(comps geometry.Computation, remaining int) core.Tuple {
	m := comps.Object.Material()
	shadowed := w.IsShadowed(comps.OverPoint)

	surface := material.Lighting(m, comps.Object, w.Light,
		comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if w.Fresnel && m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt returns the color seen along ray, black when nothing is hit
func (w *World) ColorAt(ray core.Ray, remaining int) core.Tuple {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// IsShadowed reports whether any object lies between point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	direction, distance := w.Light.DirectionFrom(point)

	xs := w.Intersect(core.NewRay(point, direction))
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}

// ReflectedColor traces the mirror ray from the hit with one less unit of budget
func (w *World) ReflectedColor(comps geometry.Computation, remaining int) core.Tuple {
	reflective := comps.Object.Material().Reflective
	if reflective == 0 || remaining <= 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray using Snell's law.
// Total internal reflection contributes black.
func (w *World) RefractedColor(comps geometry.Computation, remaining int) core.Tuple {
	transparency := comps.Object.Material().Transparency
	if transparency == 0 || remaining <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}
