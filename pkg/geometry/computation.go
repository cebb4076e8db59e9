package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/google/uuid"
)

// ShadowBias nudges hit points off the surface for shadow and refraction rays
const ShadowBias = 1e-4

// Computation is the shading context derived from one hit
type Computation struct {
	T      float64
	Object Shape

	Point      core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	OverPoint  core.Tuple
	UnderPoint core.Tuple

	// Refractive indices on the incoming and outgoing side of the surface
	N1, N2 float64
}

// PrepareComputations builds the shading context for hit.
// xs is the full sorted intersection list along ray; it decides N1 and N2.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computation {
	comps := Computation{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
		EyeV:   ray.Direction.Negate(),
	}
	comps.NormalV = hit.Object.NormalAt(comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	bias := comps.NormalV.Multiply(ShadowBias)
	comps.OverPoint = comps.Point.Add(bias)
	comps.UnderPoint = comps.Point.Subtract(bias)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs keeping the list of shapes the ray is currently inside
func refractiveIndices(hit Intersection, xs Intersections) (float64, float64) {
	n1, n2 := material.Vacuum, material.Vacuum
	var containers []Shape

	for _, x := range xs {
		isHit := x.Equal(hit)
		if isHit {
			n1 = topIndex(containers)
		}

		if idx := indexOf(containers, x.Object.ID()); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = topIndex(containers)
			break
		}
	}
	return n1, n2
}

func topIndex(containers []Shape) float64 {
	if len(containers) == 0 {
		return material.Vacuum
	}
	return containers[len(containers)-1].Material().RefractiveIndex
}

func indexOf(containers []Shape, id uuid.UUID) int {
	for i, s := range containers {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit.
// Total internal reflection returns 1.
func (c Computation) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
