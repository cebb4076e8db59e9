package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis in object space
type Cube struct {
	base
}

// NewCube creates a new cube with the default material and identity transform
func NewCube() *Cube {
	return &Cube{base: newBase()}
}

// Kind returns the shape name
func (c *Cube) Kind() string { return "cube" }

// Intersect implements Shape
func (c *Cube) Intersect(ray core.Ray) Intersections { return intersect(c, ray) }

// NormalAt implements Shape
func (c *Cube) NormalAt(p core.Tuple) core.Tuple { return normalAt(c, &c.base, p) }

func (c *Cube) localIntersect(ray core.Ray) []float64 {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns the entry and exit t of one slab.
// A direction near zero means the ray is parallel to the slab: it is inside for all t or never.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) < core.Epsilon {
		if tMinNumerator <= 0 && tMaxNumerator >= 0 {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(-1)
	}

	tMin := tMinNumerator / direction
	tMax := tMaxNumerator / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

func (c *Cube) localNormalAt(p core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.NewVector(p.X, 0, 0)
	case absY:
		return core.NewVector(0, p.Y, 0)
	default:
		return core.NewVector(0, 0, p.Z)
	}
}
