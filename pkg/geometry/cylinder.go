package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder around the y axis.
// It is truncated to Minimum < y < Maximum and capped at both ends when Closed.
type Cylinder struct {
	base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewBoundedCylinder creates a cylinder truncated to (minimum, maximum)
func NewBoundedCylinder(minimum, maximum float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// Kind returns the shape name
func (c *Cylinder) Kind() string { return "cylinder" }

// Intersect implements Shape
func (c *Cylinder) Intersect(ray core.Ray) Intersections { return intersect(c, ray) }

// NormalAt implements Shape
func (c *Cylinder) NormalAt(p core.Tuple) core.Tuple { return normalAt(c, &c.base, p) }

func (c *Cylinder) localIntersect(ray core.Ray) []float64 {
	var ts []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	// A ray parallel to the y axis can only hit the caps
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		ts = appendWithinBounds(ts, ray, c.Minimum, c.Maximum, t0, t1)
	}

	if c.Closed {
		ts = appendCaps(ts, ray, c.Minimum, c.Maximum, func(float64) float64 { return 1 })
	}
	return ts
}

func (c *Cylinder) localNormalAt(p core.Tuple) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < 1 && p.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && p.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(p.X, 0, p.Z)
	}
}

// appendWithinBounds keeps the wall roots whose y lies strictly between minimum and maximum
func appendWithinBounds(ts []float64, ray core.Ray, minimum, maximum float64, roots ...float64) []float64 {
	for _, t := range roots {
		y := ray.Origin.Y + t*ray.Direction.Y
		if minimum < y && y < maximum {
			ts = append(ts, t)
		}
	}
	return ts
}

// appendCaps intersects the planes y = minimum and y = maximum and keeps hits
// inside the cap disc. radius reports the disc radius at a given y.
func appendCaps(ts []float64, ray core.Ray, minimum, maximum float64, radius func(y float64) float64) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return ts
	}
	for _, y := range []float64{minimum, maximum} {
		if math.IsInf(y, 0) {
			continue
		}
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		r := radius(y)
		if x*x+z*z <= r*r+core.Epsilon {
			ts = append(ts, t)
		}
	}
	return ts
}
