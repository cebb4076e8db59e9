package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the y axis with its apex at the origin.
// The radius at height y is |y|. Bounds and caps behave like Cylinder.
type Cone struct {
	base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{
		base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewBoundedCone creates a cone truncated to (minimum, maximum)
func NewBoundedCone(minimum, maximum float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// Kind returns the shape name
func (c *Cone) Kind() string { return "cone" }

// Intersect implements Shape
func (c *Cone) Intersect(ray core.Ray) Intersections { return intersect(c, ray) }

// NormalAt implements Shape
func (c *Cone) NormalAt(p core.Tuple) core.Tuple { return normalAt(c, &c.base, p) }

func (c *Cone) localIntersect(ray core.Ray) []float64 {
	o, d := ray.Origin, ray.Direction
	var ts []float64

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray misses the walls entirely
	case math.Abs(a) < core.Epsilon:
		// Parallel to one of the cone halves: a single wall hit
		ts = appendWithinBounds(ts, ray, c.Minimum, c.Maximum, -cc/(2*b))
	default:
		disc := b*b - 4*a*cc
		if disc < 0 {
			break
		}
		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		ts = appendWithinBounds(ts, ray, c.Minimum, c.Maximum, t0, t1)
	}

	if c.Closed {
		ts = appendCaps(ts, ray, c.Minimum, c.Maximum, math.Abs)
	}
	return ts
}

func (c *Cone) localNormalAt(p core.Tuple) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < p.Y*p.Y && p.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < p.Y*p.Y && p.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return core.NewVector(p.X, y, p.Z)
}
