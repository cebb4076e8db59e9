package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PatternTransform holds a pattern's own transform and its cached inverse.
// Embed it to satisfy the transform half of the Pattern interface.
type PatternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
	set       bool
}

// Transform returns the pattern transform (identity by default)
func (p *PatternTransform) Transform() core.Matrix {
	if !p.set {
		return core.Identity()
	}
	return p.transform
}

// Inverse returns the cached inverse of the pattern transform
func (p *PatternTransform) Inverse() core.Matrix {
	if !p.set {
		return core.Identity()
	}
	return p.inverse
}

// SetTransform replaces the transform. Singular matrices are rejected and leave the pattern unchanged.
func (p *PatternTransform) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inv
	p.set = true
	return nil
}

// ColorAtObject resolves a world point through the object's and then the pattern's inverse transform
func ColorAtObject(p Pattern, object Transformer, worldPoint core.Tuple) core.Tuple {
	objectPoint := object.Inverse().MultiplyTuple(worldPoint)
	patternPoint := p.Inverse().MultiplyTuple(objectPoint)
	return p.LocalColorAt(patternPoint)
}

// Stripe alternates between two colors along x
type Stripe struct {
	PatternTransform
	A, B core.Tuple
}

// NewStripe creates a new stripe pattern
func NewStripe(a, b core.Tuple) *Stripe {
	return &Stripe{A: a, B: b}
}

// LocalColorAt implements Pattern
func (s *Stripe) LocalColorAt(p core.Tuple) core.Tuple {
	if isEven(math.Floor(p.X)) {
		return s.A
	}
	return s.B
}

// Gradient blends linearly from A to B across each unit of x
type Gradient struct {
	PatternTransform
	A, B core.Tuple
}

// NewGradient creates a new gradient pattern
func NewGradient(a, b core.Tuple) *Gradient {
	return &Gradient{A: a, B: b}
}

// LocalColorAt implements Pattern
func (g *Gradient) LocalColorAt(p core.Tuple) core.Tuple {
	distance := g.B.Subtract(g.A)
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(distance.Multiply(fraction))
}

// Ring alternates colors in concentric rings around the y axis
type Ring struct {
	PatternTransform
	A, B core.Tuple
}

// NewRing creates a new ring pattern
func NewRing(a, b core.Tuple) *Ring {
	return &Ring{A: a, B: b}
}

// LocalColorAt implements Pattern
func (r *Ring) LocalColorAt(p core.Tuple) core.Tuple {
	if isEven(math.Floor(math.Sqrt(p.X*p.X + p.Z*p.Z))) {
		return r.A
	}
	return r.B
}

// Checker is a 3D checker alternating on the sum of absolute coordinates
type Checker struct {
	PatternTransform
	A, B core.Tuple
}

// NewChecker creates a new checker pattern
func NewChecker(a, b core.Tuple) *Checker {
	return &Checker{A: a, B: b}
}

// LocalColorAt implements Pattern
func (c *Checker) LocalColorAt(p core.Tuple) core.Tuple {
	if isEven(math.Floor(math.Abs(p.X) + math.Abs(p.Y) + math.Abs(p.Z))) {
		return c.A
	}
	return c.B
}

func isEven(f float64) bool {
	return math.Mod(f, 2) == 0
}
