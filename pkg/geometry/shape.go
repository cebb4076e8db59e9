package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/google/uuid"
)

// Shape is the closed set of primitives a ray can hit.
// The unexported local methods keep implementations inside this package.
type Shape interface {
	ID() uuid.UUID
	Kind() string

	// Intersect returns every intersection of a world-space ray with the shape, sorted by t
	Intersect(ray core.Ray) Intersections
	// NormalAt returns the world-space unit normal at a world-space point on the surface
	NormalAt(worldPoint core.Tuple) core.Tuple

	Material() material.Material
	SetMaterial(m material.Material)

	Transform() core.Matrix
	Inverse() core.Matrix
	SetTransform(m core.Matrix) error

	localIntersect(ray core.Ray) []float64
	localNormalAt(point core.Tuple) core.Tuple
}

// base holds the state every shape carries
type base struct {
	id               uuid.UUID
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
}

func newBase() base {
	return base{
		id:               uuid.New(),
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.Default(),
	}
}

// ID returns the shape's identity, stable across material and transform changes
func (b *base) ID() uuid.UUID {
	return b.id
}

// Material returns a copy of the shape's material
func (b *base) Material() material.Material {
	return b.material
}

// SetMaterial replaces the shape's material
func (b *base) SetMaterial(m material.Material) {
	b.material = m
}

// Transform returns the object-to-world transform
func (b *base) Transform() core.Matrix {
	return b.transform
}

// Inverse returns the cached world-to-object transform
func (b *base) Inverse() core.Matrix {
	return b.inverse
}

// SetTransform replaces the object-to-world transform.
// A singular matrix is rejected with core.ErrSingularMatrix and the shape keeps its previous transform.
func (b *base) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape %s: %w", b.id, err)
	}
	b.transform = m
	b.inverse = inv
	b.inverseTranspose = inv.Transpose()
	return nil
}

// intersect moves the ray into object space and wraps the local roots
func intersect(s Shape, ray core.Ray) Intersections {
	local := ray.Transform(s.Inverse())
	ts := s.localIntersect(local)
	if len(ts) == 0 {
		return nil
	}
	sort.Float64s(ts)

	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s}
	}
	return xs
}

// normalAt converts the world point to object space, then maps the local normal back
// with the inverse transpose so non-uniform scaling keeps normals perpendicular
func normalAt(s Shape, b *base, worldPoint core.Tuple) core.Tuple {
	objectPoint := b.inverse.MultiplyTuple(worldPoint)
	objectNormal := s.localNormalAt(objectPoint)
	worldNormal := b.inverseTranspose.MultiplyTuple(objectNormal.AsVector())
	return worldNormal.AsVector().Normalize()
}
