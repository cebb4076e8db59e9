package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Transformer is anything with a world-to-object inverse transform, typically a shape
type Transformer interface {
	Inverse() core.Matrix
}

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// LocalColorAt returns the color at a point already expressed in pattern space
	LocalColorAt(point core.Tuple) core.Tuple
	Transform() core.Matrix
	Inverse() core.Matrix
	SetTransform(m core.Matrix) error
}
