package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Common refractive indices
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.5
	Diamond = 2.417
)

// Material holds the Phong coefficients and the reflection/refraction parameters of a surface
type Material struct {
	Color           core.Tuple // Flat surface color, used when Pattern is nil
	Ambient         float64    // Ambient reflection coefficient
	Diffuse         float64    // Diffuse reflection coefficient
	Specular        float64    // Specular reflection coefficient
	Shininess       float64    // Specular exponent
	Reflective      float64    // Mirror contribution in [0, 1]
	Transparency    float64    // Refracted contribution in [0, 1]
	RefractiveIndex float64    // Index of refraction (> 0)
	Pattern         Pattern    // Optional procedural pattern
}

// Default returns the default material: white, lightly ambient, fully opaque
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: Vacuum,
	}
}

// NewGlass returns a clear glass material
func NewGlass() Material {
	m := Default()
	m.Transparency = 1.0
	m.RefractiveIndex = Glass
	return m
}

// ColorAt returns the base surface color at a world point
func (m Material) ColorAt(object Transformer, worldPoint core.Tuple) core.Tuple {
	if m.Pattern == nil {
		return m.Color
	}
	return ColorAtObject(m.Pattern, object, worldPoint)
}

// Equal compares scalar fields within core.Epsilon and patterns by identity
func (m Material) Equal(other Material) bool {
	return m.Color.Equal(other.Color) &&
		core.FloatEqual(m.Ambient, other.Ambient) &&
		core.FloatEqual(m.Diffuse, other.Diffuse) &&
		core.FloatEqual(m.Specular, other.Specular) &&
		core.FloatEqual(m.Shininess, other.Shininess) &&
		core.FloatEqual(m.Reflective, other.Reflective) &&
		core.FloatEqual(m.Transparency, other.Transparency) &&
		core.FloatEqual(m.RefractiveIndex, other.RefractiveIndex) &&
		m.Pattern == other.Pattern
}
