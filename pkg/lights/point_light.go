package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size emitting from a single position
type PointLight struct {
	Position  core.Tuple // Light position in world space
	Intensity core.Tuple // Light color and brightness
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Tuple) PointLight {
	return PointLight{
		Position:  position,
		Intensity: intensity,
	}
}

// Type returns the light type
func (l PointLight) Type() LightType {
	return LightTypePoint
}

// DirectionFrom returns the normalized direction from point toward the light and the distance to it
func (l PointLight) DirectionFrom(point core.Tuple) (core.Tuple, float64) {
	toLight := l.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}

// Equal compares position and intensity within core.Epsilon
func (l PointLight) Equal(other PointLight) bool {
	return l.Position.Equal(other.Position) && l.Intensity.Equal(other.Intensity)
}
