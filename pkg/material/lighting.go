package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Lighting evaluates the Phong reflection model at a surface point.
// The result is unclamped; clamping happens only when encoding the image.
func Lighting(m Material, object Transformer, light lights.PointLight, position, eye, normal core.Tuple, inShadow bool) core.Tuple {
	// Combine the surface color with the light's color/intensity
	effective := m.ColorAt(object, position).Hadamard(light.Intensity)

	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir := light.Position.Subtract(position).Normalize()

	// A negative cosine means the light is on the other side of the surface
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDir := lightDir.Negate().Reflect(normal)
	reflectDotEye := reflectDir.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
