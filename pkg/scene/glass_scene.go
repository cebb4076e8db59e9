package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewGlassScene creates a hollow glass sphere over a patterned floor with Fresnel enabled
func NewGlassScene() (*Scene, error) {
	var b builder

	floor := material.Default()
	floor.Pattern = b.pattern(
		material.NewChecker(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65)),
		core.Scaling(0.5, 0.5, 0.5))
	floor.Specular = 0
	floor.Reflective = 0.1
	b.add(geometry.NewPlane(), floor)

	backdrop := material.Default()
	backdrop.Pattern = b.pattern(
		material.NewStripe(core.NewColor(0.8, 0.4, 0.1), core.NewColor(0.95, 0.85, 0.6)),
		core.Scaling(0.5, 1, 1),
		core.RotationY(math.Pi/4))
	backdrop.Specular = 0
	b.add(geometry.NewPlane(), backdrop,
		core.RotationX(math.Pi/2),
		core.Translation(0, 0, 8))

	glass := material.NewGlass()
	glass.Color = core.NewColor(0.05, 0.05, 0.05)
	glass.Ambient = 0
	glass.Diffuse = 0.1
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9
	b.add(geometry.NewSphere(), glass, core.Translation(0, 1.2, 0))

	// Air pocket nested inside the glass sphere
	bubble := glass
	bubble.RefractiveIndex = material.Air
	b.add(geometry.NewSphere(), bubble,
		core.Scaling(0.5, 0.5, 0.5),
		core.Translation(0, 1.2, 0))

	water := material.NewGlass()
	water.Color = core.NewColor(0.1, 0.15, 0.2)
	water.RefractiveIndex = material.Water
	water.Transparency = 0.8
	water.Reflective = 0.3
	b.add(geometry.NewSphere(), water,
		core.Scaling(0.6, 0.6, 0.6),
		core.Translation(-2, 0.6, 1.5))

	solid := matte(core.NewColor(0.2, 0.6, 0.3))
	b.add(geometry.NewSphere(), solid,
		core.Scaling(0.7, 0.7, 0.7),
		core.Translation(1.8, 0.7, 2.5))

	if b.err != nil {
		return nil, b.err
	}

	w := world.New(lights.NewPointLight(core.NewPoint(-5, 10, -8), core.White), b.shapes...)
	w.Fresnel = true

	config := renderer.DefaultRenderConfig()
	config.MaxDepth = 6

	return &Scene{
		Name:  "glass",
		World: w,
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      300,
			FieldOfView: math.Pi / 3,
			From:        core.NewPoint(0, 2.5, -6),
			To:          core.NewPoint(0, 1, 0),
			Up:          core.NewVector(0, 1, 0),
		},
		RenderConfig: config,
	}, nil
}
