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

// NewPatternsScene shows every pattern with its own transform
func NewPatternsScene() (*Scene, error) {
	var b builder

	floor := material.Default()
	floor.Pattern = b.pattern(
		material.NewRing(core.NewColor(0.9, 0.9, 0.8), core.NewColor(0.3, 0.4, 0.6)),
		core.Scaling(0.8, 0.8, 0.8))
	floor.Specular = 0
	b.add(geometry.NewPlane(), floor)

	wall := material.Default()
	wall.Pattern = b.pattern(
		material.NewStripe(core.NewColor(0.9, 0.5, 0.5), core.NewColor(0.95, 0.95, 0.95)),
		core.Scaling(0.3, 1, 1),
		core.RotationZ(math.Pi/6))
	wall.Specular = 0
	b.add(geometry.NewPlane(), wall,
		core.RotationX(math.Pi/2),
		core.Translation(0, 0, 6))

	gradient := material.Default()
	gradient.Pattern = b.pattern(
		material.NewGradient(core.NewColor(1, 0.2, 0.2), core.NewColor(0.2, 0.2, 1)),
		core.Translation(-1, 0, 0),
		core.Scaling(2, 1, 1))
	b.add(geometry.NewSphere(), gradient, core.Translation(-1.5, 1, 0.5))

	checker := material.Default()
	checker.Pattern = b.pattern(
		material.NewChecker(core.NewColor(0.1, 0.6, 0.2), core.NewColor(0.95, 0.95, 0.5)),
		core.Scaling(0.25, 0.25, 0.25))
	b.add(geometry.NewSphere(), checker, core.Translation(1.5, 1, 0.5))

	rings := material.Default()
	rings.Pattern = b.pattern(
		material.NewRing(core.NewColor(0.6, 0.3, 0.1), core.NewColor(0.9, 0.7, 0.4)),
		core.Scaling(0.15, 0.15, 0.15),
		core.RotationX(math.Pi/2))
	b.add(geometry.NewSphere(), rings,
		core.Scaling(0.6, 0.6, 0.6),
		core.Translation(0, 0.6, -1.2))

	if b.err != nil {
		return nil, b.err
	}

	light := lights.NewPointLight(core.NewPoint(-6, 9, -9), core.White)
	return &Scene{
		Name:  "patterns",
		World: world.New(light, b.shapes...),
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      250,
			FieldOfView: math.Pi / 3,
			From:        core.NewPoint(0, 2, -6),
			To:          core.NewPoint(0, 0.8, 0),
			Up:          core.NewVector(0, 1, 0),
		},
		RenderConfig: renderer.DefaultRenderConfig(),
	}, nil
}
