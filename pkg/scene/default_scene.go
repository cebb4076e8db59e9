package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene creates three spheres resting on a floor in front of a back wall
func NewDefaultScene() (*Scene, error) {
	var b builder

	floor := matte(core.NewColor(1, 0.9, 0.9))
	floor.Specular = 0
	b.add(geometry.NewPlane(), floor)

	wall := floor
	b.add(geometry.NewPlane(), wall,
		core.RotationX(math.Pi/2),
		core.Translation(0, 0, 5))

	middle := matte(core.NewColor(0.1, 1, 0.5))
	middle.Diffuse = 0.7
	middle.Specular = 0.3
	b.add(geometry.NewSphere(), middle, core.Translation(-0.5, 1, 0.5))

	right := matte(core.NewColor(0.5, 1, 0.1))
	right.Diffuse = 0.7
	right.Specular = 0.3
	b.add(geometry.NewSphere(), right,
		core.Scaling(0.5, 0.5, 0.5),
		core.Translation(1.5, 0.5, -0.5))

	left := matte(core.NewColor(1, 0.8, 0.1))
	left.Diffuse = 0.7
	left.Specular = 0.3
	b.add(geometry.NewSphere(), left,
		core.Scaling(0.33, 0.33, 0.33),
		core.Translation(-1.5, 0.33, -0.75))

	if b.err != nil {
		return nil, b.err
	}

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	return &Scene{
		Name:  "default",
		World: world.New(light, b.shapes...),
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      200,
			FieldOfView: math.Pi / 3,
			From:        core.NewPoint(0, 1.5, -5),
			To:          core.NewPoint(0, 1, 0),
			Up:          core.NewVector(0, 1, 0),
		},
		RenderConfig: renderer.DefaultRenderConfig(),
	}, nil
}

// NewDefaultWorldScene wraps the two-sphere reference world with its reference camera
func NewDefaultWorldScene() (*Scene, error) {
	return &Scene{
		Name:  "default-world",
		World: world.Default(),
		CameraConfig: renderer.CameraConfig{
			Width:       200,
			Height:      200,
			FieldOfView: math.Pi / 2,
			From:        core.NewPoint(0, 0, -5),
			To:          core.NewPoint(0, 0, 0),
			Up:          core.NewVector(0, 1, 0),
		},
		RenderConfig: renderer.DefaultRenderConfig(),
	}, nil
}
