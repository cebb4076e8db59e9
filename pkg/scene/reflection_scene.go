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

// NewReflectionScene creates mirror spheres on a checkered floor between two facing mirrors
func NewReflectionScene() (*Scene, error) {
	var b builder

	floor := material.Default()
	floor.Pattern = b.pattern(material.NewChecker(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.1, 0.1, 0.1)))
	floor.Reflective = 0.3
	floor.Specular = 0
	b.add(geometry.NewPlane(), floor)

	// Facing mirrors make the reflections repeat until the depth budget runs out
	mirror := matte(core.NewColor(0.05, 0.05, 0.08))
	mirror.Diffuse = 0.1
	mirror.Reflective = 0.85
	mirror.Specular = 1
	mirror.Shininess = 300
	b.add(geometry.NewPlane(), mirror,
		core.RotationZ(math.Pi/2),
		core.Translation(-4, 0, 0))
	b.add(geometry.NewPlane(), mirror,
		core.RotationZ(math.Pi/2),
		core.Translation(4, 0, 0))

	chrome := matte(core.NewColor(0.2, 0.2, 0.25))
	chrome.Diffuse = 0.2
	chrome.Reflective = 0.9
	chrome.Specular = 1
	chrome.Shininess = 300
	b.add(geometry.NewSphere(), chrome, core.Translation(0, 1, 0.5))

	red := matte(core.NewColor(0.9, 0.2, 0.2))
	red.Reflective = 0.2
	b.add(geometry.NewSphere(), red,
		core.Scaling(0.6, 0.6, 0.6),
		core.Translation(-1.8, 0.6, -0.6))

	blue := matte(core.NewColor(0.2, 0.3, 0.9))
	blue.Reflective = 0.2
	b.add(geometry.NewSphere(), blue,
		core.Scaling(0.4, 0.4, 0.4),
		core.Translation(1.7, 0.4, -1))

	if b.err != nil {
		return nil, b.err
	}

	light := lights.NewPointLight(core.NewPoint(-2, 8, -6), core.White)
	config := renderer.DefaultRenderConfig()
	config.MaxDepth = 8

	return &Scene{
		Name:  "reflection",
		World: world.New(light, b.shapes...),
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      300,
			FieldOfView: math.Pi / 2.5,
			From:        core.NewPoint(0, 2, -6),
			To:          core.NewPoint(0, 1, 0),
			Up:          core.NewVector(0, 1, 0),
		},
		RenderConfig: config,
	}, nil
}
