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

// NewShapesScene lines up a cube, a capped cylinder, a cone and a triangle
func NewShapesScene() (*Scene, error) {
	var b builder

	floor := material.Default()
	floor.Pattern = b.pattern(material.NewChecker(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.5, 0.5, 0.5)))
	floor.Specular = 0
	floor.Reflective = 0.15
	b.add(geometry.NewPlane(), floor)

	cube := matte(core.NewColor(0.8, 0.3, 0.2))
	cube.Specular = 0.4
	b.add(geometry.NewCube(), cube,
		core.Scaling(0.6, 0.6, 0.6),
		core.RotationY(math.Pi/5),
		core.Translation(-2.4, 0.6, 0.5))

	cylinder := matte(core.NewColor(0.2, 0.6, 0.8))
	cylinder.Reflective = 0.2
	b.add(geometry.NewBoundedCylinder(0, 1.5, true), cylinder,
		core.Scaling(0.5, 1, 0.5),
		core.Translation(-0.8, 0, 0.8))

	cone := matte(core.NewColor(0.9, 0.8, 0.2))
	b.add(geometry.NewBoundedCone(-1, 0, true), cone,
		core.Scaling(0.6, 1.4, 0.6),
		core.Translation(0.8, 1.4, 0.6))

	triangle := matte(core.NewColor(0.5, 0.9, 0.4))
	triangle.Specular = 0.2
	b.add(geometry.NewTriangle(
		core.NewPoint(-0.8, 0, 0),
		core.NewPoint(0.8, 0, 0),
		core.NewPoint(0, 1.6, 0),
	), triangle,
		core.RotationY(-math.Pi/6),
		core.Translation(2.4, 0, 1))

	if b.err != nil {
		return nil, b.err
	}

	light := lights.NewPointLight(core.NewPoint(-4, 8, -8), core.White)
	return &Scene{
		Name:  "shapes",
		World: world.New(light, b.shapes...),
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      225,
			FieldOfView: math.Pi / 3,
			From:        core.NewPoint(0, 2.5, -6),
			To:          core.NewPoint(0, 0.7, 0.5),
			Up:          core.NewVector(0, 1, 0),
		},
		RenderConfig: renderer.DefaultRenderConfig(),
	}, nil
}
