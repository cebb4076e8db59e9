package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *world.World
	CameraConfig renderer.CameraConfig
	RenderConfig renderer.RenderConfig
}

// Camera builds the scene camera from its configuration
func (s *Scene) Camera() (*renderer.Camera, error) {
	camera, err := renderer.NewCameraFromConfig(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return camera, nil
}

// NewRenderer creates a renderer for the scene with its render configuration
func (s *Scene) NewRenderer(logger core.Logger) (*renderer.Renderer, error) {
	camera, err := s.Camera()
	if err != nil {
		return nil, err
	}
	return renderer.NewRenderer(camera, s.World, s.RenderConfig, logger), nil
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return len(s.World.Objects)
}

// builder places shapes and patterns for the built-in scenes.
// The first singular transform is kept in err and later placements still run.
type builder struct {
	shapes []geometry.Shape
	err    error
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// add sets the shape's material and the chained transforms, then collects the shape
func (b *builder) add(s geometry.Shape, m material.Material, transforms ...core.Matrix) geometry.Shape {
	if len(transforms) > 0 {
		if err := s.SetTransform(core.Chain(transforms...)); err != nil {
			b.fail(fmt.Errorf("%s %d: %w", s.Kind(), len(b.shapes), err))
		}
	}
	s.SetMaterial(m)
	b.shapes = append(b.shapes, s)
	return s
}

// pattern applies the chained transforms to p and returns it
func (b *builder) pattern(p material.Pattern, transforms ...core.Matrix) material.Pattern {
	if len(transforms) > 0 {
		if err := p.SetTransform(core.Chain(transforms...)); err != nil {
			b.fail(err)
		}
	}
	return p
}

// matte returns the default material with a flat color
func matte(c core.Tuple) material.Material {
	m := material.Default()
	m.Color = c
	return m
}
