package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// CameraConfig contains all parameters needed to place a camera
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Field of view across the longer side, in radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction
}

// DefaultCameraConfig returns a 400x300 camera at (0, 1.5, -5) looking at (0, 1, 0)
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      300,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
}

// Camera maps pixels onto a canvas one unit in front of the eye
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   core.Matrix
	inverse     core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// NewCameraFromConfig creates a camera and orients it with a view transform
func NewCameraFromConfig(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", config.Width, config.Height)
	}
	c := NewCamera(config.Width, config.Height, config.FieldOfView)
	if err := c.SetTransform(core.ViewTransform(config.From, config.To, config.Up)); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTransform sets the world-to-camera transform
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Width returns the horizontal size in pixels
func (c *Camera) Width() int { return c.hsize }

// Height returns the vertical size in pixels
func (c *Camera) Height() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// HalfWidth returns half the canvas width in world units
func (c *Camera) HalfWidth() float64 { return c.halfWidth }

// HalfHeight returns half the canvas height in world units
func (c *Camera) HalfHeight() float64 { return c.halfHeight }

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel on the calling goroutine.
// Renderer.Render produces the same canvas in parallel.
func (c *Camera) Render(w *world.World) *Canvas {
	canvas := NewCanvas(c.hsize, c.vsize)
	for y := 0; y < c.vsize; y++ {
		for x := 0; x < c.hsize; x++ {
			ray := c.RayForPixel(x, y)
			canvas.WritePixel(x, y, w.ColorAt(ray, world.DefaultMaxDepth))
		}
	}
	return canvas
}
