package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ppmLineLimit is the longest line a PPM reader is required to accept
const ppmLineLimit = 70

// Canvas is a width x height grid of unclamped colors
type Canvas struct {
	width, height int
	pixels        []core.Tuple
}

// NewCanvas creates a canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	pixels := make([]core.Tuple, width*height)
	for i := range pixels {
		pixels[i] = core.Black
	}
	return &Canvas{width: width, height: height, pixels: pixels}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// WritePixel stores a color. Coordinates outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, col core.Tuple) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y), black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Tuple {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

// ClampChannel scales a channel to [0, 255] and truncates it
func ClampChannel(v float64) uint8 {
	scaled := v * 255
	switch {
	case scaled <= 0 || math.IsNaN(scaled):
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}

// colorToRGBA converts a color to RGBA with clamping
func colorToRGBA(col core.Tuple) color.RGBA {
	return color.RGBA{
		R: ClampChannel(col.X),
		G: ClampChannel(col.Y),
		B: ClampChannel(col.Z),
		A: 255,
	}
}

// ToImage converts the canvas to an RGBA image for PNG encoding
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, colorToRGBA(c.pixels[y*c.width+x]))
		}
	}
	return img
}

// WritePPM encodes the canvas as plain (P3) PPM.
// Pixel data lines are wrapped so none exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			rgba := colorToRGBA(c.pixels[y*c.width+x])
			for _, channel := range []uint8{rgba.R, rgba.G, rgba.B} {
				token := strconv.Itoa(int(channel))
				switch {
				case lineLen == 0:
				case lineLen+1+len(token) > ppmLineLimit:
					bw.WriteByte('\n')
					lineLen = 0
				default:
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(token)
				lineLen += len(token)
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}
