package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RenderConfig contains configuration for the parallel renderer
type RenderConfig struct {
	MaxDepth    int // Reflection/refraction recursion budget
	NumWorkers  int // Number of parallel workers (0 = use CPU count)
	RowsPerBand int // Scanlines per work unit
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:    world.DefaultMaxDepth,
		NumWorkers:  0, // Auto-detect CPU count
		RowsPerBand: 8,
	}
}

// RowProgress is reported once per completed scanline
type RowProgress struct {
	Row           int // Scanline that just finished
	RowsCompleted int // Scanlines finished so far in this render
	TotalRows     int
}

// Renderer renders a world through a camera using a bounded pool of goroutines
type Renderer struct {
	camera *Camera
	world  *world.World
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(camera *Camera, w *world.World, config RenderConfig, logger core.Logger) *Renderer {
	if config.RowsPerBand <= 0 {
		config.RowsPerBand = DefaultRenderConfig().RowsPerBand
	}
	if config.MaxDepth < 0 {
		config.MaxDepth = 0
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		camera: camera,
		world:  w,
		config: config,
		logger: logger,
	}
}

// Config returns the effective render configuration
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// Render traces every pixel with the configured recursion depth.
// progress may be nil; otherwise it is called once per scanline, never concurrently.
func (r *Renderer) Render(ctx context.Context, progress func(RowProgress)) (*Canvas, RenderStats, error) {
	canvas, stats, err := r.renderDepth(ctx, r.config.MaxDepth, progress)
	if err != nil {
		return nil, stats, err
	}
	r.logger.Printf("Rendered %dx%d in %v (%d bands, %d workers)\n",
		canvas.Width(), canvas.Height(), stats.Elapsed, stats.Bands, stats.Workers)
	return canvas, stats, nil
}

func (r *Renderer) renderDepth(ctx context.Context, depth int, progress func(RowProgress)) (*Canvas, RenderStats, error) {
	width, height := r.camera.Width(), r.camera.Height()
	canvas := NewCanvas(width, height)
	bands := NewBandGrid(width, height, r.config.RowsPerBand)
	workers := workerCount(r.config.NumWorkers)

	start := time.Now()
	err := r.renderBands(ctx, canvas, depth, bands, workers, progress)
	stats := RenderStats{
		Pixels:   width * height,
		Rows:     height,
		Bands:    len(bands),
		Workers:  workers,
		MaxDepth: depth,
		Elapsed:  time.Since(start),
	}
	if err != nil {
		return nil, stats, fmt.Errorf("render cancelled: %w", err)
	}
	return canvas, stats, nil
}
