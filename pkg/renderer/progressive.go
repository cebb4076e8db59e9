package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// PassResult contains the result of a single progressive pass
type PassResult struct {
	PassNumber  int // 1-based pass index
	Depth       int // Recursion budget used for this pass
	TotalPasses int
	Canvas      *Canvas
	Image       *image.RGBA
	Stats       RenderStats
	IsLast      bool
}

// NumPasses returns how many passes RenderProgressive produces
func (r *Renderer) NumPasses() int {
	return r.config.MaxDepth + 1
}

// RenderProgressive renders the image once per recursion depth, from 0 up to MaxDepth.
// Pass k uses depth k-1, so the first image is local shading only and
// each later pass adds one more bounce of reflection and refraction.
// The caller should read from the returned channels in separate goroutines.
func (r *Renderer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		totalPasses := r.NumPasses()
		r.logger.Printf("Starting progressive rendering with %d passes...\n", totalPasses)

		for pass := 1; pass <= totalPasses; pass++ {
			// Check if client disconnected before starting this pass
			select {
			case <-ctx.Done():
				r.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			depth := pass - 1
			startTime := time.Now()

			canvas, stats, err := r.renderDepth(ctx, depth, nil)
			if err != nil {
				errChan <- err
				return
			}

			img := canvas.ToImage()
			r.logger.Printf("Pass %d (depth %d) completed in %v (avg luminance %.3f)\n",
				pass, depth, time.Since(startTime), CalculateAverageLuminance(img))

			result := PassResult{
				PassNumber:  pass,
				Depth:       depth,
				TotalPasses: totalPasses,
				Canvas:      canvas,
				Image:       img,
				Stats:       stats,
				IsLast:      pass == totalPasses,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return passChan, errChan
}
