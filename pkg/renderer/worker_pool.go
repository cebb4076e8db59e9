package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Band is a horizontal strip of scanlines rendered as one task
type Band struct {
	ID     int             // Band index from the top of the image
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewBandGrid splits the image into bands of rowsPerBand scanlines.
// The last band may be shorter.
func NewBandGrid(width, height, rowsPerBand int) []*Band {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}

	var bands []*Band
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, height)
		bands = append(bands, &Band{
			ID:     len(bands),
			Bounds: image.Rect(0, y0, width, y1),
		})
	}
	return bands
}

// workerCount resolves the configured worker count (0 = use CPU count)
func workerCount(configured int) int {
	if configured <= 0 {
		return runtime.NumCPU()
	}
	return configured
}

// rowReporter serializes progress callbacks from concurrent bands
type rowReporter struct {
	mu        sync.Mutex
	completed int
	total     int
	callback  func(RowProgress)
}

func (r *rowReporter) rowDone(row int) {
	if r.callback == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed++
	r.callback(RowProgress{Row: row, RowsCompleted: r.completed, TotalRows: r.total})
}

// renderBands traces every band into canvas with at most numWorkers bands in flight.
// Bands own disjoint rows, so canvas writes need no locking.
func (r *Renderer) renderBands(ctx context.Context, canvas *Canvas, depth int, bands []*Band, numWorkers int, progress func(RowProgress)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	reporter := &rowReporter{total: canvas.Height(), callback: progress}

	for _, band := range bands {
		// Stop handing out work once the caller gives up
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			for y := band.Bounds.Min.Y; y < band.Bounds.Max.Y; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for x := band.Bounds.Min.X; x < band.Bounds.Max.X; x++ {
					ray := r.camera.RayForPixel(x, y)
					canvas.WritePixel(x, y, r.world.ColorAt(ray, depth))
				}
				reporter.rowDone(y)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
