package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func TestRenderProgressive_PassesIncreaseDepth(t *testing.T) {
	config := RenderConfig{MaxDepth: 3, NumWorkers: 2, RowsPerBand: 4}
	r := NewRenderer(referenceCamera(t), reflectiveWorld(t), config, nil)

	if r.NumPasses() != 4 {
		t.Fatalf("Expected 4 passes, got %d", r.NumPasses())
	}

	passChan, errChan := r.RenderProgressive(context.Background())

	var passes []PassResult
	for pass := range passChan {
		passes = append(passes, pass)
	}
	if err := <-errChan; err != nil {
		t.Fatalf("Progressive render failed: %v", err)
	}

	if len(passes) != 4 {
		t.Fatalf("Expected 4 passes, got %d", len(passes))
	}
	for i, pass := range passes {
		if pass.PassNumber != i+1 || pass.Depth != i {
			t.Errorf("Pass %d: unexpected number %d / depth %d", i+1, pass.PassNumber, pass.Depth)
		}
		if pass.Image == nil || pass.Canvas == nil {
			t.Fatalf("Pass %d has no image", i+1)
		}
		if pass.IsLast != (i == 3) {
			t.Errorf("Pass %d: IsLast=%v", i+1, pass.IsLast)
		}
		if pass.Stats.MaxDepth != i {
			t.Errorf("Pass %d: expected stats depth %d, got %d", i+1, i, pass.Stats.MaxDepth)
		}
	}

	// The final pass matches a direct render at full depth
	direct, _, err := r.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	final := passes[len(passes)-1].Canvas
	for y := 0; y < direct.Height(); y++ {
		for x := 0; x < direct.Width(); x++ {
			if !final.PixelAt(x, y).Equal(direct.PixelAt(x, y)) {
				t.Fatalf("Final pass differs from direct render at (%d, %d)", x, y)
			}
		}
	}
}

func TestRenderProgressive_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRenderer(referenceCamera(t), world.Default(), DefaultRenderConfig(), nil)
	passChan, errChan := r.RenderProgressive(ctx)
	for range passChan {
	}
	if err := <-errChan; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
