package scene

import (
	"context"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestBuiltInScenes_Render(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			sc, err := NewScene(info.ID)
			if err != nil {
				t.Fatalf("NewScene(%q) error: %v", info.ID, err)
			}
			if sc.GetPrimitiveCount() == 0 {
				t.Fatal("Scene has no objects")
			}

			// Render a thumbnail to keep the test fast
			sc.CameraConfig.Width = 16
			sc.CameraConfig.Height = 12
			r, err := sc.NewRenderer(nil)
			if err != nil {
				t.Fatalf("NewRenderer error: %v", err)
			}
			canvas, _, err := r.Render(context.Background(), nil)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}

			lit := false
			for y := 0; y < canvas.Height(); y++ {
				for x := 0; x < canvas.Width(); x++ {
					c := canvas.PixelAt(x, y)
					if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
						t.Fatalf("NaN color at (%d, %d)", x, y)
					}
					if !c.Equal(core.Black) {
						lit = true
					}
				}
			}
			if !lit {
				t.Error("Rendered image is entirely black")
			}
		})
	}
}

func TestDefaultWorldScene_CenterPixel(t *testing.T) {
	sc, err := NewDefaultWorldScene()
	if err != nil {
		t.Fatalf("NewDefaultWorldScene error: %v", err)
	}
	sc.CameraConfig.Width = 11
	sc.CameraConfig.Height = 11

	camera, err := sc.Camera()
	if err != nil {
		t.Fatalf("Camera error: %v", err)
	}
	got := camera.Render(sc.World).PixelAt(5, 5)
	want := core.NewColor(0.38066, 0.47583, 0.2855)
	if math.Abs(got.X-want.X) > 1e-4 || math.Abs(got.Y-want.Y) > 1e-4 || math.Abs(got.Z-want.Z) > 1e-4 {
		t.Errorf("Expected center pixel %v, got %v", want, got)
	}
}

func TestGlassScene_UsesFresnel(t *testing.T) {
	sc, err := NewGlassScene()
	if err != nil {
		t.Fatalf("NewGlassScene error: %v", err)
	}
	if !sc.World.Fresnel {
		t.Error("Glass scene should enable Fresnel")
	}
}
