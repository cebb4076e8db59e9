package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const sampleScene = `{
  "name": "Sample",
  "camera": {"width": 64, "height": 48, "fovDeg": 90, "from": [0, 0, -5], "to": [0, 0, 0]},
  "render": {"maxDepth": 3, "fresnel": true},
  "light": {"position": [-10, 10, -10], "intensity": [0.5, 0.5, 0.5]},
  "objects": [
    {
      "type": "sphere",
      "transform": [{"op": "scale", "args": [2]}, {"op": "translate", "args": [1, 0, 0]}],
      "material": {
        "color": [1, 0, 0],
        "reflective": 0.5,
        "pattern": {"type": "stripe", "a": [1, 1, 1], "b": [0, 0, 0], "transform": [{"op": "rotateY", "args": [90]}]}
      }
    },
    {"type": "cylinder", "min": 0, "max": 2, "closed": true},
    {"type": "cone"},
    {"type": "triangle", "points": [[0, 1, 0], [-1, 0, 0], [1, 0, 0]]},
    {"type": "glass-sphere", "material": {"refractiveIndex": 2.4}}
  ]
}`

func TestDecode(t *testing.T) {
	sc, err := Decode(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if sc.Name != "Sample" {
		t.Errorf("Name = %q, want Sample", sc.Name)
	}
	if sc.CameraConfig.Width != 64 || sc.CameraConfig.Height != 48 {
		t.Errorf("Unexpected camera size %dx%d", sc.CameraConfig.Width, sc.CameraConfig.Height)
	}
	if math.Abs(sc.CameraConfig.FieldOfView-math.Pi/2) > 1e-9 {
		t.Errorf("Expected fov π/2, got %f", sc.CameraConfig.FieldOfView)
	}
	if !sc.CameraConfig.Up.Equal(core.NewVector(0, 1, 0)) {
		t.Errorf("Up should default to +y, got %v", sc.CameraConfig.Up)
	}
	if sc.RenderConfig.MaxDepth != 3 || !sc.World.Fresnel {
		t.Errorf("Unexpected render settings depth=%d fresnel=%v", sc.RenderConfig.MaxDepth, sc.World.Fresnel)
	}
	if !sc.World.Light.Intensity.Equal(core.NewColor(0.5, 0.5, 0.5)) {
		t.Errorf("Unexpected light intensity %v", sc.World.Light.Intensity)
	}

	objects := sc.World.Objects
	if len(objects) != 5 {
		t.Fatalf("Expected 5 objects, got %d", len(objects))
	}

	sphere := objects[0]
	wantTransform := core.Chain(core.Scaling(2, 2, 2), core.Translation(1, 0, 0))
	if !sphere.Transform().Equal(wantTransform) {
		t.Errorf("Unexpected sphere transform\n%v", sphere.Transform())
	}
	m := sphere.Material()
	if !m.Color.Equal(core.NewColor(1, 0, 0)) || m.Reflective != 0.5 {
		t.Errorf("Unexpected sphere material %+v", m)
	}
	if m.Diffuse != material.Default().Diffuse {
		t.Errorf("Unset fields should keep defaults, diffuse=%f", m.Diffuse)
	}
	if _, ok := m.Pattern.(*material.Stripe); !ok {
		t.Errorf("Expected stripe pattern, got %T", m.Pattern)
	}

	cyl, ok := objects[1].(*geometry.Cylinder)
	if !ok || cyl.Minimum != 0 || cyl.Maximum != 2 || !cyl.Closed {
		t.Errorf("Unexpected cylinder %+v", objects[1])
	}
	cone, ok := objects[2].(*geometry.Cone)
	if !ok || !math.IsInf(cone.Minimum, -1) || !math.IsInf(cone.Maximum, 1) {
		t.Errorf("Cone bounds should default to infinite, got %+v", objects[2])
	}
	if objects[3].Kind() != "triangle" {
		t.Errorf("Expected triangle, got %s", objects[3].Kind())
	}
	glass := objects[4].Material()
	if glass.Transparency != 1 || glass.RefractiveIndex != 2.4 {
		t.Errorf("Glass sphere should keep transparency and take the index override, got %+v", glass)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"malformed", `{"objects": [`, nil},
		{"unknown field", `{"objects": [], "bogus": 1}`, nil},
		{"unknown object", `{"objects": [{"type": "torus"}]}`, nil},
		{"unknown pattern", `{"objects": [{"type": "sphere", "material": {"pattern": {"type": "plaid"}}}]}`, nil},
		{"unknown op", `{"objects": [{"type": "sphere", "transform": [{"op": "twist", "args": [1]}]}]}`, nil},
		{"wrong arg count", `{"objects": [{"type": "sphere", "transform": [{"op": "translate", "args": [1, 2]}]}]}`, nil},
		{"bad triangle", `{"objects": [{"type": "triangle", "points": [[0, 0, 0]]}]}`, nil},
		{"negative depth", `{"render": {"maxDepth": -1}, "objects": []}`, nil},
		{
			"singular object transform",
			`{"objects": [{"type": "sphere", "transform": [{"op": "scale", "args": [0, 1, 1]}]}]}`,
			core.ErrSingularMatrix,
		},
		{
			"singular pattern transform",
			`{"objects": [{"type": "plane", "material": {"pattern": {"type": "ring", "transform": [{"op": "scale", "args": [0]}]}}}]}`,
			core.ErrSingularMatrix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoad_BundledScenes(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.json"))
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := Load(path)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if _, err := sc.Camera(); err != nil {
				t.Errorf("Camera error: %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_Mesh(t *testing.T) {
	dir := t.TempDir()
	ply := `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 2
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
4 0 1 2 3
3 0 1 1
`
	// The second face is degenerate and gets dropped
	if err := os.WriteFile(filepath.Join(dir, "quad.ply"), []byte(ply), 0644); err != nil {
		t.Fatalf("Failed to write PLY: %v", err)
	}
	content := `{"name": "Quad", "light": {"position": [0, 0, -5]}, "objects": [
		{"type": "mesh", "file": "quad.ply", "transform": [{"op": "translate", "args": [0, 0, 2]}], "material": {"reflective": 0.25}}
	]}`
	path := filepath.Join(dir, "quad.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if sc.GetPrimitiveCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", sc.GetPrimitiveCount())
	}
	for _, obj := range sc.World.Objects {
		if obj.Kind() != "triangle" {
			t.Errorf("Expected triangle, got %s", obj.Kind())
		}
		if !obj.Transform().Equal(core.Translation(0, 0, 2)) {
			t.Errorf("Unexpected transform\n%v", obj.Transform())
		}
		if obj.Material().Reflective != 0.25 {
			t.Errorf("Expected reflective 0.25, got %f", obj.Material().Reflective)
		}
	}

	// Without a file or with a missing one the mesh is rejected
	for _, obj := range []string{`{"type": "mesh"}`, `{"type": "mesh", "file": "missing.ply"}`} {
		if _, err := Decode(strings.NewReader(`{"objects": [` + obj + `]}`)); err == nil {
			t.Errorf("Expected error for %s", obj)
		}
	}
}
