package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Vec3 is an [x, y, z] triple in scene files
type Vec3 [3]float64

// File is the JSON form of a scene
type File struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Group       string       `json:"group,omitempty"`
	Camera      CameraFile   `json:"camera"`
	Render      RenderFile   `json:"render,omitempty"`
	Light       LightFile    `json:"light"`
	Objects     []ObjectFile `json:"objects"`

	dir string // Directory mesh paths resolve against
}

// CameraFile places the camera. Zero values fall back to renderer.DefaultCameraConfig.
type CameraFile struct {
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	FovDeg float64 `json:"fovDeg,omitempty"` // Degrees (friendlier than radians)
	From   *Vec3   `json:"from,omitempty"`
	To     *Vec3   `json:"to,omitempty"`
	Up     *Vec3   `json:"up,omitempty"`
}

// RenderFile holds per-scene render settings
type RenderFile struct {
	MaxDepth *int `json:"maxDepth,omitempty"`
	Fresnel  bool `json:"fresnel,omitempty"`
}

// LightFile is the scene's point light. Intensity defaults to white.
type LightFile struct {
	Position  Vec3  `json:"position"`
	Intensity *Vec3 `json:"intensity,omitempty"`
}

// TransformOp is one step of an object or pattern transform.
// Ops apply in list order: translate [x y z], scale [x y z] or [s],
// rotateX/rotateY/rotateZ [degrees], shear [xy xz yx yz zx zy].
type TransformOp struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// MaterialFile overrides fields of material.Default
type MaterialFile struct {
	Color           *Vec3        `json:"color,omitempty"`
	Ambient         *float64     `json:"ambient,omitempty"`
	Diffuse         *float64     `json:"diffuse,omitempty"`
	Specular        *float64     `json:"specular,omitempty"`
	Shininess       *float64     `json:"shininess,omitempty"`
	Reflective      *float64     `json:"reflective,omitempty"`
	Transparency    *float64     `json:"transparency,omitempty"`
	RefractiveIndex *float64     `json:"refractiveIndex,omitempty"`
	Pattern         *PatternFile `json:"pattern,omitempty"`
}

// PatternFile is a two-color pattern: stripe, gradient, ring or checker
type PatternFile struct {
	Type      string        `json:"type"`
	A         Vec3          `json:"a"`
	B         Vec3          `json:"b"`
	Transform []TransformOp `json:"transform,omitempty"`
}

// ObjectFile is one shape: sphere, glass-sphere, plane, cube, cylinder, cone, triangle,
// or a PLY mesh that expands into triangles sharing one transform and material
type ObjectFile struct {
	Type      string        `json:"type"`
	Transform []TransformOp `json:"transform,omitempty"`
	Material  MaterialFile  `json:"material"`

	// Cylinder and cone bounds, infinite when omitted
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Closed bool     `json:"closed,omitempty"`

	// Triangle vertices
	Points []Vec3 `json:"points,omitempty"`

	// Mesh file, relative to the scene file
	File string `json:"file,omitempty"`
}

// Load reads a Scene from a JSON file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	file, err := decodeFile(f)
	if err == nil {
		file.dir = filepath.Dir(path)
		var sc *Scene
		if sc, err = file.Build(); err == nil {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", path, err)
}

// Decode reads a JSON scene and builds it.
// Unknown fields, unknown types and singular transforms are errors.
// Mesh paths resolve against the working directory.
func Decode(r io.Reader) (*Scene, error) {
	file, err := decodeFile(r)
	if err != nil {
		return nil, err
	}
	return file.Build()
}

func decodeFile(r io.Reader) (*File, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &file, nil
}

// Build converts the file form into a renderable scene
func (f *File) Build() (*Scene, error) {
	intensity := core.White
	if f.Light.Intensity != nil {
		intensity = f.Light.Intensity.color()
	}
	w := world.New(lights.NewPointLight(f.Light.Position.point(), intensity))
	w.Fresnel = f.Render.Fresnel

	for i, obj := range f.Objects {
		shapes, err := obj.build(f.dir)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, obj.Type, err)
		}
		w.Add(shapes...)
	}

	renderConfig := renderer.DefaultRenderConfig()
	if f.Render.MaxDepth != nil {
		if *f.Render.MaxDepth < 0 {
			return nil, fmt.Errorf("maxDepth must not be negative, got %d", *f.Render.MaxDepth)
		}
		renderConfig.MaxDepth = *f.Render.MaxDepth
	}

	name := f.Name
	if name == "" {
		name = "file"
	}

	return &Scene{
		Name:         name,
		World:        w,
		CameraConfig: f.Camera.config(),
		RenderConfig: renderConfig,
	}, nil
}

func (c CameraFile) config() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	if c.Width > 0 {
		config.Width = c.Width
	}
	if c.Height > 0 {
		config.Height = c.Height
	}
	if c.FovDeg > 0 {
		config.FieldOfView = c.FovDeg * math.Pi / 180
	}
	if c.From != nil {
		config.From = c.From.point()
	}
	if c.To != nil {
		config.To = c.To.point()
	}
	if c.Up != nil {
		config.Up = c.Up.vector()
	}
	return config
}

func (o ObjectFile) build(dir string) ([]geometry.Shape, error) {
	if strings.EqualFold(o.Type, "mesh") {
		return o.buildMesh(dir)
	}

	var shape geometry.Shape
	switch strings.ToLower(o.Type) {
	case "sphere":
		shape = geometry.NewSphere()
	case "glass-sphere":
		shape = geometry.NewGlassSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder":
		c := geometry.NewCylinder()
		c.Minimum, c.Maximum, c.Closed = bound(o.Min, math.Inf(-1)), bound(o.Max, math.Inf(1)), o.Closed
		shape = c
	case "cone":
		c := geometry.NewCone()
		c.Minimum, c.Maximum, c.Closed = bound(o.Min, math.Inf(-1)), bound(o.Max, math.Inf(1)), o.Closed
		shape = c
	case "triangle":
		if len(o.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d", len(o.Points))
		}
		shape = geometry.NewTriangle(o.Points[0].point(), o.Points[1].point(), o.Points[2].point())
	default:
		return nil, fmt.Errorf("unknown object type %q", o.Type)
	}

	if err := o.place(shape); err != nil {
		return nil, err
	}
	return []geometry.Shape{shape}, nil
}

// buildMesh loads the PLY file and places every triangle the same way
func (o ObjectFile) buildMesh(dir string) ([]geometry.Shape, error) {
	if o.File == "" {
		return nil, fmt.Errorf("mesh needs a file")
	}
	path := o.File
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}

	mesh, err := loaders.LoadPLY(path)
	if err != nil {
		return nil, err
	}
	triangles := mesh.Triangles()
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh %s has no usable faces", o.File)
	}

	shapes := make([]geometry.Shape, 0, len(triangles))
	for _, tri := range triangles {
		if err := o.place(tri); err != nil {
			return nil, err
		}
		shapes = append(shapes, tri)
	}
	return shapes, nil
}

// place applies the object's transform and material overrides to shape
func (o ObjectFile) place(shape geometry.Shape) error {
	if len(o.Transform) > 0 {
		m, err := buildTransform(o.Transform)
		if err != nil {
			return err
		}
		if err := shape.SetTransform(m); err != nil {
			return err
		}
	}

	m, err := o.Material.apply(shape.Material())
	if err != nil {
		return err
	}
	shape.SetMaterial(m)
	return nil
}

func bound(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// apply overrides the fields present in the file on top of m
func (mf MaterialFile) apply(m material.Material) (material.Material, error) {
	if mf.Color != nil {
		m.Color = mf.Color.color()
	}
	for _, field := range []struct {
		src *float64
		dst *float64
	}{
		{mf.Ambient, &m.Ambient},
		{mf.Diffuse, &m.Diffuse},
		{mf.Specular, &m.Specular},
		{mf.Shininess, &m.Shininess},
		{mf.Reflective, &m.Reflective},
		{mf.Transparency, &m.Transparency},
		{mf.RefractiveIndex, &m.RefractiveIndex},
	} {
		if field.src != nil {
			*field.dst = *field.src
		}
	}

	if mf.Pattern != nil {
		p, err := mf.Pattern.build()
		if err != nil {
			return m, fmt.Errorf("pattern: %w", err)
		}
		m.Pattern = p
	}
	return m, nil
}

func (pf PatternFile) build() (material.Pattern, error) {
	a, b := pf.A.color(), pf.B.color()

	var p material.Pattern
	switch strings.ToLower(pf.Type) {
	case "stripe":
		p = material.NewStripe(a, b)
	case "gradient":
		p = material.NewGradient(a, b)
	case "ring":
		p = material.NewRing(a, b)
	case "checker":
		p = material.NewChecker(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", pf.Type)
	}

	if len(pf.Transform) > 0 {
		m, err := buildTransform(pf.Transform)
		if err != nil {
			return nil, err
		}
		if err := p.SetTransform(m); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// buildTransform chains the ops in list order
func buildTransform(ops []TransformOp) (core.Matrix, error) {
	ms := make([]core.Matrix, 0, len(ops))
	for i, op := range ops {
		m, err := op.matrix()
		if err != nil {
			return core.Matrix{}, fmt.Errorf("transform %d: %w", i, err)
		}
		ms = append(ms, m)
	}
	return core.Chain(ms...), nil
}

func (op TransformOp) matrix() (core.Matrix, error) {
	a := op.Args
	switch op.Op {
	case "translate":
		if len(a) != 3 {
			break
		}
		return core.Translation(a[0], a[1], a[2]), nil
	case "scale":
		if len(a) == 1 {
			return core.Scaling(a[0], a[0], a[0]), nil
		}
		if len(a) != 3 {
			break
		}
		return core.Scaling(a[0], a[1], a[2]), nil
	case "rotateX", "rotateY", "rotateZ":
		if len(a) != 1 {
			break
		}
		rad := a[0] * math.Pi / 180
		switch op.Op {
		case "rotateX":
			return core.RotationX(rad), nil
		case "rotateY":
			return core.RotationY(rad), nil
		default:
			return core.RotationZ(rad), nil
		}
	case "shear":
		if len(a) != 6 {
			break
		}
		return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	default:
		return core.Matrix{}, fmt.Errorf("unknown transform op %q", op.Op)
	}
	return core.Matrix{}, fmt.Errorf("%s: wrong number of args (%d)", op.Op, len(a))
}

func (v Vec3) point() core.Tuple  { return core.NewPoint(v[0], v[1], v[2]) }
func (v Vec3) vector() core.Tuple { return core.NewVector(v[0], v[1], v[2]) }
func (v Vec3) color() core.Tuple  { return core.NewColor(v[0], v[1], v[2]) }
