package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ObjectID     string                 `json:"objectId,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	InShadow     bool                   `json:"inShadow"`
	Color        string                 `json:"color,omitempty"` // Shaded color as hex
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func tuple3(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func hexColor(c core.Tuple) string {
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(c.X), clampByte(c.Y), clampByte(c.Z))
}

func clampByte(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v * 255)
}

// extractMaterialInfo lists the Phong and optical parameters of a material
func extractMaterialInfo(m material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           hexColor(m.Color),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}

	switch p := m.Pattern.(type) {
	case nil:
	case *material.Stripe:
		properties["pattern"] = patternInfo("stripe", p.A, p.B)
	case *material.Gradient:
		properties["pattern"] = patternInfo("gradient", p.A, p.B)
	case *material.Ring:
		properties["pattern"] = patternInfo("ring", p.A, p.B)
	case *material.Checker:
		properties["pattern"] = patternInfo("checker", p.A, p.B)
	default:
		properties["pattern"] = map[string]interface{}{"type": "unknown"}
	}
	return properties
}

func patternInfo(kind string, a, b core.Tuple) map[string]interface{} {
	return map[string]interface{}{
		"type": kind,
		"a":    hexColor(a),
		"b":    hexColor(b),
	}
}

// extractGeometryInfo returns the shape-specific parameters worth showing
func extractGeometryInfo(shape geometry.Shape) map[string]interface{} {
	properties := map[string]interface{}{
		"origin": tuple3(shape.Transform().MultiplyTuple(core.NewPoint(0, 0, 0))),
	}

	switch geom := shape.(type) {
	case *geometry.Cylinder:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
	case *geometry.Cone:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
	case *geometry.Triangle:
		properties["p1"] = tuple3(geom.P1)
		properties["p2"] = tuple3(geom.P2)
		properties["p3"] = tuple3(geom.P3)
	}
	return properties
}

// boundValue keeps infinite bounds JSON-encodable
func boundValue(v float64) interface{} {
	if math.IsInf(v, 1) {
		return "+inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return v
}

// inspectPixel casts the primary ray through a pixel and describes the first hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (InspectResponse, error) {
	camera, err := sceneObj.Camera()
	if err != nil {
		return InspectResponse{}, err
	}

	w := sceneObj.World
	ray := camera.RayForPixel(pixelX, pixelY)
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false}, nil
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	color := w.ShadeHit(comps, sceneObj.RenderConfig.MaxDepth)

	return InspectResponse{
		Hit:          true,
		GeometryType: hit.Object.Kind(),
		ObjectID:     hit.Object.ID().String(),
		Point:        tuple3(comps.Point),
		Normal:       tuple3(comps.NormalV),
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		InShadow:     w.IsShadowed(comps.OverPoint),
		Color:        hexColor(color),
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Object.Material()),
			"geometry": extractGeometryInfo(hit.Object),
		},
	}, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Create request object for parameter parsing
	inspectReq := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown scene: " + inspectReq.Scene})
		return
	}

	// Validate pixel coordinates against the resolved image size
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}
