package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCylinder_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"miss on surface", core.NewPoint(1, 0, 0), core.NewVector(0, 1, 0), nil},
		{"miss inside", core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0), nil},
		{"miss outside", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), nil},
		{"tangent", core.NewPoint(1, 0, -5), core.NewVector(0, 0, 1), []float64{5, 5}},
		{"through axis", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
		{"skewed", core.NewPoint(0.5, 0, -5), core.NewVector(0.1, 1, 1), []float64{6.80798, 7.08872}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCylinder()
			checkTs(t, c.Intersect(core.NewRay(tt.origin, tt.direction.Normalize())), tt.expected)
		})
	}
}

func TestCylinder_Defaults(t *testing.T) {
	c := NewCylinder()
	if !math.IsInf(c.Minimum, -1) || !math.IsInf(c.Maximum, 1) || c.Closed {
		t.Errorf("Expected open infinite cylinder, got min=%f max=%f closed=%v", c.Minimum, c.Maximum, c.Closed)
	}
}

func TestCylinder_Truncated(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"from inside escapes", core.NewPoint(0, 1.5, 0), core.NewVector(0.1, 1, 0), 0},
		{"above", core.NewPoint(0, 3, -5), core.NewVector(0, 0, 1), 0},
		{"below", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 0},
		{"at maximum", core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), 0},
		{"at minimum", core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), 0},
		{"through middle", core.NewPoint(0, 1.5, -2), core.NewVector(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCylinder(1, 2, false)
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_Caps(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"down the axis", core.NewPoint(0, 3, 0), core.NewVector(0, -1, 0), 2},
		{"top cap and wall", core.NewPoint(0, 3, -2), core.NewVector(0, -1, 2), 2},
		{"top cap corner", core.NewPoint(0, 4, -2), core.NewVector(0, -1, 1), 2},
		{"bottom cap and wall", core.NewPoint(0, 0, -2), core.NewVector(0, 1, 2), 2},
		{"bottom cap corner", core.NewPoint(0, -1, -2), core.NewVector(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCylinder(1, 2, true)
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d (%v)", tt.count, len(xs), tValues(xs))
			}
		})
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	tests := []struct {
		name     string
		closed   bool
		point    core.Tuple
		expected core.Tuple
	}{
		{"wall +x", false, core.NewPoint(1, 1.5, 0), core.NewVector(1, 0, 0)},
		{"wall -z", false, core.NewPoint(0, 1.2, -1), core.NewVector(0, 0, -1)},
		{"wall +z", false, core.NewPoint(0, 1.7, 1), core.NewVector(0, 0, 1)},
		{"bottom cap center", true, core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)},
		{"bottom cap edge", true, core.NewPoint(0.5, 1, 0), core.NewVector(0, -1, 0)},
		{"top cap center", true, core.NewPoint(0, 2, 0), core.NewVector(0, 1, 0)},
		{"top cap edge", true, core.NewPoint(0, 2, 0.5), core.NewVector(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCylinder(1, 2, tt.closed)
			if n := c.NormalAt(tt.point); !n.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
		})
	}
}

func TestCone_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"through apex", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{5, 5}},
		{"diagonal", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), []float64{8.66025, 8.66025}},
		{"skewed", core.NewPoint(1, 1, -5), core.NewVector(-0.5, -1, 1), []float64{4.55006, 49.44994}},
		{"parallel to a half", core.NewPoint(0, 0, -1), core.NewVector(0, 1, 1), []float64{0.35355}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTs(t, NewCone().Intersect(core.NewRay(tt.origin, tt.direction.Normalize())), tt.expected)
		})
	}
}

func TestCone_Caps(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"parallel to axis outside", core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), 0},
		{"through both caps", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 1), 2},
		{"along the wall", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCone(-0.5, 0.5, true)
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d (%v)", tt.count, len(xs), tValues(xs))
			}
		})
	}
}

func TestCone_LocalNormal(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, -math.Sqrt2, 1)},
		{core.NewPoint(-1, -1, 0), core.NewVector(-1, 1, 0)},
	}

	c := NewCone()
	for _, tt := range tests {
		t.Run(tt.point.String(), func(t *testing.T) {
			if n := c.localNormalAt(tt.point); !n.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
		})
	}
}
