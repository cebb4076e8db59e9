package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for tuple and matrix equality
const Epsilon = 1e-5

// TupleKind tags a tuple as a point, vector or color
type TupleKind int

const (
	Undefined TupleKind = iota
	Point
	Vector
	Color
)

// String returns the kind name
func (k TupleKind) String() string {
	switch k {
	case Point:
		return "point"
	case Vector:
		return "vector"
	case Color:
		return "color"
	default:
		return "undefined"
	}
}

// Tuple is a 3-component value tagged with its kind.
// For colors X, Y, Z hold the red, green and blue channels.
type Tuple struct {
	X, Y, Z float64
	Kind    TupleKind
}

var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

// NewPoint creates a point tuple
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, Kind: Point}
}

// NewVector creates a vector tuple
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, Kind: Vector}
}

// NewColor creates a color tuple
func NewColor(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b, Kind: Color}
}

// R returns the red channel of a color
func (t Tuple) R() float64 { return t.X }

// G returns the green channel of a color
func (t Tuple) G() float64 { return t.Y }

// B returns the blue channel of a color
func (t Tuple) B() float64 { return t.Z }

// AsVector returns the same components tagged as a vector
func (t Tuple) AsVector() Tuple {
	t.Kind = Vector
	return t
}

// addKind resolves the kind of a sum
func addKind(a, b TupleKind) TupleKind {
	switch {
	case a == Point && b == Vector, a == Vector && b == Point:
		return Point
	case a == Vector && b == Vector:
		return Vector
	case a == Color && b == Color:
		return Color
	default:
		return Undefined
	}
}

// subtractKind resolves the kind of a difference
func subtractKind(a, b TupleKind) TupleKind {
	switch {
	case a == Point && b == Point:
		return Vector
	case a == Point && b == Vector:
		return Point
	case a == Vector && b == Vector:
		return Vector
	case a == Color && b == Color:
		return Color
	default:
		return Undefined
	}
}

// Add returns the sum of two tuples.
// Point+Vector is a Point, Vector+Vector a Vector, Color+Color a Color; every other mix is Undefined.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, addKind(t.Kind, other.Kind)}
}

// Subtract returns the difference of two tuples.
// Point-Point is a Vector, Point-Vector a Point; incompatible mixes are Undefined.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, subtractKind(t.Kind, other.Kind)}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.Kind}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.Kind}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, t.Kind}
}

// Hadamard returns the component-wise product of two colors
func (t Tuple) Hadamard(other Tuple) Tuple {
	kind := Undefined
	if t.Kind == Color && other.Kind == Color {
		kind = Color
	}
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, kind}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit vector in the same direction
func (t Tuple) Normalize() Tuple {
	length := t.Length()
	if length == 0 {
		return NewVector(0, 0, 0)
	}
	return NewVector(t.X/length, t.Y/length, t.Z/length)
}

// Reflect returns the tuple reflected about the normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equal reports whether two tuples have the same kind and components within Epsilon
func (t Tuple) Equal(other Tuple) bool {
	return t.Kind == other.Kind &&
		FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z)
}

// String formats the tuple for debugging
func (t Tuple) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", t.Kind, t.X, t.Y, t.Z)
}

// FloatEqual compares two floats within Epsilon
func FloatEqual(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) < Epsilon
}
