package core

import "math"

// Translation returns a matrix that moves points by (x, y, z)
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m.m[0][3] = x
	m.m[1][3] = y
	m.m[2][3] = z
	return m
}

// Scaling returns a matrix that scales each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m.m[0][0] = x
	m.m[1][1] = y
	m.m[2][2] = z
	return m
}

// RotationX returns a rotation around the x axis by r radians
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m.m[1][1] = cos
	m.m[1][2] = -sin
	m.m[2][1] = sin
	m.m[2][2] = cos
	return m
}

// RotationY returns a rotation around the y axis by r radians
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m.m[0][0] = cos
	m.m[0][2] = sin
	m.m[2][0] = -sin
	m.m[2][2] = cos
	return m
}

// RotationZ returns a rotation around the z axis by r radians
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m.m[0][0] = cos
	m.m[0][1] = -sin
	m.m[1][0] = sin
	m.m[1][1] = cos
	return m
}

// Shearing returns a matrix where each component moves in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m.m[0][1] = xy
	m.m[0][2] = xz
	m.m[1][0] = yx
	m.m[1][2] = yz
	m.m[2][0] = zx
	m.m[2][1] = zy
	return m
}

// Chain composes transforms so they apply in the order given.
// Chain(a, b, c) equals c * b * a.
func Chain(transforms ...Matrix) Matrix {
	out := Identity()
	for _, t := range transforms {
		out = t.Multiply(out)
	}
	return out
}

// ViewTransform orients the world relative to an eye at from looking toward to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
