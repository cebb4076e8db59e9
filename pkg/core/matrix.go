package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("matrix is not invertible")

// Matrix is a square matrix of size 1 to 4 stored in a fixed 4x4 array
type Matrix struct {
	n int
	m [4][4]float64
}

// NewMatrix builds a square matrix from its rows.
// It panics if the rows do not form a square matrix of size 1..4.
func NewMatrix(rows ...[]float64) Matrix {
	n := len(rows)
	if n < 1 || n > 4 {
		panic(fmt.Sprintf("core: unsupported matrix size %d", n))
	}
	out := Matrix{n: n}
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("core: row %d has %d columns, want %d", r, len(row), n))
		}
		copy(out.m[r][:n], row)
	}
	return out
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		n: 4,
		m: [4][4]float64{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	}
}

// Size returns the number of rows (and columns)
func (a Matrix) Size() int {
	return a.n
}

// At returns the element at row r, column c
func (a Matrix) At(r, c int) float64 {
	return a.m[r][c]
}

// Multiply returns the product a*b
func (a Matrix) Multiply(b Matrix) Matrix {
	out := Matrix{n: a.n}
	for r := 0; r < a.n; r++ {
		for c := 0; c < a.n; c++ {
			var sum float64
			for k := 0; k < a.n; k++ {
				sum += a.m[r][k] * b.m[k][c]
			}
			out.m[r][c] = sum
		}
	}
	return out
}

// MultiplyTuple applies a 4x4 matrix to a tuple.
// Points carry w=1 so they are translated; every other kind carries w=0.
// The result keeps the kind of the input.
func (a Matrix) MultiplyTuple(t Tuple) Tuple {
	w := 0.0
	if t.Kind == Point {
		w = 1.0
	}
	return Tuple{
		X:    a.m[0][0]*t.X + a.m[0][1]*t.Y + a.m[0][2]*t.Z + a.m[0][3]*w,
		Y:    a.m[1][0]*t.X + a.m[1][1]*t.Y + a.m[1][2]*t.Z + a.m[1][3]*w,
		Z:    a.m[2][0]*t.X + a.m[2][1]*t.Y + a.m[2][2]*t.Z + a.m[2][3]*w,
		Kind: t.Kind,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (a Matrix) Transpose() Matrix {
	out := Matrix{n: a.n}
	for r := 0; r < a.n; r++ {
		for c := 0; c < a.n; c++ {
			out.m[c][r] = a.m[r][c]
		}
	}
	return out
}

// Submatrix returns the matrix with the given row and column removed
func (a Matrix) Submatrix(row, col int) Matrix {
	out := Matrix{n: a.n - 1}
	rr := 0
	for r := 0; r < a.n; r++ {
		if r == row {
			continue
		}
		cc := 0
		for c := 0; c < a.n; c++ {
			if c == col {
				continue
			}
			out.m[rr][cc] = a.m[r][c]
			cc++
		}
		rr++
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col)
func (a Matrix) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col)
func (a Matrix) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the first row
func (a Matrix) Determinant() float64 {
	switch a.n {
	case 1:
		return a.m[0][0]
	case 2:
		return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
	}
	var det float64
	for c := 0; c < a.n; c++ {
		det += a.m[0][c] * a.Cofactor(0, c)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (a Matrix) IsInvertible() bool {
	return a.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrSingularMatrix when the determinant is exactly zero
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}
	out := Matrix{n: a.n}
	for r := 0; r < a.n; r++ {
		for c := 0; c < a.n; c++ {
			// Transposed on write
			out.m[c][r] = a.Cofactor(r, c) / det
		}
	}
	return out, nil
}

// Equal compares two matrices element-wise within Epsilon
func (a Matrix) Equal(b Matrix) bool {
	if a.n != b.n {
		return false
	}
	for r := 0; r < a.n; r++ {
		for c := 0; c < a.n; c++ {
			if !FloatEqual(a.m[r][c], b.m[r][c]) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix one row per line
func (a Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < a.n; r++ {
		sb.WriteString("|")
		for c := 0; c < a.n; c++ {
			fmt.Fprintf(&sb, " %9.5f", a.m[r][c])
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
