package uidraw

import (
	"math"

	"github.com/gogpu/gg"
)

// Matrix is the toolkit's 2D affine transformation in row-vector form:
//
//	| M11 M12 0 |
//	| M21 M22 0 |
//	| M31 M32 1 |
//
// A point (x, y) maps to
//
//	x' = M11*x + M21*y + M31
//	y' = M12*x + M22*y + M32
//
// The arithmetic is delegated to gg.Matrix.
type Matrix struct {
	M11, M12 float64
	M21, M22 float64
	M31, M32 float64
}

// singularDet matches the determinant threshold gg.Matrix.Invert uses.
const singularDet = 1e-10

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1}
}

// Native converts m to the renderer's matrix representation.
func (m *Matrix) Native() gg.Matrix {
	return gg.Matrix{
		A: m.M11, B: m.M21, C: m.M31,
		D: m.M12, E: m.M22, F: m.M32,
	}
}

// MatrixFromNative converts a gg.Matrix to the toolkit representation.
func MatrixFromNative(n gg.Matrix) Matrix {
	return Matrix{
		M11: n.A, M12: n.D,
		M21: n.B, M22: n.E,
		M31: n.C, M32: n.F,
	}
}

// SetIdentity resets m to the identity matrix.
func (m *Matrix) SetIdentity() {
	*m = Identity()
}

// Translate prepends a translation by (x, y): points are translated first,
// then transformed by the previous m.
func (m *Matrix) Translate(x, y float64) {
	*m = MatrixFromNative(m.Native().Multiply(gg.Translate(x, y)))
}

// Scale prepends a scale by (x, y) about the point (xCenter, yCenter).
func (m *Matrix) Scale(xCenter, yCenter, x, y float64) {
	n := m.Native().
		Multiply(gg.Translate(xCenter, yCenter)).
		Multiply(gg.Scale(x, y)).
		Multiply(gg.Translate(-xCenter, -yCenter))
	*m = MatrixFromNative(n)
}

// Rotate prepends a rotation by amount radians about (x, y).
func (m *Matrix) Rotate(x, y, amount float64) {
	n := m.Native().
		Multiply(gg.Translate(x, y)).
		Multiply(gg.Rotate(amount)).
		Multiply(gg.Translate(-x, -y))
	*m = MatrixFromNative(n)
}

// Skew appends a skew about (x, y). xamount and yamount are angles in
// radians.
func (m *Matrix) Skew(x, y, xamount, yamount float64) {
	n := Identity()
	n.M12 = math.Tan(yamount)
	n.M21 = math.Tan(xamount)
	n.M31 = -y * math.Tan(xamount)
	n.M32 = -x * math.Tan(yamount)
	m.Multiply(&n)
}

// Multiply sets m to m followed by src.
func (m *Matrix) Multiply(src *Matrix) {
	*m = MatrixFromNative(src.Native().Multiply(m.Native()))
}

func (m *Matrix) det() float64 {
	return m.M11*m.M22 - m.M12*m.M21
}

// Invertible reports whether m has an inverse.
func (m *Matrix) Invertible() bool {
	d := m.det()
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return false
	}
	return math.Abs(d) >= singularDet
}

// Invert replaces m by its inverse. It reports false and leaves m
// unchanged if m is not invertible.
func (m *Matrix) Invert() bool {
	if !m.Invertible() {
		return false
	}
	*m = MatrixFromNative(m.Native().Invert())
	return true
}

// TransformPoint maps the point (x, y) through m.
func (m *Matrix) TransformPoint(x, y float64) (float64, float64) {
	p := m.Native().TransformPoint(gg.Pt(x, y))
	return p.X, p.Y
}

// TransformSize maps the distance vector (x, y) through m, ignoring the
// translation part.
func (m *Matrix) TransformSize(x, y float64) (float64, float64) {
	p := m.Native().TransformVector(gg.Pt(x, y))
	return p.X, p.Y
}
