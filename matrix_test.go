package uidraw

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.Native().IsIdentity() {
		t.Errorf("Identity().Native() = %v, want identity", m.Native())
	}
	m.Translate(3, 4)
	m.SetIdentity()
	if m != Identity() {
		t.Errorf("SetIdentity() = %+v", m)
	}
}

func TestMatrixNativeConversion(t *testing.T) {
	m := Matrix{M11: 1, M12: 2, M21: 3, M22: 4, M31: 5, M32: 6}
	n := m.Native()
	want := gg.Matrix{A: 1, B: 3, C: 5, D: 2, E: 4, F: 6}
	if n != want {
		t.Errorf("Native() = %+v, want %+v", n, want)
	}
	if back := MatrixFromNative(n); back != m {
		t.Errorf("MatrixFromNative(Native()) = %+v, want %+v", back, m)
	}

	// Row-vector convention: x' = M11*x + M21*y + M31.
	x, y := m.TransformPoint(1, 1)
	if !near(x, 1+3+5) || !near(y, 2+4+6) {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (9, 12)", x, y)
	}
}

func TestMatrixOperations(t *testing.T) {
	tests := []struct {
		name         string
		build        func(m *Matrix)
		inX, inY     float64
		wantX, wantY float64
	}{
		{"translate", func(m *Matrix) { m.Translate(10, 20) }, 1, 2, 11, 22},
		{"scale about origin", func(m *Matrix) { m.Scale(0, 0, 2, 3) }, 1, 2, 2, 6},
		{"scale about center", func(m *Matrix) { m.Scale(5, 5, 2, 2) }, 5, 5, 5, 5},
		{"scale about center off", func(m *Matrix) { m.Scale(5, 5, 2, 2) }, 6, 5, 7, 5},
		{"rotate quarter", func(m *Matrix) { m.Rotate(0, 0, math.Pi/2) }, 1, 0, 0, 1},
		{"rotate about point", func(m *Matrix) { m.Rotate(1, 1, math.Pi) }, 2, 1, 0, 1},
		{"skew x", func(m *Matrix) { m.Skew(0, 0, math.Pi/4, 0) }, 0, 1, 1, 1},
		{"skew x about point", func(m *Matrix) { m.Skew(0, 1, math.Pi/4, 0) }, 0, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Identity()
			tt.build(&m)
			x, y := m.TransformPoint(tt.inX, tt.inY)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.inX, tt.inY, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestMatrixMultiplyOrder checks that m.Multiply(src) applies m first.
func TestMatrixMultiplyOrder(t *testing.T) {
	m := Identity()
	m.Scale(0, 0, 2, 2)
	src := Identity()
	src.Translate(10, 0)

	m.Multiply(&src)
	x, y := m.TransformPoint(1, 1)
	if !near(x, 12) || !near(y, 2) {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Identity()
	m.Translate(3, -2)
	m.Rotate(0, 0, 0.7)
	m.Scale(0, 0, 2, 0.5)

	if !m.Invertible() {
		t.Fatal("Invertible() = false")
	}
	inv := m
	if !inv.Invert() {
		t.Fatal("Invert() = false")
	}
	x, y := m.TransformPoint(4, 5)
	x, y = inv.TransformPoint(x, y)
	if !near(x, 4) || !near(y, 5) {
		t.Errorf("round trip = (%v, %v), want (4, 5)", x, y)
	}
}

func TestMatrixSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero", Matrix{}},
		{"collapsed", Matrix{M11: 1, M12: 2, M21: 2, M22: 4}},
		{"nan", Matrix{M11: math.NaN(), M22: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m
			if m.Invertible() {
				t.Error("Invertible() = true")
			}
			before := m
			if m.Invert() {
				t.Error("Invert() = true")
			}
			if tt.name != "nan" && m != before {
				t.Errorf("Invert modified a singular matrix: %+v", m)
			}
		})
	}
}

func TestMatrixTransformSize(t *testing.T) {
	m := Identity()
	m.Translate(100, 100)
	m.Scale(0, 0, 2, 3)
	w, h := m.TransformSize(1, 1)
	if !near(w, 2) || !near(h, 3) {
		t.Errorf("TransformSize(1, 1) = (%v, %v), want (2, 3)", w, h)
	}
}
