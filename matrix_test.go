package ggedit

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, 20), Pt(1, 1), Pt(11, 21)},
		{"scale then translate", Translate(10, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 2)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(10, 0)), Pt(1, 1), Pt(22, 2)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !got.Approx(tt.want, epsilon) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixAbout(t *testing.T) {
	c := Pt(10, 10)
	if got := RotateAt(math.Pi/2, c).TransformPoint(Pt(20, 10)); !got.Approx(Pt(10, 20), epsilon) {
		t.Errorf("RotateAt = %v, want (10,20)", got)
	}
	m := ScaleAt(0.5, 0.5, c)
	if got := m.TransformPoint(c); got != c {
		t.Errorf("ScaleAt moved its center to %v", got)
	}
	if m.C != 5 || m.F != 5 {
		t.Errorf("ScaleAt offset = (%v, %v), want (5, 5)", m.C, m.F)
	}
	if !ScaleAt(1, 1, c).IsIdentity() || !RotateAt(0, c).IsIdentity() {
		t.Error("unit transforms about a point should be the identity")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
}
