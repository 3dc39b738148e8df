// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVector_Arithmetic(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, -1)

	tests := []struct {
		name string
		got  Vector
		want Vector
	}{
		{"add", a.Add(b), NewVector(4, 1)},
		{"sub", a.Sub(b), NewVector(-2, 3)},
		{"scale", a.Scale(2), NewVector(2, 4)},
		{"div", a.Div(2), NewVector(0.5, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, cmp.AllowUnexported(Vector{})); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVector_Dot(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, -1)
	if got, want := a.Dot(b), 1.0; got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestVector_Norm(t *testing.T) {
	v := NewVector(3, 4)
	if got, want := v.Norm(), 5.0; got != want {
		t.Errorf("Norm() = %v, want %v", got, want)
	}
	if got, want := v.SquaredNorm(), 25.0; got != want {
		t.Errorf("SquaredNorm() = %v, want %v", got, want)
	}
}

func TestVector_Normalize(t *testing.T) {
	v := NewVector(3, 4).Normalize()
	if math.Abs(v.Norm()-1) > 1e-12 {
		t.Errorf("Normalize() norm = %v, want ~1", v.Norm())
	}

	zero := NewVector(0, 0).Normalize()
	if diff := cmp.Diff(NewVector(0, 0), zero, cmp.AllowUnexported(Vector{})); diff != "" {
		t.Errorf("Normalize() of zero vector mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate(t *testing.T) {
	v := NewVector(1, 0)
	tests := []struct {
		name string
		got  Vector
		want Vector
	}{
		{"cw", RotateCW(v), NewVector(0, 1)},
		{"ccw", RotateCCW(v), NewVector(0, -1)},
		{"rotate 90deg ccw", Rotate(v, math.Pi/2), NewVector(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.got.X(), tt.want.X(); math.Abs(got-want) > 1e-12 {
				t.Errorf("X = %v, want %v", got, want)
			}
			if got, want := tt.got.Y(), tt.want.Y(); math.Abs(got-want) > 1e-12 {
				t.Errorf("Y = %v, want %v", got, want)
			}
		})
	}
}
