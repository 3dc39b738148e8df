// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the two-dimensional vector arithmetic and
// figure/segment intersection primitives that the lattice and grid builder
// packages are built on.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vector is a point or free vector in the plane. It has value semantics and
// carries no identity; two Vectors with equal coordinates are
// interchangeable.
type Vector struct {
	p r2.Point
}

// NewVector creates a vector from its coordinates.
func NewVector(x, y float64) Vector {
	return Vector{p: r2.Point{X: x, Y: y}}
}

// X returns the vector's x coordinate.
func (v Vector) X() float64 { return v.p.X }

// Y returns the vector's y coordinate.
func (v Vector) Y() float64 { return v.p.Y }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{p: v.p.Add(w.p)}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{p: v.p.Sub(w.p)}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{p: v.p.Mul(s)}
}

// Div returns v with each coordinate divided by s.
func (v Vector) Div(s float64) Vector {
	return Vector{p: r2.Point{X: v.p.X / s, Y: v.p.Y / s}}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.p.X*w.p.X + v.p.Y*w.p.Y
}

// SquaredNorm returns the squared Euclidean length of v.
func (v Vector) SquaredNorm() float64 {
	return v.p.X*v.p.X + v.p.Y*v.p.Y
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Div(n)
}

// RotateCW returns (-y, x), which is v rotated by 90 degrees
// counterclockwise; the name does not describe the direction of the turn.
func RotateCW(v Vector) Vector {
	return NewVector(-v.p.Y, v.p.X)
}

// RotateCCW returns (y, -x), which is v rotated by 90 degrees clockwise;
// the name does not describe the direction of the turn.
func RotateCCW(v Vector) Vector {
	return NewVector(v.p.Y, -v.p.X)
}

// Rotate rotates v counterclockwise by angle radians.
func Rotate(v Vector, angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return NewVector(cos*v.p.X-sin*v.p.Y, sin*v.p.X+cos*v.p.Y)
}
