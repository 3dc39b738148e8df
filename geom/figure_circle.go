// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import "math"

// Circle is a circular boundary figure. NormalInward selects whether the
// figure's normal points toward Center (true) or away from it (false).
type Circle struct {
	Center       Vector
	Radius       float64
	NormalInward bool
}

func (*Circle) isFigure() {}

// Intersect substitutes the segment's parametrization into the circle
// equation and solves the resulting quadratic in arc-length along (b-a),
// returning the root closer to a first.
func (c *Circle) Intersect(a, b Vector) Intersection {
	return circleIntersect(a, b, c.Center, c.Radius, c.NormalInward, nil)
}

// circleIntersect is shared by Circle and Arc. When inArc is non-nil, a
// candidate root is additionally required to satisfy it (the azimuth
// range check).
func circleIntersect(a, b, center Vector, radius float64, normalInward bool, inArc func(hit Vector) bool) Intersection {
	direction := b.Sub(a)
	length := direction.Norm()
	if length == 0 {
		return Intersection{}
	}

	toCenter := center.Sub(a)
	bCoef := -2 * toCenter.Dot(direction) / length
	cCoef := toCenter.SquaredNorm() - radius*radius
	determinant := bCoef*bCoef - 4*cCoef

	accept := func(l float64) (Intersection, bool) {
		if l < 0 || l > length {
			return Intersection{}, false
		}
		hit := a.Add(direction.Scale(l / length))
		if inArc != nil && !inArc(hit) {
			return Intersection{}, false
		}
		normal := hit.Sub(center)
		if normalInward {
			normal = center.Sub(hit)
		}
		return NewIntersection(hit, RotateCCW(hit.Sub(center)), normal), true
	}

	switch {
	case determinant == 0:
		l := -bCoef / 2
		if hit, ok := accept(l); ok {
			return hit
		}
	case determinant > 0:
		root := math.Sqrt(determinant)
		if hit, ok := accept((-bCoef - root) / 2); ok {
			return hit
		}
		if hit, ok := accept((-bCoef + root) / 2); ok {
			return hit
		}
	}
	return Intersection{}
}
