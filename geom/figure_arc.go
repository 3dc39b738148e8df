// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import "math"

// Arc is a circular-arc boundary figure, the arc starting at Azimuth and
// sweeping Angle radians counterclockwise (both in radians).
type Arc struct {
	Center       Vector
	Radius       float64
	NormalInward bool
	Azimuth      float64
	Angle        float64
}

func (*Arc) isFigure() {}

// Intersect behaves as Circle.Intersect but additionally requires the
// candidate hit's azimuth around Center to fall within [Azimuth,
// Azimuth+Angle] modulo 2*pi.
func (arc *Arc) Intersect(a, b Vector) Intersection {
	inArc := func(hit Vector) bool {
		rel := hit.Sub(arc.Center)
		return angleInArc(arc.Azimuth, arc.Angle, math.Atan2(rel.Y(), rel.X()))
	}
	return circleIntersect(a, b, arc.Center, arc.Radius, arc.NormalInward, inArc)
}

// angleInArc reports whether candidate lies within the arc that starts at
// azimuth and sweeps angle radians counterclockwise. The offset of
// candidate from azimuth is reduced to [0, 2*pi) before it is compared
// with angle, so arcs that wrap past pi are handled.
func angleInArc(azimuth, angle, candidate float64) bool {
	offset := math.Mod(candidate-azimuth, 2*math.Pi)
	if offset < 0 {
		offset += 2 * math.Pi
	}
	return offset <= angle
}
