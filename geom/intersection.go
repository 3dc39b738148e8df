// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

// Intersection is the result of probing a candidate segment against a
// Figure. An invalid Intersection carries no other information.
type Intersection struct {
	Valid   bool
	Coord   Vector
	Tangent Vector
	Normal  Vector
}

// NewIntersection builds a valid Intersection, normalizing tangent and
// normal to unit length exactly as the figure implementations expect.
func NewIntersection(coord, tangent, normal Vector) Intersection {
	return Intersection{
		Valid:   true,
		Coord:   coord,
		Tangent: tangent.Normalize(),
		Normal:  normal.Normalize(),
	}
}
