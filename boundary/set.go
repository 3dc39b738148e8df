// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package boundary

import "github.com/latticeforge/gridgen/geom"

// Set is an ordered collection of Boundaries offering the uniform
// "intersect against segment" scan the grid builders rely on.
type Set []*Boundary

// Probe scans every boundary in the set and returns the intersection of
// segment (a, b) that lies closest to a, together with the boundary that
// produced it. It returns an invalid Intersection and a nil boundary if no
// boundary crosses the segment. Ties (equal squared distance from a) are
// resolved in favor of the boundary appearing first in the set.
func (s Set) Probe(a, b geom.Vector) (geom.Intersection, *Boundary) {
	var (
		best   geom.Intersection
		winner *Boundary
	)
	for _, bound := range s {
		hit := bound.Figure().Intersect(a, b)
		if !hit.Valid {
			continue
		}
		if !best.Valid || hit.Coord.Sub(a).SquaredNorm() < best.Coord.Sub(a).SquaredNorm() {
			best = hit
			winner = bound
		}
	}
	return best, winner
}
