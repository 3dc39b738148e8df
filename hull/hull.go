// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull computes the planar convex hull of a point set. It exists
// to give the corpus's quickhull dependency a home outside of Delaunay
// triangulation: this library's flood-fill builders never call it, but the
// random-domain generator in gridutil and the cmd/gridsvg example driver
// both need a convex hull of a handful of points and reuse it here rather
// than hand-rolling a gift-wrap scan.
package hull

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"

	"github.com/latticeforge/gridgen/geom"
)

const defaultEps = 1e-10

// Convex returns the vertices of points that lie on their convex hull, in
// counterclockwise order. Fewer than 3 points are returned unchanged.
func Convex(points []geom.Vector) []geom.Vector {
	if len(points) < 3 {
		return append([]geom.Vector(nil), points...)
	}

	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		lifted[i] = r3.Vector{X: p.X(), Y: p.Y(), Z: 0}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, defaultEps)

	// Points are coplanar (z=0), so quickhull's triangulated hull visits
	// each perimeter vertex from both the "top" and "bottom" facet; dedupe
	// before re-deriving the perimeter order.
	seen := make(map[int]bool, len(ch.Indices))
	unique := make([]int, 0, len(ch.Indices))
	for _, idx := range ch.Indices {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}

	var centroid geom.Vector
	for _, idx := range unique {
		centroid = centroid.Add(points[idx])
	}
	centroid = centroid.Div(float64(len(unique)))

	sort.Slice(unique, func(i, j int) bool {
		pi, pj := points[unique[i]], points[unique[j]]
		ai := math.Atan2(pi.Y()-centroid.Y(), pi.X()-centroid.X())
		aj := math.Atan2(pj.Y()-centroid.Y(), pj.X()-centroid.X())
		return ai < aj
	})

	result := make([]geom.Vector, len(unique))
	for i, idx := range unique {
		result[i] = points[idx]
	}
	return result
}
