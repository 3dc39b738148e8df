// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package gridutil provides seeded random-domain generation for tests and
// benchmarks. It is not part of the grid construction core; only the
// benchmarks of package gridgen import it.
package gridutil

import (
	"math"
	"math/rand"

	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
	"github.com/latticeforge/gridgen/hull"
)

// RandomConvexBoundary generates n random points around the origin, each at
// a random angle and a random radius in [0.5, 1], and wraps the convex hull
// of those points as
// counterclockwise Line boundaries enclosing the origin. seed makes the
// result reproducible, mirroring the teacher's own
// utils.GenerateRandomPoints(cnt, seed) signature shape.
func RandomConvexBoundary(n int, seed int64) []*boundary.Boundary {
	if n < 3 {
		n = 3
	}
	random := rand.New(rand.NewSource(seed))

	points := make([]geom.Vector, n)
	for i := range points {
		angle := random.Float64() * 2 * math.Pi
		radius := 0.5 + 0.5*random.Float64()
		points[i] = geom.NewVector(radius*math.Cos(angle), radius*math.Sin(angle))
	}

	perimeter := hull.Convex(points)
	boundaries := make([]*boundary.Boundary, 0, len(perimeter))
	for i, p := range perimeter {
		next := perimeter[(i+1)%len(perimeter)]
		line := &geom.Line{A: p, B: next, NormalClockwise: false}
		b, err := boundary.New(line)
		if err != nil {
			// New only fails on a nil figure, which line never is.
			panic(err)
		}
		boundaries = append(boundaries, b)
	}
	return boundaries
}
