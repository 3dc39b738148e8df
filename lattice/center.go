// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lattice

import (
	"math"

	"github.com/latticeforge/gridgen/geom"
)

// Center returns the cell's barycenter in the plane, after applying the
// origin translation and inclination rotation.
func Center(p Parameters, pos Position) geom.Vector {
	sqrt3 := math.Sqrt(3)
	var local geom.Vector
	switch p.Kind {
	case Triangular:
		local = geom.NewVector(0.5*float64(pos.Yi)+float64(pos.Xi), 0.5*sqrt3*float64(pos.Yi))
		if pos.UpsideDown {
			local = local.Add(geom.NewVector(0.25, sqrt3/12))
		} else {
			local = local.Sub(geom.NewVector(0.25, sqrt3/12))
		}
	case Hexagonal:
		local = geom.NewVector(sqrt3*float64(pos.Xi)+sqrt3/2*float64(pos.Yi), 1.5*float64(pos.Yi))
	default:
		local = geom.NewVector(float64(pos.Xi), float64(pos.Yi))
	}
	return place(p, local)
}

// Corners returns the Shape(p.Kind) corner coordinates of the cell at pos,
// in counterclockwise order.
func Corners(p Parameters, pos Position) []geom.Vector {
	sqrt3 := math.Sqrt(3)
	var local []geom.Vector
	switch p.Kind {
	case Triangular:
		center := geom.NewVector(0.5*float64(pos.Yi)+float64(pos.Xi), 0.5*sqrt3*float64(pos.Yi))
		offsets := [3]geom.Vector{
			geom.NewVector(-3.0/4, -sqrt3/4),
			geom.NewVector(1.0/4, -sqrt3/4),
			geom.NewVector(-1.0/4, sqrt3/4),
		}
		local = make([]geom.Vector, 3)
		for i, off := range offsets {
			if pos.UpsideDown {
				local[i] = center.Sub(off)
			} else {
				local[i] = center.Add(off)
			}
		}
	case Hexagonal:
		center := geom.NewVector(sqrt3*float64(pos.Xi)+sqrt3/2*float64(pos.Yi), 1.5*float64(pos.Yi))
		local = []geom.Vector{
			center.Add(geom.NewVector(0, -1)),
			center.Add(geom.NewVector(sqrt3/2, -0.5)),
			center.Add(geom.NewVector(sqrt3/2, 0.5)),
			center.Add(geom.NewVector(0, 1)),
			center.Add(geom.NewVector(-sqrt3/2, 0.5)),
			center.Add(geom.NewVector(-sqrt3/2, -0.5)),
		}
	default:
		center := geom.NewVector(float64(pos.Xi), float64(pos.Yi))
		local = []geom.Vector{
			center.Add(geom.NewVector(-0.5, -0.5)),
			center.Add(geom.NewVector(0.5, -0.5)),
			center.Add(geom.NewVector(0.5, 0.5)),
			center.Add(geom.NewVector(-0.5, 0.5)),
		}
	}

	corners := make([]geom.Vector, len(local))
	for i, c := range local {
		corners[i] = place(p, c)
	}
	return corners
}
