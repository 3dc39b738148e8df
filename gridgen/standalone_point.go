// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridgen

import (
	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
)

// StandalonePoint is a point-grid vertex: a coordinate, an optional
// inward-pointing normal inherited from the boundary it sits against (the
// zero vector if interior), and the neighbors reachable from it on the
// lattice.
type StandalonePoint struct {
	coord     geom.Vector
	normal    geom.Vector
	bound     *boundary.Boundary
	Neighbors []*StandalonePoint
}

func newInteriorPoint(coord geom.Vector) *StandalonePoint {
	return &StandalonePoint{coord: coord}
}

func newStandaloneBoundaryPoint(coord geom.Vector, hit geom.Intersection, b *boundary.Boundary) *StandalonePoint {
	return &StandalonePoint{coord: coord, normal: hit.Normal, bound: b}
}

// Coord returns the point's coordinate.
func (p *StandalonePoint) Coord() geom.Vector { return p.coord }

// Normal returns the inward-pointing boundary normal at this point, or the
// zero vector if the point is interior.
func (p *StandalonePoint) Normal() geom.Vector { return p.normal }

// Boundary returns the boundary this point sits against, or nil if the
// point is interior.
func (p *StandalonePoint) Boundary() *boundary.Boundary { return p.bound }
