// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridgen

import (
	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
	"github.com/latticeforge/gridgen/lattice"
)

// PointGrid is the set of lattice positions reachable from the origin
// without crossing the boundary, together with their nearest-neighbor
// adjacency.
type PointGrid struct {
	points []*StandalonePoint
}

// Points returns every emitted vertex, in the builder's deterministic
// emission order.
func (g *PointGrid) Points() []*StandalonePoint {
	return g.points
}

type pointFrontierEntry struct {
	intersection geom.Intersection
	boundary     *boundary.Boundary
}

// NewPointGrid flood-fills the lattice described by params starting at the
// origin, stopping at edges the boundary set cuts, and emits one
// StandalonePoint per reached position.
func NewPointGrid(params lattice.Parameters, boundaries boundary.Set) (*PointGrid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	shape := lattice.Shape(params.Kind)

	active := map[lattice.Position]*pointFrontierEntry{{}: {}}
	passive := map[lattice.Position]*pointFrontierEntry{}

	for len(active) > 0 {
		toBeActive := map[lattice.Position]*pointFrontierEntry{}
		for _, pos := range sortedPositions(active) {
			entry := active[pos]
			activeCoord := lattice.Center(params, pos)
			for f := 0; f < shape; f++ {
				neighborPos := lattice.FaceNeighbor(params, lattice.FacePosition{Position: pos, Face: f}).Position
				if _, ok := passive[neighborPos]; ok {
					continue
				}
				if _, ok := active[neighborPos]; ok {
					continue
				}
				neighborCoord := lattice.Center(params, neighborPos)

				hit, winner := boundaries.Probe(activeCoord, neighborCoord)
				if hit.Valid {
					entry.intersection = hit
					entry.boundary = winner
					continue
				}
				if _, ok := toBeActive[neighborPos]; !ok {
					toBeActive[neighborPos] = &pointFrontierEntry{}
				}
			}
		}
		for pos, entry := range active {
			passive[pos] = entry
		}
		active = toBeActive
	}

	order := sortedPositions(passive)
	byPosition := make(map[lattice.Position]*StandalonePoint, len(passive))
	points := make([]*StandalonePoint, 0, len(passive))
	for _, pos := range order {
		entry := passive[pos]
		coord := lattice.Center(params, pos)
		var sp *StandalonePoint
		if entry.boundary != nil {
			sp = newStandaloneBoundaryPoint(coord, entry.intersection, entry.boundary)
		} else {
			sp = newInteriorPoint(coord)
		}
		byPosition[pos] = sp
		points = append(points, sp)
	}

	for _, pos := range order {
		sp := byPosition[pos]
		for f := 0; f < shape; f++ {
			neighborPos := lattice.FaceNeighbor(params, lattice.FacePosition{Position: pos, Face: f}).Position
			if neighbor, ok := byPosition[neighborPos]; ok {
				sp.Neighbors = append(sp.Neighbors, neighbor)
			}
		}
	}

	return &PointGrid{points: points}, nil
}
