// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridgen

import (
	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
	"github.com/latticeforge/gridgen/lattice"
)

// cornerStatus tracks how far a lattice corner has progressed through the
// flood fill. The zero value, unreached, is the initial state of every
// corner of a newly discovered cell.
type cornerStatus int

const (
	unreached cornerStatus = iota
	toBeActive
	active
	passive
)

type tempCorner struct {
	status cornerStatus
	point  *Point
}

type tempFace struct {
	probed       bool
	intersection geom.Intersection
	boundary     *boundary.Boundary
	facePoint    *Point
	face         *Face
}

// tempCell is the builder's scratch bookkeeping for one lattice position;
// it is discarded once the CellGrid is assembled.
type tempCell struct {
	corners      []tempCorner
	faces        []tempFace
	intersection geom.Intersection
	boundary     *boundary.Boundary
	complete     bool
	area         float64
	center       geom.Vector
	cell         *Cell
}

// CellGrid is the mesh of cells, faces and points produced by flood-filling
// a lattice and clipping it against a boundary.
type CellGrid struct {
	points []*Point
	faces  []*Face
	cells  []*Cell
}

// Points returns every emitted point, in the builder's deterministic
// emission order.
func (g *CellGrid) Points() []*Point { return g.points }

// Faces returns every emitted face, in the builder's deterministic
// emission order.
func (g *CellGrid) Faces() []*Face { return g.faces }

// Cells returns every retained cell, in the builder's deterministic
// emission order.
func (g *CellGrid) Cells() []*Cell { return g.cells }

type cellGridBuilder struct {
	params     lattice.CellParameters
	boundaries boundary.Set
	shape      int
	cells      map[lattice.Position]*tempCell
	points     []*Point
	faces      []*Face
}

// NewCellGrid flood-fills the lattice described by params starting at the
// origin, clips cells against the boundary set, discards clipped cells
// whose surviving area falls below params.ThresholdArea, and stitches the
// survivors into a mesh of shared points and faces.
func NewCellGrid(params lattice.CellParameters, boundaries boundary.Set, opts ...Option) (*CellGrid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	if cfg.strictAreaThreshold {
		params.ThresholdArea = 1
	}

	b := &cellGridBuilder{
		params:     params,
		boundaries: boundaries,
		shape:      lattice.Shape(params.Kind),
		cells:      map[lattice.Position]*tempCell{},
	}

	b.seed()
	b.flood()
	b.classify()
	b.propagateDroppedBoundaries()
	b.emitCells()
	b.emitSidesAndFaces()

	cells := make([]*Cell, 0, len(b.cells))
	for _, pos := range sortedPositions(b.cells) {
		if c := b.cells[pos].cell; c != nil {
			cells = append(cells, c)
		}
	}

	return &CellGrid{points: b.points, faces: b.faces, cells: cells}, nil
}

func (b *cellGridBuilder) getOrCreate(pos lattice.Position) *tempCell {
	c, ok := b.cells[pos]
	if !ok {
		c = &tempCell{
			corners: make([]tempCorner, b.shape),
			faces:   make([]tempFace, b.shape),
		}
		b.cells[pos] = c
	}
	return c
}

// sharingPositions returns pp and every PointPosition naming the same
// physical corner in a neighboring cell.
func (b *cellGridBuilder) sharingPositions(pp lattice.PointPosition) []lattice.PointPosition {
	sharers := lattice.PointNeighbors(b.params.Parameters, pp)
	result := make([]lattice.PointPosition, 0, len(sharers)+1)
	result = append(result, pp)
	return append(result, sharers...)
}

// seed marks corner 0 of the origin cell, and every position sharing it,
// active.
func (b *cellGridBuilder) seed() {
	pp := lattice.PointPosition{Position: lattice.Position{}, Point: 0}
	for _, sharer := range b.sharingPositions(pp) {
		b.getOrCreate(sharer.Position).corners[sharer.Point].status = active
	}
}

func (b *cellGridBuilder) hasActiveCorner() bool {
	for _, c := range b.cells {
		for i := range c.corners {
			if c.corners[i].status == active {
				return true
			}
		}
	}
	return false
}

// otherCornerOf returns the corner index, other than pivot, that face
// faceIdx connects.
func otherCornerOf(faceIdx, pivot, shape int) int {
	other := (faceIdx + 1) % shape
	if other == pivot {
		return faceIdx
	}
	return other
}

// probeFace probes the segment for faceIdx of the cell at pos against the
// boundary set, unless it has already been probed, and mirrors the result
// onto the face-neighbor's matching entry.
func (b *cellGridBuilder) probeFace(pos lattice.Position, faceIdx int) {
	cell := b.cells[pos]
	if cell.faces[faceIdx].probed {
		return
	}

	corners := lattice.Corners(b.params.Parameters, pos)
	a := corners[faceIdx]
	bb := corners[(faceIdx+1)%b.shape]
	hit, winner := b.boundaries.Probe(a, bb)

	cell.faces[faceIdx].probed = true
	cell.faces[faceIdx].intersection = hit
	cell.faces[faceIdx].boundary = winner
	if hit.Valid {
		cell.intersection = hit
		cell.boundary = winner
	}

	nfp := lattice.FaceNeighbor(b.params.Parameters, lattice.FacePosition{Position: pos, Face: faceIdx})
	ncell := b.getOrCreate(nfp.Position)
	ncell.faces[nfp.Face].probed = true
	ncell.faces[nfp.Face].intersection = hit
	ncell.faces[nfp.Face].boundary = winner
	if hit.Valid {
		ncell.intersection = hit
		ncell.boundary = winner
	}
}

func (b *cellGridBuilder) markToBeActive(pp lattice.PointPosition) {
	for _, sharer := range b.sharingPositions(pp) {
		c := b.getOrCreate(sharer.Position)
		if c.corners[sharer.Point].status == unreached || c.corners[sharer.Point].status == passive {
			c.corners[sharer.Point].status = toBeActive
		}
	}
}

// flood repeatedly probes the faces adjacent to every active corner,
// promotes unreached corners across missed faces to to_be_active, and ages
// to_be_active to active and active to passive, until no corner remains
// active.
func (b *cellGridBuilder) flood() {
	for b.hasActiveCorner() {
		positions := sortedPositions(b.cells)
		for _, pos := range positions {
			cell := b.cells[pos]
			for idx := 0; idx < b.shape; idx++ {
				if cell.corners[idx].status != active {
					continue
				}
				for _, faceIdx := range [2]int{idx, (idx - 1 + b.shape) % b.shape} {
					b.probeFace(pos, faceIdx)
				}
			}
		}

		for _, pos := range positions {
			cell := b.cells[pos]
			for idx := 0; idx < b.shape; idx++ {
				if cell.corners[idx].status != active {
					continue
				}
				for _, faceIdx := range [2]int{idx, (idx - 1 + b.shape) % b.shape} {
					face := cell.faces[faceIdx]
					if face.intersection.Valid {
						continue
					}
					other := otherCornerOf(faceIdx, idx, b.shape)
					if cell.corners[other].status == unreached {
						b.markToBeActive(lattice.PointPosition{Position: pos, Point: other})
					}
				}
			}
		}

		for _, cell := range b.cells {
			for i := range cell.corners {
				switch cell.corners[i].status {
				case toBeActive:
					cell.corners[i].status = active
				case active:
					cell.corners[i].status = passive
				}
			}
		}
	}
}

// vertexRef is one entry of a cell's ordered polygon walk: either a passive
// lattice corner (corner true, index the corner index) or a boundary point
// recorded on a face whose two corners differ in status (corner false,
// index the face index).
type vertexRef struct {
	corner bool
	index  int
}

func vertexSequence(cell *tempCell, shape int) []vertexRef {
	var seq []vertexRef
	for i := 0; i < shape; i++ {
		if cell.corners[i].status == passive {
			seq = append(seq, vertexRef{corner: true, index: i})
		}
		next := (i + 1) % shape
		if cell.corners[i].status != cell.corners[next].status && cell.faces[i].intersection.Valid {
			seq = append(seq, vertexRef{corner: false, index: i})
		}
	}
	return seq
}

func polygonAreaCenter(poly []geom.Vector) (float64, geom.Vector) {
	var area float64
	var center geom.Vector
	v0 := poly[0]
	for i := 1; i+1 < len(poly); i++ {
		v1, v2 := poly[i], poly[i+1]
		cross := (v1.X()-v0.X())*(v2.Y()-v0.Y()) - (v1.Y()-v0.Y())*(v2.X()-v0.X())
		triArea := cross / 2
		triCenter := v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
		area += triArea
		center = center.Add(triCenter.Scale(triArea))
	}
	if area != 0 {
		center = center.Scale(1 / area)
	}
	return area, center
}

// classify computes the area and center of every discovered cell and
// decides whether it clears params.ThresholdArea.
func (b *cellGridBuilder) classify() {
	nominal := lattice.NominalArea(b.params.Parameters)
	for _, pos := range sortedPositions(b.cells) {
		cell := b.cells[pos]

		allPassive := true
		anyIntersection := false
		for i := 0; i < b.shape; i++ {
			if cell.corners[i].status != passive {
				allPassive = false
			}
			if cell.faces[i].intersection.Valid {
				anyIntersection = true
			}
		}
		if allPassive && !anyIntersection {
			cell.complete = true
			cell.area = nominal
			cell.center = lattice.Center(b.params.Parameters, pos)
			continue
		}

		seq := vertexSequence(cell, b.shape)
		if len(seq) < 3 {
			cell.complete = false
			continue
		}
		corners := lattice.Corners(b.params.Parameters, pos)
		poly := make([]geom.Vector, len(seq))
		for i, ref := range seq {
			if ref.corner {
				poly[i] = corners[ref.index]
			} else {
				poly[i] = cell.faces[ref.index].intersection.Coord
			}
		}
		area, center := polygonAreaCenter(poly)
		cell.area = area
		cell.center = center
		cell.complete = area >= b.params.ThresholdArea*nominal
	}
}

// propagateDroppedBoundaries hands a dropped cell's recorded boundary
// touch to any complete face-neighbor that has none of its own, so that
// discarding a thin sliver never erases the domain's boundary metadata.
func (b *cellGridBuilder) propagateDroppedBoundaries() {
	for _, pos := range sortedPositions(b.cells) {
		cell := b.cells[pos]
		if cell.complete || !cell.intersection.Valid {
			continue
		}
		for f := 0; f < b.shape; f++ {
			nfp := lattice.FaceNeighbor(b.params.Parameters, lattice.FacePosition{Position: pos, Face: f})
			ncell, ok := b.cells[nfp.Position]
			if !ok || !ncell.complete || ncell.intersection.Valid {
				continue
			}
			ncell.intersection = cell.intersection
			ncell.boundary = cell.boundary
		}
	}
}

func (b *cellGridBuilder) emitCells() {
	for _, pos := range sortedPositions(b.cells) {
		cell := b.cells[pos]
		if !cell.complete {
			continue
		}
		var bnd *boundary.Boundary
		if cell.intersection.Valid {
			bnd = cell.boundary
		}
		cell.cell = newCell(cell.center, cell.area, bnd)
	}
}

func (b *cellGridBuilder) getOrCreateCornerPoint(pos lattice.Position, idx int) *Point {
	cell := b.cells[pos]
	if cell.corners[idx].point != nil {
		return cell.corners[idx].point
	}
	coord := lattice.Corners(b.params.Parameters, pos)[idx]
	pt := newCornerPoint(coord)
	b.points = append(b.points, pt)

	pp := lattice.PointPosition{Position: pos, Point: idx}
	for _, sharer := range b.sharingPositions(pp) {
		sc := b.getOrCreate(sharer.Position)
		sc.corners[sharer.Point].point = pt
	}
	return pt
}

func (b *cellGridBuilder) getOrCreateFacePoint(pos lattice.Position, faceIdx int) *Point {
	cell := b.cells[pos]
	if cell.faces[faceIdx].facePoint != nil {
		return cell.faces[faceIdx].facePoint
	}
	pt := newBoundaryPoint(cell.faces[faceIdx].intersection, cell.faces[faceIdx].boundary)
	b.points = append(b.points, pt)
	cell.faces[faceIdx].facePoint = pt

	nfp := lattice.FaceNeighbor(b.params.Parameters, lattice.FacePosition{Position: pos, Face: faceIdx})
	if ncell, ok := b.cells[nfp.Position]; ok {
		ncell.faces[nfp.Face].facePoint = pt
	}
	return pt
}

func (b *cellGridBuilder) getOrCreateRegularFace(pos lattice.Position, faceIdx int) *Face {
	cell := b.cells[pos]
	if cell.faces[faceIdx].face != nil {
		return cell.faces[faceIdx].face
	}
	a := b.getOrCreateCornerPoint(pos, faceIdx)
	bPt := b.getOrCreateCornerPoint(pos, (faceIdx+1)%b.shape)
	face := newFace(a, bPt)
	b.faces = append(b.faces, face)
	cell.faces[faceIdx].face = face

	nfp := lattice.FaceNeighbor(b.params.Parameters, lattice.FacePosition{Position: pos, Face: faceIdx})
	if ncell, ok := b.cells[nfp.Position]; ok {
		ncell.faces[nfp.Face].face = face
	}
	return face
}

func (b *cellGridBuilder) getOrCreateBoundaryFace(pos lattice.Position, faceIdx int) *Face {
	cell := b.cells[pos]
	if cell.faces[faceIdx].face != nil {
		return cell.faces[faceIdx].face
	}
	next := (faceIdx + 1) % b.shape
	boundaryPt := b.getOrCreateFacePoint(pos, faceIdx)

	var face *Face
	if cell.corners[faceIdx].status == passive {
		face = newFace(b.getOrCreateCornerPoint(pos, faceIdx), boundaryPt)
	} else {
		face = newFace(boundaryPt, b.getOrCreateCornerPoint(pos, next))
	}
	face.bound = cell.faces[faceIdx].boundary
	b.faces = append(b.faces, face)
	cell.faces[faceIdx].face = face

	nfp := lattice.FaceNeighbor(b.params.Parameters, lattice.FacePosition{Position: pos, Face: faceIdx})
	if ncell, ok := b.cells[nfp.Position]; ok {
		ncell.faces[nfp.Face].face = face
	}
	return face
}

func (b *cellGridBuilder) newIrregularFace(pos lattice.Position, curFaceIdx, nxtFaceIdx int) *Face {
	a := b.getOrCreateFacePoint(pos, curFaceIdx)
	bPt := b.getOrCreateFacePoint(pos, nxtFaceIdx)
	face := newFace(a, bPt)
	face.irregular = true
	b.faces = append(b.faces, face)
	return face
}

// sideFace resolves the face connecting the two consecutive polygon-walk
// entries cur and nxt, and reports the lattice face index it corresponds
// to (meaningless when irregular is true, since an irregular face spans no
// single lattice edge).
func (b *cellGridBuilder) sideFace(pos lattice.Position, cur, nxt vertexRef) (face *Face, faceIdx int, irregular bool) {
	switch {
	case cur.corner && nxt.corner:
		return b.getOrCreateRegularFace(pos, cur.index), cur.index, false
	case cur.corner != nxt.corner:
		idx := nxt.index
		if !cur.corner {
			idx = cur.index
		}
		return b.getOrCreateBoundaryFace(pos, idx), idx, false
	default:
		return b.newIrregularFace(pos, cur.index, nxt.index), -1, true
	}
}

// emitSidesAndFaces walks every complete cell's polygon a second time,
// this time materializing Points and Faces (or reusing ones a neighbor
// already created) and wiring each Side's face-neighbor cell and inwards
// orientation.
func (b *cellGridBuilder) emitSidesAndFaces() {
	for _, pos := range sortedPositions(b.cells) {
		cell := b.cells[pos]
		if !cell.complete {
			continue
		}

		seq := vertexSequence(cell, b.shape)
		n := len(seq)
		sides := make([]Side, n)
		for i, ref := range seq {
			if ref.corner {
				sides[i].Point = b.getOrCreateCornerPoint(pos, ref.index)
			} else {
				sides[i].Point = b.getOrCreateFacePoint(pos, ref.index)
			}
		}

		for k := 0; k < n; k++ {
			cur, nxt := seq[k], seq[(k+1)%n]
			face, faceIdx, irregular := b.sideFace(pos, cur, nxt)
			sides[k].Face = face
			if !irregular {
				nfp := lattice.FaceNeighbor(b.params.Parameters, lattice.FacePosition{Position: pos, Face: faceIdx})
				if ncell, ok := b.cells[nfp.Position]; ok && ncell.complete && ncell.cell != nil {
					sides[k].Neighbor = ncell.cell
				}
			}
			sides[k].Inwards = cell.center.Sub(face.Center()).Dot(face.Normal()) >= 0
		}

		cell.cell.sides = sides
	}
}
