package gridgen

import (
	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
)

// Point is a cellular-grid vertex: either an interior lattice corner or a
// point where the boundary cuts a cell edge.
type Point struct {
	coord  geom.Vector
	normal geom.Vector
	bound  *boundary.Boundary
}

func newCornerPoint(coord geom.Vector) *Point {
	return &Point{coord: coord}
}

func newBoundaryPoint(hit geom.Intersection, b *boundary.Boundary) *Point {
	return &Point{coord: hit.Coord, normal: hit.Normal, bound: b}
}

// Coord returns the point's coordinate.
func (p *Point) Coord() geom.Vector { return p.coord }

// Normal returns the boundary's outward normal at this point, or the zero
// vector if the point is an interior lattice corner.
func (p *Point) Normal() geom.Vector { return p.normal }

// Boundary returns the boundary this point was cut from, or nil for an
// interior lattice corner.
func (p *Point) Boundary() *boundary.Boundary { return p.bound }

// Face is the edge between two Points, shared by the one or two cells
// incident to it.
type Face struct {
	points    [2]*Point
	center    geom.Vector
	normal    geom.Vector
	length    float64
	bound     *boundary.Boundary
	irregular bool
}

func newFace(a, b *Point) *Face {
	direction := b.Coord().Sub(a.Coord())
	return &Face{
		points: [2]*Point{a, b},
		center: a.Coord().Add(b.Coord()).Scale(0.5),
		normal: geom.RotateCW(direction),
		length: direction.Norm(),
	}
}

// Points returns the face's two incident points.
func (f *Face) Points() [2]*Point { return f.points }

// Center returns the midpoint of the face.
func (f *Face) Center() geom.Vector { return f.center }

// Normal returns the face's canonical normal: the 90-degree
// counterclockwise rotation of (b-a), where (a, b) is the face's stored
// point pair. Whether this normal points into a particular cell is
// recorded on that cell's Side.Inwards.
func (f *Face) Normal() geom.Vector { return f.normal }

// Length returns the Euclidean length of the face.
func (f *Face) Length() float64 { return f.length }

// Boundary returns the boundary this face was cut from, or nil for a face
// that lies entirely inside the domain.
func (f *Face) Boundary() *boundary.Boundary { return f.bound }

// Irregular reports whether this face was synthesized to close a clipped
// cell's polygon along the boundary, rather than corresponding to a single
// lattice edge. An irregular face is referenced by exactly one cell.
func (f *Face) Irregular() bool { return f.irregular }

// Side is one edge of a Cell's polygon: the corner point clockwise of the
// face, the face itself, the neighboring cell across it (nil at the
// domain boundary), and whether the face's canonical normal points into
// this cell.
type Side struct {
	Point    *Point
	Face     *Face
	Neighbor *Cell
	Inwards  bool
}

// Cell is one tile of the cellular grid: its barycenter, its area, and its
// ordered sides. Side i is incident to Face i and Face i-1 mod
// len(Sides()), forming a simple closed polygon when walked in order.
type Cell struct {
	center geom.Vector
	area   float64
	bound  *boundary.Boundary
	sides  []Side
}

func newCell(center geom.Vector, area float64, b *boundary.Boundary) *Cell {
	return &Cell{center: center, area: area, bound: b}
}

// Center returns the cell's barycenter.
func (c *Cell) Center() geom.Vector { return c.center }

// Area returns the cell's area (the clipped area, for a cell cut by the
// boundary).
func (c *Cell) Area() float64 { return c.area }

// Boundary returns the boundary this cell touches, or nil for a cell
// entirely inside the domain. A cell that does not touch the boundary
// itself but has a face-neighbor dropped below the area threshold carries
// that neighbor's boundary instead.
func (c *Cell) Boundary() *boundary.Boundary { return c.bound }

// Sides returns the cell's ordered sides. The caller may mutate the
// returned slice's elements; the library places no further constraints on
// such mutation.
func (c *Cell) Sides() []Side { return c.sides }
