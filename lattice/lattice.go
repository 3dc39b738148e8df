// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lattice computes the pure geometric addressing for the three
// regular tilings (triangular, square, hexagonal) that grids are built
// from: cell centers, corner coordinates, and the lattice position of the
// neighbor across a given face or around a given corner. It holds no
// state of its own; every function is a pure mapping from a lattice
// position to plane coordinates or to another lattice position.
package lattice

import (
	"fmt"
	"math"

	"github.com/latticeforge/gridgen/geom"
)

// Kind selects the regular tiling a grid is built from.
type Kind int

const (
	// Square is the default tiling: 4 corners/faces per cell.
	Square Kind = iota
	// Triangular alternates upright and upside-down triangles: 3
	// corners/faces per cell.
	Triangular
	// Hexagonal: 6 corners/faces per cell.
	Hexagonal
)

// Parameters are the tiling parameters shared by point grids and cell
// grids.
type Parameters struct {
	Kind        Kind
	Origin      geom.Vector
	Size        geom.Vector
	Inclination float64
}

// DefaultParameters returns the library's documented defaults: square
// tiling, origin at (0,0), unit size, no inclination.
func DefaultParameters() Parameters {
	return Parameters{
		Kind:   Square,
		Origin: geom.NewVector(0, 0),
		Size:   geom.NewVector(1, 1),
	}
}

// Validate reports an error if Size has a non-positive component. The
// original C++ source left this as undefined behavior; this port treats a
// degenerate lattice as a construction-time input error.
func (p Parameters) Validate() error {
	if p.Size.X() <= 0 || p.Size.Y() <= 0 {
		return fmt.Errorf("lattice: size must be positive, got (%v, %v)", p.Size.X(), p.Size.Y())
	}
	return nil
}

// CellParameters adds the clipped-cell retention threshold to Parameters.
type CellParameters struct {
	Parameters
	ThresholdArea float64
}

// DefaultCellParameters returns Parameters defaults plus the documented
// threshold_area default of 0.5.
func DefaultCellParameters() CellParameters {
	return CellParameters{Parameters: DefaultParameters(), ThresholdArea: 0.5}
}

// Validate additionally requires ThresholdArea to be within [0, 1].
func (p CellParameters) Validate() error {
	if err := p.Parameters.Validate(); err != nil {
		return err
	}
	if p.ThresholdArea < 0 || p.ThresholdArea > 1 {
		return fmt.Errorf("lattice: threshold_area must be in [0, 1], got %v", p.ThresholdArea)
	}
	return nil
}

// Shape returns the number of corners (and faces) per cell for kind: 3, 4
// or 6.
func Shape(kind Kind) int {
	switch kind {
	case Triangular:
		return 3
	case Hexagonal:
		return 6
	default:
		return 4
	}
}

// NominalArea returns the area in plane units of a full, unclipped cell.
func NominalArea(p Parameters) float64 {
	switch p.Kind {
	case Triangular:
		return p.Size.X() * p.Size.Y() * math.Sqrt(3) / 4
	case Hexagonal:
		return 6 * p.Size.X() * p.Size.Y() * math.Sqrt(3) / 4
	default:
		return p.Size.X() * p.Size.Y()
	}
}

func place(p Parameters, coord geom.Vector) geom.Vector {
	scaled := geom.NewVector(p.Size.X()*coord.X(), p.Size.Y()*coord.Y())
	return p.Origin.Add(geom.Rotate(scaled, p.Inclination))
}
