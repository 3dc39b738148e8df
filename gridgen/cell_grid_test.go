// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridgen

import (
	"math"
	"testing"

	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
	"github.com/latticeforge/gridgen/lattice"
)

func TestNewCellGrid_UnitSquare_ThresholdZero(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	if got, want := len(grid.Points()), 32; got != want {
		t.Errorf("len(Points()) = %v, want %v", got, want)
	}
	if got, want := len(grid.Faces()), 56; got != want {
		t.Errorf("len(Faces()) = %v, want %v", got, want)
	}
	if got, want := len(grid.Cells()), 25; got != want {
		t.Errorf("len(Cells()) = %v, want %v", got, want)
	}
}

func TestNewCellGrid_UnitSquare_ThresholdOne(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 1,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	if got, want := len(grid.Cells()), 9; got != want {
		t.Errorf("len(Cells()) = %v, want %v", got, want)
	}
	for _, c := range grid.Cells() {
		if got, want := c.Area(), lattice.NominalArea(params.Parameters); math.Abs(got-want) > 1e-9 {
			t.Errorf("cell area = %v, want nominal %v", got, want)
		}
	}
}

func TestNewCellGrid_WithStrictAreaThreshold(t *testing.T) {
	// size=0.4 leaves a single whole cell at the origin surrounded by a ring
	// of partial cells, so the strict and lenient thresholds keep different
	// numbers of cells.
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.4, 0.4)},
		ThresholdArea: 0,
	}
	strict, err := NewCellGrid(params, unitSquareBoundary(t), WithStrictAreaThreshold())
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	lenient, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	if len(strict.Cells()) >= len(lenient.Cells()) {
		t.Errorf("strict threshold kept %d cells, want fewer than lenient's %d", len(strict.Cells()), len(lenient.Cells()))
	}
}

func diskBoundary(t *testing.T) boundary.Set {
	t.Helper()
	bd, err := boundary.New(&geom.Circle{Center: geom.NewVector(0, 0), Radius: 1, NormalInward: true})
	if err != nil {
		t.Fatalf("boundary.New() error = %v", err)
	}
	return boundary.Set{bd}
}

func TestNewCellGrid_Disk_AreaMonotonicity(t *testing.T) {
	var lastCount int
	for i, threshold := range []float64{0, 0.25, 0.5, 0.75, 1} {
		params := lattice.CellParameters{
			Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
			ThresholdArea: threshold,
		}
		grid, err := NewCellGrid(params, diskBoundary(t))
		if err != nil {
			t.Fatalf("NewCellGrid() error = %v", err)
		}
		count := len(grid.Cells())
		if i > 0 && count > lastCount {
			t.Errorf("threshold %v kept %d cells, more than threshold %v's %d", threshold, count, []float64{0, 0.25, 0.5, 0.75, 1}[i-1], lastCount)
		}
		lastCount = count
	}
}

func TestNewCellGrid_Disk_AreaBound(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	grid, err := NewCellGrid(params, diskBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	var total float64
	for _, c := range grid.Cells() {
		total += c.Area()
	}
	domainArea := math.Pi * 1 * 1
	if total > domainArea+1e-6 {
		t.Errorf("sum of cell areas = %v, want <= domain area %v", total, domainArea)
	}
}

func TestNewCellGrid_EmptyDomain(t *testing.T) {
	// A tiny circle centered exactly on the origin cell's own corner 0
	// intersects every lattice edge incident to that corner, so neither it
	// nor any other corner the flood could reach ever escapes into the
	// surrounding lattice: the only cells ever discovered are the four
	// sharing that corner, and a threshold of 1 discards all four as
	// clipped.
	bd, err := boundary.New(&geom.Circle{Center: geom.NewVector(-0.5, -0.5), Radius: 0.1, NormalInward: true})
	if err != nil {
		t.Fatalf("boundary.New() error = %v", err)
	}
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(1, 1)},
		ThresholdArea: 1,
	}
	grid, err := NewCellGrid(params, boundary.Set{bd})
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	if got := len(grid.Cells()); got != 0 {
		t.Errorf("len(Cells()) = %v, want 0 when every reachable cell is clipped by a corner-hugging boundary", got)
	}
}

func TestNewCellGrid_Triangular_Shape(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Triangular, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0.5,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	if len(grid.Cells()) == 0 {
		t.Fatal("expected at least one cell")
	}
	for _, c := range grid.Cells() {
		if len(c.Sides()) < 3 {
			t.Errorf("cell has %d sides, want at least 3", len(c.Sides()))
		}
	}
}

func TestNewCellGrid_SimpleClosedPolygonAndArea(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}

	for _, c := range grid.Cells() {
		sides := c.Sides()
		if len(sides) < 3 {
			t.Errorf("cell %v has %d sides, want at least 3", c.Center(), len(sides))
			continue
		}
		var poly []geom.Vector
		for _, s := range sides {
			poly = append(poly, s.Point.Coord())
		}
		area, _ := polygonAreaCenter(poly)
		nominal := lattice.NominalArea(params.Parameters)
		if math.Abs(math.Abs(area)-c.Area()) > 1e-9*nominal {
			t.Errorf("signed polygon area %v does not match recorded area %v", area, c.Area())
		}
	}
}

func TestNewCellGrid_FaceReferenceCounts(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}

	refs := map[*Face]int{}
	irregular := map[*Face]bool{}
	for _, c := range grid.Cells() {
		for _, s := range c.Sides() {
			refs[s.Face]++
			irregular[s.Face] = s.Face.Irregular()
		}
	}
	for f, count := range refs {
		if irregular[f] {
			if count != 1 {
				t.Errorf("irregular face referenced by %d cells, want 1", count)
			}
			continue
		}
		if count != 1 && count != 2 {
			t.Errorf("face referenced by %d cells, want 1 or 2", count)
		}
	}
}

func TestNewCellGrid_PointIdentity(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}

	seen := map[geom.Vector]*Point{}
	for _, p := range grid.Points() {
		if other, ok := seen[p.Coord()]; ok && other != p {
			t.Errorf("two distinct points share coordinate %v", p.Coord())
		}
		seen[p.Coord()] = p
	}
}

func TestNewCellGrid_InwardsOrientation(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	grid, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}

	for _, c := range grid.Cells() {
		for _, s := range c.Sides() {
			dot := c.Center().Sub(s.Face.Center()).Dot(s.Face.Normal())
			if s.Inwards && dot < 0 {
				t.Errorf("side marked inwards but dot product = %v", dot)
			}
			if !s.Inwards && dot > 0 {
				t.Errorf("side marked outwards but dot product = %v", dot)
			}
		}
	}
}

func TestNewCellGrid_Determinism(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(0.3, 0.3)},
		ThresholdArea: 0,
	}
	a, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	b, err := NewCellGrid(params, unitSquareBoundary(t))
	if err != nil {
		t.Fatalf("NewCellGrid() error = %v", err)
	}
	if len(a.Cells()) != len(b.Cells()) {
		t.Fatalf("cell count differs across runs: %v vs %v", len(a.Cells()), len(b.Cells()))
	}
	for i := range a.Cells() {
		if a.Cells()[i].Center() != b.Cells()[i].Center() {
			t.Errorf("cell %d center differs across runs: %v vs %v", i, a.Cells()[i].Center(), b.Cells()[i].Center())
		}
	}
}

func TestNewCellGrid_InvalidThreshold(t *testing.T) {
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Square, Size: geom.NewVector(1, 1)},
		ThresholdArea: 1.5,
	}
	if _, err := NewCellGrid(params, unitSquareBoundary(t)); err == nil {
		t.Error("NewCellGrid() error = nil, want non-nil for out-of-range threshold_area")
	}
}
