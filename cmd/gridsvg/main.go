// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command gridsvg renders a cell grid built over a random convex domain to
// an SVG file, for visual sanity-checking during development. It is a
// consumer of package gridgen, not part of it.
package main

import (
	"log"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/latticeforge/gridgen/boundary"
	"github.com/latticeforge/gridgen/geom"
	"github.com/latticeforge/gridgen/gridgen"
	"github.com/latticeforge/gridgen/gridutil"
	"github.com/latticeforge/gridgen/hull"
	"github.com/latticeforge/gridgen/lattice"
)

const (
	filename = "grid.svg"

	width  = 900
	height = 900
	margin = 40

	interiorStyle = "fill:rgb(235,235,245);stroke:rgb(90,90,90);stroke-width:1"
	clippedStyle  = "fill:rgb(255,230,200);stroke:rgb(90,90,90);stroke-width:1"
	pointStyle    = "fill:rgb(200,30,30)"
)

func fitScreen(boundaries boundary.Set) func(geom.Vector) (int, int) {
	var corners []geom.Vector
	for _, b := range boundaries {
		if line, ok := b.Figure().(*geom.Line); ok {
			corners = append(corners, line.A, line.B)
		}
	}
	hullPoints := hull.Convex(corners)

	minX, minY := hullPoints[0].X(), hullPoints[0].Y()
	maxX, maxY := minX, minY
	for _, p := range hullPoints {
		minX, maxX = min(minX, p.X()), max(maxX, p.X())
		minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
	}

	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := min(float64(width-2*margin)/spanX, float64(height-2*margin)/spanY)

	return func(v geom.Vector) (int, int) {
		x := margin + int((v.X()-minX)*scale)
		y := height - margin - int((v.Y()-minY)*scale)
		return x, y
	}
}

func renderGrid(grid *gridgen.CellGrid, boundaries boundary.Set) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	toScreen := fitScreen(boundaries)

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	for _, cell := range grid.Cells() {
		sides := cell.Sides()
		xs := make([]int, len(sides))
		ys := make([]int, len(sides))
		touchesBoundary := cell.Boundary() != nil
		for i, s := range sides {
			xs[i], ys[i] = toScreen(s.Point.Coord())
		}
		style := interiorStyle
		if touchesBoundary {
			style = clippedStyle
		}
		canvas.Polygon(xs, ys, style)
	}

	for _, p := range grid.Points() {
		x, y := toScreen(p.Coord())
		canvas.Circle(x, y, 2, pointStyle)
	}

	canvas.End()
	return nil
}

func main() {
	const (
		hullPoints = 12
		seed       = 42
	)

	boundaries := gridutil.RandomConvexBoundary(hullPoints, seed)
	params := lattice.CellParameters{
		Parameters:    lattice.Parameters{Kind: lattice.Hexagonal, Size: geom.NewVector(0.05, 0.05)},
		ThresholdArea: 0.5,
	}

	grid, err := gridgen.NewCellGrid(params, boundaries)
	if err != nil {
		log.Fatal(err)
	}

	if err := renderGrid(grid, boundaries); err != nil {
		log.Fatal(err)
	}
}
