// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lattice

// FaceNeighbor returns the FacePosition of the same edge as seen from the
// other side. FaceNeighbor is an involution: FaceNeighbor(FaceNeighbor(fp))
// == fp.
func FaceNeighbor(p Parameters, fp FacePosition) FacePosition {
	switch p.Kind {
	case Triangular:
		one := 1
		if fp.Position.UpsideDown {
			one = -1
		}
		switch fp.Face {
		case 0:
			fp.Position.Yi -= one
		case 2:
			fp.Position.Xi -= one
		}
		fp.Position.UpsideDown = !fp.Position.UpsideDown
	case Hexagonal:
		switch fp.Face {
		case 0:
			fp.Position.Yi--
			fp.Position.Xi++
		case 1:
			fp.Position.Xi++
		case 2:
			fp.Position.Yi++
		case 3:
			fp.Position.Xi--
			fp.Position.Yi++
		case 4:
			fp.Position.Xi--
		default:
			fp.Position.Yi--
		}
		fp.Face = (fp.Face + 3) % 6
	default:
		switch fp.Face {
		case 0:
			fp.Position.Yi--
		case 1:
			fp.Position.Xi++
		case 2:
			fp.Position.Yi++
		default:
			fp.Position.Xi--
		}
		fp.Face = (fp.Face + 2) % 4
	}
	return fp
}

// PointNeighbors returns the other PointPositions naming the same corner
// in adjacent cells: up to 5 for the triangular tiling, 2 for hexagonal, 3
// for square.
func PointNeighbors(p Parameters, pp PointPosition) []PointPosition {
	switch p.Kind {
	case Triangular:
		return triangularPointNeighbors(pp)
	case Hexagonal:
		return hexagonalPointNeighbors(pp)
	default:
		return squarePointNeighbors(pp)
	}
}

func triangularPointNeighbors(pp PointPosition) []PointPosition {
	one := 1
	if pp.Position.UpsideDown {
		one = -1
	}
	result := make([]PointPosition, 5)
	for i := range result {
		result[i].Position = pp.Position
	}
	flip := func(i int) {
		result[i].Position.UpsideDown = !pp.Position.UpsideDown
	}

	switch pp.Point {
	case 0:
		result[0].Point = 2
		result[0].Position.Xi -= one
		flip(0)
		result[1].Point = 1
		result[1].Position.Xi -= one
		result[2].Point = 0
		result[2].Position.Xi -= one
		result[2].Position.Yi -= one
		flip(2)
		result[3].Point = 2
		result[3].Position.Yi -= one
		result[4].Point = 1
		result[4].Position.Yi -= one
		flip(4)
	case 1:
		result[0].Point = 0
		result[0].Position.Yi -= one
		flip(0)
		result[1].Point = 2
		result[1].Position.Xi += one
		result[1].Position.Yi -= one
		result[2].Point = 1
		result[2].Position.Xi += one
		result[2].Position.Yi -= one
		flip(2)
		result[3].Point = 0
		result[3].Position.Xi += one
		result[4].Point = 2
		flip(4)
	default:
		result[0].Point = 1
		flip(0)
		result[1].Point = 0
		result[1].Position.Yi += one
		result[2].Point = 2
		result[2].Position.Xi -= one
		result[2].Position.Yi += one
		flip(2)
		result[3].Point = 1
		result[3].Position.Xi -= one
		result[3].Position.Yi += one
		result[4].Point = 0
		result[4].Position.Xi += one
		flip(4)
	}
	return result
}

func hexagonalPointNeighbors(pp PointPosition) []PointPosition {
	result := make([]PointPosition, 2)
	result[0].Position = pp.Position
	result[1].Position = pp.Position

	switch pp.Point {
	case 0:
		result[0].Position.Yi--
		result[1].Position.Xi++
		result[1].Position.Yi--
	case 1:
		result[0].Position.Xi++
		result[0].Position.Yi--
		result[1].Position.Xi++
	case 2:
		result[0].Position.Xi++
		result[1].Position.Yi++
	case 3:
		result[0].Position.Yi++
		result[1].Position.Xi--
		result[1].Position.Yi++
	case 4:
		result[0].Position.Xi--
		result[0].Position.Yi++
		result[1].Position.Xi--
	default:
		result[0].Position.Xi--
		result[1].Position.Yi--
	}
	result[0].Point = (pp.Point + 2) % 6
	result[1].Point = (pp.Point + 4) % 6
	return result
}

func squarePointNeighbors(pp PointPosition) []PointPosition {
	result := make([]PointPosition, 3)
	for i := range result {
		result[i].Position = pp.Position
	}

	switch pp.Point {
	case 0:
		result[0].Position.Xi--
		result[1].Position.Xi--
		result[1].Position.Yi--
		result[2].Position.Yi--
	case 1:
		result[0].Position.Yi--
		result[1].Position.Xi++
		result[1].Position.Yi--
		result[2].Position.Xi++
	case 2:
		result[0].Position.Xi++
		result[1].Position.Xi++
		result[1].Position.Yi++
		result[2].Position.Yi++
	default:
		result[0].Position.Yi++
		result[1].Position.Xi--
		result[1].Position.Yi++
		result[2].Position.Xi--
	}
	result[0].Point = (pp.Point + 1) % 4
	result[1].Point = (pp.Point + 2) % 4
	result[2].Point = (pp.Point + 3) % 4
	return result
}
