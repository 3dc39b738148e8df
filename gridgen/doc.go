// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package gridgen builds point grids and cellular grids inside a planar
// domain bounded by a boundary.Set. Construction is single-threaded,
// synchronous and deterministic: two grids built from equal inputs are
// element-wise equal. The resulting grid is immutable except for the
// caller-owned back-reference slices (StandalonePoint.Neighbors,
// Cell.Sides) it hands out.
package gridgen
