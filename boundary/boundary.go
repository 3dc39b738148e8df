// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package boundary owns the boundary figures that delimit a grid's domain
// and the linear-scan probing operation the builders use against them.
package boundary

import (
	"errors"

	"github.com/latticeforge/gridgen/geom"
)

// ErrNilFigure is returned by New when constructing a Boundary from a nil
// figure. This is the one construction-time failure the library raises.
var ErrNilFigure = errors.New("boundary: figure must not be nil")

// Boundary owns exactly one geom.Figure. It is the unit the grid builders
// probe against; a grid stores references to the Boundaries it was given
// but never takes ownership of them.
type Boundary struct {
	figure geom.Figure
}

// New constructs a Boundary from a figure. It returns ErrNilFigure if
// figure is nil.
func New(figure geom.Figure) (*Boundary, error) {
	if figure == nil {
		return nil, ErrNilFigure
	}
	return &Boundary{figure: figure}, nil
}

// Figure returns the boundary's figure.
func (b *Boundary) Figure() geom.Figure {
	return b.figure
}

// TypedBoundary attaches an opaque, caller-defined boundary-condition
// payload to a Boundary. Grid construction never reads Condition(); it is
// pass-through storage for the caller.
type TypedBoundary[C any] struct {
	*Boundary
	condition C
}

// NewTyped constructs a TypedBoundary carrying condition alongside figure.
func NewTyped[C any](figure geom.Figure, condition C) (*TypedBoundary[C], error) {
	b, err := New(figure)
	if err != nil {
		return nil, err
	}
	return &TypedBoundary[C]{Boundary: b, condition: condition}, nil
}

// Condition returns the boundary-condition payload attached at
// construction.
func (t *TypedBoundary[C]) Condition() C {
	return t.condition
}
