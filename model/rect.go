/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package model holds the locator's core data types: the page-space
// rectangle, the flat line index built once per document, and the query and
// result types exchanged on every detection lookup.
package model

import "math"

// CoordSpace tags the coordinate system a Rect is expressed in. The locator
// only ever produces PDFUserSpace; viewport conversion is the consumer's job.
type CoordSpace string

// PDFUserSpace is the only coordinate space the locator emits: PDF user
// space, points, origin at the bottom-left of the page.
const PDFUserSpace CoordSpace = "pdf-user-space"

// Rect is an axis-aligned rectangle in PDF user space (points, bottom-left
// origin). X0 <= X1 and Y0 <= Y1 always hold for a well-formed Rect.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a Rect from two corners in either order, normalizing so
// that X0<=X1 and Y0<=Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Valid reports whether r has no NaN coordinates and a non-inverted extent.
func (r Rect) Valid() bool {
	if math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1) {
		return false
	}
	return r.X0 <= r.X1 && r.Y0 <= r.Y1
}

// Union returns the smallest axis-aligned rectangle that contains both r and
// other. Grounded on extractor/text_utils.go's rectUnion.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersects reports whether r and other overlap in both axes. Grounded on
// extractor/text_utils.go's intersects/intersectsX/intersectsY.
func (r Rect) Intersects(other Rect) bool {
	return r.X0 <= other.X1 && other.X0 <= r.X1 && r.Y0 <= other.Y1 && other.Y0 <= r.Y1
}

// Intersection returns the largest rectangle contained by both r and other,
// and false if they do not overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}, true
}

// ContainsWithTolerance reports whether r is contained within other, each
// edge allowed to stray by tol points. Used by callers validating §8's
// "rect is inside its line's rect, modulo 0.5pt" invariant.
func (r Rect) ContainsWithTolerance(other Rect, tol float64) bool {
	return r.X0 >= other.X0-tol && r.Y0 >= other.Y0-tol &&
		r.X1 <= other.X1+tol && r.Y1 <= other.Y1+tol
}
