/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// LocatedRect is one on-page rectangle that renders part (or all) of a
// located query. A single Locate call returns these in run order: line_number
// is monotone within the run.
type LocatedRect struct {
	PageNum    int        `json:"page_num"`
	LineNumber int        `json:"line_number"` // 1-based within the located run.
	CoordSpace CoordSpace `json:"coord_space"`
	Rect       WireRect   `json:"rect"`
	// LineID is the id of the LineRecord this rectangle was resolved
	// against. Not part of the wire form (§6.2); useful for callers that
	// hold the same LineIndex and want to cross-reference.
	LineID int `json:"-"`
}

// WireRect is the JSON-serializable form of Rect, matching §6.2's wire
// contract field names exactly (x0/y0/x1/y1, not X0/Y0/X1/Y1).
type WireRect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// ToWireRect converts a Rect to its wire form.
func ToWireRect(r Rect) WireRect {
	return WireRect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

// Rect converts a WireRect back to a Rect.
func (w WireRect) Rect() Rect {
	return Rect{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
}
