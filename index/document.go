/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package index builds the flat, immutable LineIndex from the PDF parser's
// structured page representation (§4.2, §6.1 of the spec this module
// implements). The parser itself — content-stream decoding, glyph shaping,
// font lookup — is an external collaborator; this package only consumes the
// already-segmented Page -> Block -> Line -> Span shape it hands over.
package index

import "github.com/tomcat2357/piilocator/model"

// Span is a contiguous run of identically-styled text within a Line, as
// produced by the PDF extractor.
type Span struct {
	Text string
	Rect model.Rect
}

// Line is a single visual row of rendered text within a Block.
type Line struct {
	Spans []Span
}

// Block groups Lines the extractor considers part of the same layout block
// (paragraph, column, table cell, ...). The locator does not care about
// block boundaries beyond the lines they contain.
type Block struct {
	Lines []Line
}

// Page is one page of the document: its 0-based number, its dimensions in
// points (§6.1), and the blocks the extractor segmented it into. Width and
// Height are carried for upstream-contract fidelity; Build and the rest of
// §4 never read them — a line's own Rect is what locates it.
type Page struct {
	Number int
	Width  float64
	Height float64
	Blocks []Block
}

// Document is the upstream collaborator's contract (§6.1): an iterable of
// pages, each yielding blocks of lines of spans, in the extractor's reading
// order. Build does not re-sort anything it is given.
type Document interface {
	Pages() []Page
}

// SliceDocument is the simplest Document: a pre-built slice of pages. It is
// what hand-built tests and simple integrators use; a real PDF-parser
// adapter can satisfy the same interface without depending on this type.
type SliceDocument []Page

// Pages implements Document.
func (d SliceDocument) Pages() []Page { return d }
