/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// LineRecord is one visual line of a PDF page: its reading-order text as
// extracted (not normalized) and the axis-aligned union of its spans' boxes.
type LineRecord struct {
	// ID is the record's position in the owning LineIndex. Dense, starting
	// at 0, and stable for the lifetime of the index.
	ID int
	// PageNum is the 0-based page this line belongs to.
	PageNum int
	// Rect is the span-union bounding box of the line, in PDF user space.
	Rect Rect
	// Text is the raw concatenation of the line's span texts, reading order,
	// no extra whitespace inserted between spans.
	Text string
}

// LineIndex is the flat, immutable, dense-ided sequence of LineRecords built
// once per document by index.Build and shared read-only by every query.
type LineIndex struct {
	lines []LineRecord
}

// NewLineIndex wraps lines into a LineIndex, assigning dense ids in order.
// Callers should not mutate lines after this call.
func NewLineIndex(lines []LineRecord) *LineIndex {
	for i := range lines {
		lines[i].ID = i
	}
	return &LineIndex{lines: lines}
}

// Len returns the number of lines in the index.
func (idx *LineIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.lines)
}

// Line returns the record with the given id. The second return is false for
// an out-of-range id.
func (idx *LineIndex) Line(id int) (LineRecord, bool) {
	if idx == nil || id < 0 || id >= len(idx.lines) {
		return LineRecord{}, false
	}
	return idx.lines[id], true
}

// Lines returns the full backing slice. Callers must treat it as read-only;
// the LineIndex shares it across every concurrent query.
func (idx *LineIndex) Lines() []LineRecord {
	if idx == nil {
		return nil
	}
	return idx.lines
}
