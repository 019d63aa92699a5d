/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package index

import (
	"strings"

	"github.com/tomcat2357/piilocator/common"
	"github.com/tomcat2357/piilocator/model"
	"github.com/tomcat2357/piilocator/normalize"
)

// Build traverses doc and produces a flat, dense-ided LineIndex (§4.2).
// Reading order within a page is preserved exactly as doc hands it over; no
// sorting is performed. A malformed line — no spans, an invalid span rect, or
// text that normalizes to empty — is dropped with a Warning on log and does
// not fail the build. If every line on every page is dropped the returned
// index is empty (len 0), not nil; every subsequent Locate call on it simply
// returns no rectangles (§4.2's failure semantics).
func Build(doc Document, log common.Logger) *model.LineIndex {
	if log == nil {
		log = common.DummyLogger{}
	}
	var records []model.LineRecord
	for _, page := range doc.Pages() {
		for blockIdx, block := range page.Blocks {
			for lineIdx, line := range block.Lines {
				rec, ok := buildLine(page.Number, line)
				if !ok {
					log.Warning("index: dropping malformed line (page=%d block=%d line=%d)",
						page.Number, blockIdx, lineIdx)
					continue
				}
				records = append(records, rec)
			}
		}
	}
	log.Debug("index: built %d lines across %d pages", len(records), len(doc.Pages()))
	return model.NewLineIndex(records)
}

// buildLine concatenates a line's span texts in reading order (no extra
// whitespace inserted between spans) and unions their rectangles. It reports
// ok=false for a line with no spans, an invalid span rect, or text that
// normalizes to empty.
func buildLine(pageNum int, line Line) (model.LineRecord, bool) {
	if len(line.Spans) == 0 {
		return model.LineRecord{}, false
	}

	var text strings.Builder
	rect := line.Spans[0].Rect
	if !rect.Valid() {
		return model.LineRecord{}, false
	}
	text.WriteString(line.Spans[0].Text)

	for _, span := range line.Spans[1:] {
		if !span.Rect.Valid() {
			return model.LineRecord{}, false
		}
		rect = rect.Union(span.Rect)
		text.WriteString(span.Text)
	}

	raw := text.String()
	if strings.TrimSpace(normalize.Normalize(raw).Text) == "" {
		return model.LineRecord{}, false
	}

	return model.LineRecord{PageNum: pageNum, Rect: rect, Text: raw}, true
}
