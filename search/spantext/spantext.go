/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package spantext is a reference implementation of search.PageSearcher that
// works from nothing more than the span-level text+rect geometry the §6.1
// upstream contract already guarantees — no real PDF parser required. It is
// what the end-to-end boundary scenarios in the test suite exercise, and it
// is a usable default for integrators who have span geometry but no glyph
// search of their own.
//
// It is grounded on the same idea as extractor/text_mark.go's TextMark and
// extractor/text.go's TextMarkArray.BBox/RangeOffset: map a substring of
// extracted text back to a page rectangle. Where the teacher tracks a
// rectangle per character (from the text rendering matrix), this package
// only has a rectangle per span, so it approximates a character's position
// within a span by linear interpolation across the span's rune count. That
// approximation is exact for monospaced text and a reasonable bound
// otherwise; search.PageSearcher implementations backed by a real text
// engine (e.g. one that tracks per-glyph advances) will be tighter.
package spantext

import (
	"sort"
	"strings"

	"github.com/tomcat2357/piilocator/index"
	"github.com/tomcat2357/piilocator/model"
	"github.com/tomcat2357/piilocator/normalize"
)

// span is one span of a page, with the rune count of its text precomputed.
type span struct {
	rect      model.Rect
	text      string
	runeCount int
}

// Searcher indexes a Document's spans per page so SearchOnPageClipped can
// reconstruct a line's text from whichever spans fall within its clip rect.
type Searcher struct {
	byPage map[int][]span
}

// New builds a Searcher from doc. doc is typically the same Document passed
// to index.Build.
func New(doc index.Document) *Searcher {
	s := &Searcher{byPage: make(map[int][]span)}
	for _, page := range doc.Pages() {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, sp := range line.Spans {
					s.byPage[page.Number] = append(s.byPage[page.Number], span{
						rect:      sp.Rect,
						text:      sp.Text,
						runeCount: len([]rune(sp.Text)),
					})
				}
			}
		}
	}
	return s
}

// SearchOnPageClipped implements search.PageSearcher.
func (s *Searcher) SearchOnPageClipped(pageNum int, needle string, clip model.Rect) ([]model.Rect, error) {
	if needle == "" {
		return nil, nil
	}
	spans := spansInClip(s.byPage[pageNum], clip)
	if len(spans) == 0 {
		return nil, nil
	}

	var raw strings.Builder
	for _, sp := range spans {
		raw.WriteString(sp.text)
	}
	rawText := raw.String()

	normResult := normalize.Normalize(rawText)
	needleNorm := normalize.Normalize(needle).Text
	if needleNorm == "" {
		return nil, nil
	}

	byteIdx := strings.Index(normResult.Text, needleNorm)
	if byteIdx < 0 {
		return nil, nil
	}
	runeStart := normalize.RuneIndexAtByte(normResult.Text, byteIdx)
	runeEnd := normalize.RuneIndexAtByte(normResult.Text, byteIdx+len(needleNorm))
	if runeEnd > len(normResult.ByteMap) {
		runeEnd = len(normResult.ByteMap)
	}
	if runeStart >= runeEnd || runeStart >= len(normResult.ByteMap) {
		return nil, nil
	}

	rawStart := normResult.ByteMap[runeStart]
	rawEnd := len(rawText)
	if runeEnd < len(normResult.ByteMap) {
		rawEnd = normResult.ByteMap[runeEnd]
	}

	rawRuneStart := normalize.RuneIndexAtByte(rawText, rawStart)
	rawRuneEnd := normalize.RuneIndexAtByte(rawText, rawEnd)

	return rectsForRuneRange(spans, rawRuneStart, rawRuneEnd), nil
}

// spansInClip returns the spans whose rect lies within clip, preserving
// reading order.
func spansInClip(all []span, clip model.Rect) []span {
	var out []span
	for _, sp := range all {
		if sp.rect.ContainsWithTolerance(clip, 0) {
			out = append(out, sp)
		}
	}
	return out
}

// rectsForRuneRange returns one rectangle per span that the rune range
// [runeStart, runeEnd) of the spans' concatenated text overlaps, each
// narrowed to the fraction of the span's width the overlapping runes occupy.
func rectsForRuneRange(spans []span, runeStart, runeEnd int) []model.Rect {
	var rects []model.Rect
	base := 0
	for _, sp := range spans {
		spanStart, spanEnd := base, base+sp.runeCount
		base = spanEnd
		if sp.runeCount == 0 {
			continue
		}
		lo := max(runeStart, spanStart)
		hi := min(runeEnd, spanEnd)
		if lo >= hi {
			continue
		}
		rects = append(rects, interpolate(sp, lo-spanStart, hi-spanStart))
	}
	sort.SliceStable(rects, func(i, j int) bool { return rects[i].X0 < rects[j].X0 })
	return rects
}

// interpolate narrows sp's rect horizontally to the [from, to) rune range,
// assuming each rune occupies an equal fraction of the span's width.
func interpolate(sp span, from, to int) model.Rect {
	width := sp.rect.X1 - sp.rect.X0
	frac0 := float64(from) / float64(sp.runeCount)
	frac1 := float64(to) / float64(sp.runeCount)
	return model.Rect{
		X0: sp.rect.X0 + width*frac0,
		Y0: sp.rect.Y0,
		X1: sp.rect.X0 + width*frac1,
		Y1: sp.rect.Y1,
	}
}
