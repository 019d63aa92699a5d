/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package piilocator locates the on-page rectangles that render a PII string
// within a previously extracted line-geometry index of a PDF, so that
// downstream highlighting, redaction and masking can draw tight, stable
// annotations without reimplementing layout-aware substring search.
//
// The subpackages are, leaves first:
//
//	normalize  - the one canonical text transform query and line text share
//	model      - Rect, LineRecord, LineIndex, Query, LocatedRect
//	index      - builds a LineIndex from the upstream parser's page/block/line/span shape
//	search     - the PageSearcher contract the parser implements, plus a
//	             reference implementation (search/spantext) usable without one
//	locator    - CandidateSearcher, SequenceValidator, PreciseRectResolver,
//	             composed into the Locator type this package's doc comment describes
//	config     - the locator's single configuration knob, newline_convention
package piilocator
