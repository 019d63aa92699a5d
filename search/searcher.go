/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package search declares the upstream PageSearcher contract PreciseRectResolver
// calls (§4.5, §6.1): given a page, a needle, and a clip rectangle, return the
// tight rectangles that render the needle within the clip. The PDF parser
// that implements this for a real document is an external collaborator;
// subpackage spantext provides a reference implementation usable without one.
package search

import "github.com/tomcat2357/piilocator/model"

// PageSearcher performs a clipped substring search on a page. The clip is
// mandatory (§4.5 step 3): an unclipped search would return occurrences of
// needle anywhere on the page, not just within the validated line.
type PageSearcher interface {
	// SearchOnPageClipped returns the tight rectangles, in PDF user space,
	// that render needle within clip on page pageNum. An empty result is
	// legal and not an error — the caller treats it as an UnclippedMiss.
	SearchOnPageClipped(pageNum int, needle string, clip model.Rect) ([]model.Rect, error)
}
