/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package locator

import (
	"fmt"

	"github.com/tomcat2357/piilocator/common"
	"github.com/tomcat2357/piilocator/model"
	"github.com/tomcat2357/piilocator/search"
)

// resolve implements PreciseRectResolver (§4.5): for each line in r, clips a
// search for that line's part of the original (pre-normalization) query text
// to the line's bounding rectangle, and emits the tight rectangles the
// searcher finds there. Results are concatenated in run order; a line whose
// part is empty (the query's leading/trailing newline, §4.4 edge case)
// contributes nothing. A part that is nonempty but the searcher misses is an
// UnclippedMiss (§7): that line contributes nothing, a diagnostic is logged,
// and every other line's results are still returned.
func resolve(r run, lines []model.LineRecord, parts []string, searcher search.PageSearcher, log common.Logger) ([]model.LocatedRect, error) {
	var out []model.LocatedRect
	for j, id := range r.ids() {
		part := parts[j]
		if part == "" {
			continue
		}
		line := lines[id]
		rects, err := searcher.SearchOnPageClipped(line.PageNum, part, line.Rect)
		if err != nil {
			return nil, &Failure{Cause: CausePageSearchFailed, Err: fmt.Errorf("page %d line %d: %w", line.PageNum, id, err)}
		}
		if len(rects) == 0 {
			log.Notice("locator: unclipped miss — line %d had no rectangle for part %q", id, part)
			continue
		}
		for _, rect := range rects {
			out = append(out, model.LocatedRect{
				PageNum:    line.PageNum,
				LineNumber: j + 1,
				CoordSpace: model.PDFUserSpace,
				Rect:       model.ToWireRect(rect),
				LineID:     id,
			})
		}
	}
	return out, nil
}
