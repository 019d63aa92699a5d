/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package locator

import (
	"strings"

	"github.com/tomcat2357/piilocator/common"
)

// run is a validated consecutive span of line ids, all on the same page,
// selected as the single match for a query (§4.4).
type run struct {
	startID int
	k       int
}

// ids returns the k consecutive line ids in the run, in line order.
func (r run) ids() []int {
	ids := make([]int, r.k)
	for i := range ids {
		ids[i] = r.startID + i
	}
	return ids
}

// validate implements SequenceValidator (§4.4): scans candidate starts in
// ascending line-id order and returns the first run of k consecutive ids,
// all on one page, each id in its corresponding candidate set, whose
// normalized line texts — joined by a single space — contain queryNorm. If a
// second, later-starting run also satisfies the test, an AmbiguousRun
// diagnostic is logged (the first run in order is still what is returned;
// §7 makes this observable, not an error). Returns ok=false if no run
// satisfies the test (NoMatch, §7).
func (ni *normalizedIndex) validate(candidates []map[int]bool, queryNorm string, log common.Logger) (run, bool) {
	k := len(candidates)
	n := len(ni.lines)
	if k == 0 || n == 0 {
		return run{}, false
	}

	var selected run
	found := false
	for start := 0; start <= n-k; start++ {
		if !ni.runSatisfies(start, k, candidates, queryNorm) {
			continue
		}
		if !found {
			selected = run{startID: start, k: k}
			found = true
			continue
		}
		log.Warning("locator: ambiguous run — query also matches starting at line %d; using line %d",
			start, selected.startID)
		break
	}
	return selected, found
}

// runSatisfies checks the four conditions of §4.4 for a candidate run
// starting at line id `start`.
func (ni *normalizedIndex) runSatisfies(start, k int, candidates []map[int]bool, queryNorm string) bool {
	page := ni.lines[start].PageNum
	parts := make([]string, k)
	for j := 0; j < k; j++ {
		id := start + j
		if !candidates[j][id] {
			return false
		}
		if ni.lines[id].PageNum != page {
			return false
		}
		parts[j] = ni.norm[id]
	}
	joined := strings.Join(parts, " ")
	return strings.Contains(joined, queryNorm)
}
