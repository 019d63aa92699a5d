/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package locator composes the CandidateSearcher, SequenceValidator and
// PreciseRectResolver (§4.3-§4.5) into the Locator type callers build once
// per document and query many times, one call per detection instance (§6.2).
package locator

import (
	"github.com/tomcat2357/piilocator/model"
	"github.com/tomcat2357/piilocator/normalize"
)

// normalizedIndex is the LineIndex's lines paired with their precomputed
// normalized text, built once per Locator so every Locate call reuses it
// instead of re-normalizing the whole document per query.
type normalizedIndex struct {
	lines []model.LineRecord
	norm  []string // norm[i] is normalize.Normalize(lines[i].Text).Text
}

func buildNormalizedIndex(idx *model.LineIndex) *normalizedIndex {
	lines := idx.Lines()
	norm := make([]string, len(lines))
	for i, l := range lines {
		norm[i] = normalize.Normalize(l.Text).Text
	}
	return &normalizedIndex{lines: lines, norm: norm}
}

// candidateSets implements CandidateSearcher (§4.3): for a query of k
// normalized parts, produces k sets of line ids, each the ids whose
// normalized line text contains that part as a substring. An empty part
// (the query started or ended with a newline) trivially matches every line.
func (ni *normalizedIndex) candidateSets(parts []string) []map[int]bool {
	sets := make([]map[int]bool, len(parts))
	for i, rawPart := range parts {
		partNorm := normalize.Normalize(rawPart).Text
		set := make(map[int]bool)
		if partNorm == "" {
			for id := range ni.lines {
				set[id] = true
			}
		} else {
			for id, lineNorm := range ni.norm {
				if normalize.Contains(lineNorm, partNorm) {
					set[id] = true
				}
			}
		}
		sets[i] = set
	}
	return sets
}
