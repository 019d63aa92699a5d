/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package normalize implements the single canonical text transform the
// locator applies identically to stored line text and query strings, so
// substring membership is well-defined under whitespace and width-variant
// differences. See TextNormalizer in the design: normalize is a leaf package
// that imports nothing else from this module.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Result is the output of Normalize: the normalized text plus a reverse
// mapping from each kept codepoint back to its source byte offset.
type Result struct {
	// Text is the normalized string.
	Text string
	// ByteMap[i] is the byte offset in the original source string of the
	// rune at position i (by rune index, not byte index) of Text. Removed
	// or collapsed positions are not represented.
	ByteMap []int
}

// isZeroWidth reports whether r is one of the zero-width codepoints the
// contract removes outright (not merely folded to space).
func isZeroWidth(r rune) bool {
	return r == 0x200B || r == 0xFEFF
}

// Normalize applies NFKC normalization, folds every Unicode whitespace
// codepoint (including the full-width space U+3000, tab, CR, LF, NBSP) to a
// single ASCII space, collapses runs of spaces to one, trims the result, and
// drops zero-width codepoints. After NFKC, every wide rune that has a
// halfwidth variant is mapped to that variant (width.Narrow). Case folding is deliberately not applied:
// Japanese dominates this tool's input and casefolding would not help it,
// while it would corrupt Latin-embedded identifiers (case-sensitive IDs,
// mixed-case names). The transform is total: it never errors, and it is
// idempotent, i.e. Normalize(Normalize(s).Text).Text == Normalize(s).Text.
func Normalize(s string) Result {
	// NFKC does not give us a source byte offset per output rune on its own,
	// so we normalize rune-by-rune and walk the original string in lockstep.
	// This keeps the mapping exact without reaching for a lower-level
	// transform.Iterator, at the cost of not composing across rune
	// boundaries (e.g. base+combining-accent pairs) the way a whole-string
	// NFKC pass would; Japanese text and the Latin IDs embedded in it are
	// already precomposed, so this does not affect the documents this tool
	// targets.
	var b strings.Builder
	byteMap := make([]int, 0, len(s))
	pendingSpace := false
	spaceStart := 0 // source offset of the first whitespace rune of a pending run
	haveOutput := false

	offset := 0
	for _, r := range s {
		start := offset
		offset += utf8RuneLen(r)

		if isZeroWidth(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if haveOutput && !pendingSpace {
				pendingSpace = true
				spaceStart = start
			}
			continue
		}
		if pendingSpace {
			b.WriteRune(' ')
			byteMap = append(byteMap, spaceStart)
			pendingSpace = false
		}
		// Run this single rune through NFKC so width variants and
		// compatibility forms fold (e.g. fullwidth ASCII to ASCII).
		// width.Narrow then maps a wide rune that has a halfwidth variant
		// to that variant (e.g. katakana "ア" to "ｱ", "。" to "｡").
		folded := width.Narrow.String(norm.NFKC.String(string(r)))
		for _, fr := range folded {
			if isZeroWidth(fr) {
				continue
			}
			if unicode.IsSpace(fr) {
				if haveOutput && !pendingSpace {
					pendingSpace = true
					spaceStart = start
				}
				continue
			}
			b.WriteRune(fr)
			byteMap = append(byteMap, start)
			haveOutput = true
		}
	}

	return Result{Text: b.String(), ByteMap: byteMap}
}

func utf8RuneLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// RuneIndexAtByte returns the rune index within text of the codepoint
// starting at byte offset b. b must land on a rune boundary (true for any
// offset returned by strings.Index against text).
func RuneIndexAtByte(text string, b int) int {
	n := 0
	for i := range text {
		if i >= b {
			return n
		}
		n++
	}
	return n
}

// Contains reports whether the normalized form of haystack contains the
// normalized form of needle as a byte-wise substring of their NFKC-normalized
// UTF-8 text, per §4.3's comparison rule. An empty needle always matches.
func Contains(haystackNorm, needleNorm string) bool {
	return strings.Contains(haystackNorm, needleNorm)
}
