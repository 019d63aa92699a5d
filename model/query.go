/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "strings"

// NewlineConvention controls how a query's raw text is split into the
// per-line Parts of a Query. It is the single knob in the core contract
// (§6.3 of the spec this module implements).
type NewlineConvention string

const (
	// NewlineLF splits only on "\n". The default.
	NewlineLF NewlineConvention = "lf"
	// NewlineCRLF splits only on "\r\n".
	NewlineCRLF NewlineConvention = "crlf"
	// NewlineEither splits on either "\r\n" or "\n".
	NewlineEither NewlineConvention = "either"
)

// Query is a PII string to locate, split into the line-parts it would occupy
// if rendered across one or more visual lines.
type Query struct {
	// Text is the original, unsplit query string.
	Text string
	// Parts is Text split by conv. len(Parts) >= 1. A non-final part ends
	// where a newline was present in Text.
	Parts []string
}

// NewQuery splits text into a Query according to conv. An empty or unknown
// conv falls back to NewlineLF, the documented default.
func NewQuery(text string, conv NewlineConvention) Query {
	var sep string
	split := text
	switch conv {
	case NewlineCRLF:
		sep = "\r\n"
	case NewlineEither:
		split = strings.ReplaceAll(text, "\r\n", "\n")
		sep = "\n"
	default:
		sep = "\n"
	}
	return Query{Text: text, Parts: strings.Split(split, sep)}
}

// K returns the number of line-parts in the query.
func (q Query) K() int {
	return len(q.Parts)
}
