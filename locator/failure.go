/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package locator

import "fmt"

// FailureCause enumerates the unrecoverable conditions §7 surfaces to the
// caller as a Failure rather than reporting through the diagnostic sink.
// Recoverable conditions (MalformedLine, UnclippedMiss, NoMatch,
// AmbiguousRun) never reach here — they are logged and the call proceeds.
type FailureCause int

const (
	// CauseInvalidPage means a line referenced a page outside the document.
	CauseInvalidPage FailureCause = iota
	// CausePageSearchFailed means the upstream search.PageSearcher returned
	// an error — e.g. the underlying parser rejected the page or rectangle.
	CausePageSearchFailed
)

// String returns a short description of c.
func (c FailureCause) String() string {
	switch c {
	case CauseInvalidPage:
		return "invalid page"
	case CausePageSearchFailed:
		return "page search failed"
	default:
		return "unknown cause"
	}
}

// Failure is the single error type Locate returns for unrecoverable
// conditions (§7). Recoverable conditions never produce a Failure; they
// return a possibly-empty result instead.
type Failure struct {
	Cause FailureCause
	Err   error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("locator: %s: %v", f.Cause, f.Err)
	}
	return fmt.Sprintf("locator: %s", f.Cause)
}

// Unwrap allows errors.Is/errors.As to see the underlying cause.
func (f *Failure) Unwrap() error { return f.Err }
