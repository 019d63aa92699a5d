/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package locator

import (
	"github.com/tomcat2357/piilocator/common"
	"github.com/tomcat2357/piilocator/index"
	"github.com/tomcat2357/piilocator/model"
	"github.com/tomcat2357/piilocator/normalize"
	"github.com/tomcat2357/piilocator/search"
)

// Options configures a Locator. The zero value is valid: it defaults to the
// "lf" newline convention and a DummyLogger that discards diagnostics.
type Options struct {
	// NewlineConvention controls how query text is split into line-parts
	// (§6.3). Defaults to model.NewlineLF.
	NewlineConvention model.NewlineConvention
	// Logger receives the recoverable-condition diagnostics described in §7.
	// Defaults to common.DummyLogger{}.
	Logger common.Logger
}

func (o Options) withDefaults() Options {
	if o.NewlineConvention == "" {
		o.NewlineConvention = model.NewlineLF
	}
	if o.Logger == nil {
		o.Logger = common.DummyLogger{}
	}
	return o
}

// Locator is the PDF Text Locator (§2): built once per document, queried
// many times, one call per detection instance. It is safe for concurrent
// Locate calls once Build has returned; it holds no mutable state after
// that point other than whatever the supplied search.PageSearcher itself
// needs to guard (§5's shared-resource policy is the PageSearcher
// implementation's responsibility, not the Locator's).
type Locator struct {
	opts     Options
	searcher search.PageSearcher
	idx      *model.LineIndex
	ni       *normalizedIndex
}

// New creates a Locator that resolves precise rectangles through searcher.
// Call Build before the first Locate.
func New(searcher search.PageSearcher, opts Options) *Locator {
	return &Locator{opts: opts.withDefaults(), searcher: searcher}
}

// Build traverses doc and constructs the Locator's LineIndex (§4.2, §6.2).
// It is not safe to call concurrently with itself or with Locate; call it
// once, before any Locate call, per document open.
func (l *Locator) Build(doc index.Document) *model.LineIndex {
	idx := index.Build(doc, l.opts.Logger)
	l.idx = idx
	l.ni = buildNormalizedIndex(idx)
	return idx
}

// LineIndex returns the index built by the most recent Build call, or nil if
// Build has not been called.
func (l *Locator) LineIndex() *model.LineIndex {
	return l.idx
}

// Locate finds the on-page rectangles that render queryText (§4.3-§4.5,
// §6.2). It returns an empty, nil-error slice for EmptyIndex, NoMatch, and a
// query whose only validated run resolves to zero rectangles — all of these
// are "position not found", not failures (§7). It returns a non-nil error
// only for the unrecoverable conditions in FailureCause.
func (l *Locator) Locate(queryText string) ([]model.LocatedRect, error) {
	if l.ni == nil || len(l.ni.lines) == 0 {
		return nil, nil
	}

	query := model.NewQuery(queryText, l.opts.NewlineConvention)
	queryNorm := normalize.Normalize(query.Text).Text

	candidates := l.ni.candidateSets(query.Parts)
	selected, ok := l.ni.validate(candidates, queryNorm, l.opts.Logger)
	if !ok {
		l.opts.Logger.Notice("locator: no match for query")
		return nil, nil
	}

	return resolve(selected, l.ni.lines, query.Parts, l.searcher, l.opts.Logger)
}
