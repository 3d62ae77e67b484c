// Package locate finds a quoted fragment inside a larger document
// despite the whitespace and casing noise two separate extraction
// steps leave behind. Strategies run as an ordered cascade from most
// to least trustworthy; the first hit wins.
package locate

import (
	"strings"

	"github.com/loupe-labs/loupe/internal/model"
	"github.com/loupe-labs/loupe/internal/util"
)

// strategyFunc scans document for quote and reports a byte span.
// Strategies are pure: no state, no knowledge of their ordering.
type strategyFunc func(doc, quote string) (start, end int, ok bool)

type strategy struct {
	kind model.MatchType
	find strategyFunc
}

// Locator resolves quotes to byte spans.
type Locator struct {
	cfg        model.LocateConfig
	strategies []strategy
}

// New creates a Locator with the given tuning
func New(cfg model.LocateConfig) *Locator {
	l := &Locator{cfg: cfg}
	l.strategies = []strategy{
		{model.MatchExact, exactMatch},
		{model.MatchNormalized, normalizedMatch},
		{model.MatchFuzzy, l.fuzzyMatch},
	}
	return l
}

// Locate runs the matching cascade. Stored offsets, when valid for
// this document, are trusted without any scanning. An empty or
// whitespace-only quote never matches.
func (l *Locator) Locate(doc, quote string, stored *model.Offsets) model.MatchResult {
	if doc == "" || strings.TrimSpace(quote) == "" {
		return model.MatchResult{Type: model.MatchNone}
	}

	if stored != nil && stored.ValidFor(len(doc)) {
		return model.MatchResult{
			Found: true,
			Start: stored.Start,
			End:   stored.End,
			Type:  model.MatchStored,
		}
	}

	for _, s := range l.strategies {
		if start, end, ok := s.find(doc, quote); ok {
			return model.MatchResult{Found: true, Start: start, End: end, Type: s.kind}
		}
	}
	return model.MatchResult{Type: model.MatchNone}
}

// Anchor computes storable offsets for a quote the way the ingest
// path does before persisting a fact: scanning only, no stored
// offsets to lean on.
func (l *Locator) Anchor(doc, quote string) (model.Offsets, bool) {
	m := l.Locate(doc, quote, nil)
	if !m.Found {
		return model.Offsets{}, false
	}
	return model.Offsets{Start: m.Start, End: m.End}, true
}

// exactMatch finds the quote verbatim, ignoring only letter case.
func exactMatch(doc, quote string) (int, int, bool) {
	i := util.IndexFold(doc, quote)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(quote), true
}

// normalizedMatch collapses whitespace runs in both document and
// quote, searches the collapsed space, and maps the hit back to
// original byte offsets.
func normalizedMatch(doc, quote string) (int, int, bool) {
	needle := util.FoldASCII(util.CollapseWhitespace(quote))
	collapsed, index := util.CollapseWithMap(doc)
	i := strings.Index(util.FoldASCII(collapsed), needle)
	if i < 0 {
		return 0, 0, false
	}
	start := index[i]
	end := index[i+len(needle)-1] + 1
	return start, end, true
}

// fuzzyMatch searches for the quote's leading characters only and
// extends the span to the quote's length as an approximation. Quotes
// no longer than the prefix were already tried whole by the
// normalized strategy.
func (l *Locator) fuzzyMatch(doc, quote string) (int, int, bool) {
	needle := util.FoldASCII(util.CollapseWhitespace(quote))
	prefix := runePrefix(needle, l.cfg.FuzzyPrefixLen)
	if prefix == "" || prefix == needle {
		return 0, 0, false
	}

	collapsed, index := util.CollapseWithMap(doc)
	i := strings.Index(util.FoldASCII(collapsed), prefix)
	if i < 0 {
		return 0, 0, false
	}
	start := index[i]
	end := start + len(quote)
	if end > len(doc) {
		end = len(doc)
	}
	return start, end, true
}

func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
