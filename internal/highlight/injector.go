// Package highlight wraps a located span in a single marker pair for
// an external renderer, guarding against matches so broad they would
// visually cover the whole document.
package highlight

import "github.com/loupe-labs/loupe/internal/model"

// Injector inserts highlight markers around located spans.
type Injector struct {
	cfg model.HighlightConfig
}

// New creates an Injector with the given marker pair and guard
// threshold.
func New(cfg model.HighlightConfig) *Injector {
	return &Injector{cfg: cfg}
}

// Inject wraps document[m.Start:m.End] in the configured markers.
// The text comes back untouched when there is no match, the span is
// not a valid slice of the document, or the span trips the
// broad-match guard; callers may still scroll to m.Start in every
// guarded case.
func (inj *Injector) Inject(doc string, m model.MatchResult) model.HighlightOutcome {
	if !m.Found || doc == "" {
		return model.HighlightOutcome{Text: doc}
	}
	if m.Start < 0 || m.Start > m.End || m.End > len(doc) {
		return model.HighlightOutcome{Text: doc}
	}
	if ratio := float64(m.End-m.Start) / float64(len(doc)); ratio > inj.cfg.BroadMatchThreshold {
		return model.HighlightOutcome{Text: doc}
	}

	marked := doc[:m.Start] + inj.cfg.MarkerStart + doc[m.Start:m.End] + inj.cfg.MarkerEnd + doc[m.End:]
	return model.HighlightOutcome{Text: marked, Applied: true}
}
