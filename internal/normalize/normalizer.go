// Package normalize reshapes raw extraction dumps into reader-grade
// markdown: collapsed pseudo-tables become real tables, section titles
// become headings, and wall-of-text paragraphs reflow into readable
// chunks. The pipeline is deterministic and idempotent.
package normalize

import (
	"strings"

	"github.com/loupe-labs/loupe/internal/model"
)

// Normalizer runs the ordered normalization pipeline. Each stage
// consumes only the previous stage's output.
type Normalizer struct {
	cfg    model.NormalizeConfig
	stages []stage
}

type stage struct {
	name string
	fn   func(string) string
}

// New creates a Normalizer with the given tuning
func New(cfg model.NormalizeConfig) *Normalizer {
	n := &Normalizer{cfg: cfg}

	// Tables first: a repaired table line can no longer be mistaken
	// for a heading or a long paragraph.
	n.stages = []stage{
		{"inline-tables", n.repairInlineTables},
		{"block-tables", n.normalizeTableBlocks},
		{"headings", n.promoteHeadings},
		{"reflow", n.reflowParagraphs},
		{"cleanup", n.cleanupArtifacts},
	}
	return n
}

// Normalize transforms raw text into structured markup. It never
// fails: a stage that panics contributes nothing and its input flows
// on to the next stage unchanged.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	for _, s := range n.stages {
		text = runStage(s, text)
	}
	return strings.TrimSpace(text)
}

func runStage(s stage, input string) (out string) {
	defer func() {
		if recover() != nil {
			out = input
		}
	}()
	return s.fn(input)
}
