package locate

import (
	"strings"

	"github.com/loupe-labs/loupe/internal/model"
	"github.com/loupe-labs/loupe/internal/util"
)

// VerifyIntegrity grades how faithfully a quote reproduces its source
// document. Whitespace-collapsed containment is the verified bar; a
// cascade hit below that bar means the quote drifted from the source
// text but its head still anchors, and anything less is a missing
// citation.
func (l *Locator) VerifyIntegrity(doc, quote string) model.IntegrityStatus {
	needle := util.FoldASCII(util.CollapseWhitespace(quote))
	if needle == "" {
		return model.IntegrityMissingCitation
	}
	hay := util.FoldASCII(util.CollapseWhitespace(doc))
	if strings.Contains(hay, needle) {
		return model.IntegrityVerified
	}
	if l.Locate(doc, quote, nil).Found {
		return model.IntegrityFuzzyMatch
	}
	return model.IntegrityMissingCitation
}
