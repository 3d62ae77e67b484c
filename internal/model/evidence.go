package model

// Offsets are character positions captured by the upstream extractor
// against the exact raw document bytes. They are only trustworthy for
// the byte-identical text they were recorded against.
type Offsets struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ValidFor reports whether the offsets describe a non-empty span inside
// a document of the given length
func (o Offsets) ValidFor(docLen int) bool {
	return o.Start >= 0 && o.Start < o.End && o.End <= docLen
}

// MatchType records which localization strategy established a span
type MatchType string

const (
	MatchStored     MatchType = "stored"     // Stored offsets, no scanning
	MatchExact      MatchType = "exact"      // Case-insensitive substring hit
	MatchNormalized MatchType = "normalized" // Hit after whitespace collapsing
	MatchFuzzy      MatchType = "fuzzy"      // Prefix hit, approximated span
	MatchNone       MatchType = "none"       // Every strategy failed
)

// MatchResult is the outcome of localizing one quote in one document.
// Start and End are byte offsets into the document that was searched.
// When Found is false the offsets are meaningless and must not be read.
type MatchResult struct {
	Found bool      `json:"found"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Type  MatchType `json:"match_type"`
}

// Span returns the matched slice of doc, or "" for a failed match
func (m MatchResult) Span(doc string) string {
	if !m.Found || m.Start < 0 || m.End > len(doc) || m.Start > m.End {
		return ""
	}
	return doc[m.Start:m.End]
}

// MatchQuality is the user-facing trust label for a match. Higher
// TrustRank means a more reliable localization.
type MatchQuality struct {
	Label     string `json:"label"`
	TrustRank int    `json:"trust_rank"`
}

// HighlightOutcome is the result of injecting a highlight marker.
// Applied is false when the input text was returned unchanged, either
// because nothing was found or because the broad-match guard tripped.
type HighlightOutcome struct {
	Text    string `json:"text"`
	Applied bool   `json:"applied"`
}

// IntegrityStatus classifies how faithfully a quote reproduces its source
type IntegrityStatus string

const (
	IntegrityVerified        IntegrityStatus = "VERIFIED"         // Quote appears verbatim (modulo whitespace)
	IntegrityFuzzyMatch      IntegrityStatus = "FUZZY_MATCH"      // Quote drifted from the source text
	IntegrityMissingCitation IntegrityStatus = "MISSING_CITATION" // No quote to verify
)
