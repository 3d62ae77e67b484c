package model

// FactRecord is one extracted fact as exported by the upstream
// extraction subsystem: the quote supporting it plus the file holding
// the raw source text it was extracted from.
type FactRecord struct {
	ID         string `json:"id"`
	Quote      string `json:"quote"`
	SourceFile string `json:"source_file"`

	// Previously stored offsets, if any. Stale after re-extraction.
	Start *int `json:"start,omitempty"`
	End   *int `json:"end,omitempty"`
}

// AnchorResult is a FactRecord with freshly computed offsets and the
// provenance of how they were established.
type AnchorResult struct {
	ID         string          `json:"id"`
	Quote      string          `json:"quote"`
	SourceFile string          `json:"source_file"`
	Anchored   bool            `json:"anchored"`
	Start      int             `json:"start,omitempty"`
	End        int             `json:"end,omitempty"`
	MatchType  MatchType       `json:"match_type"`
	Integrity  IntegrityStatus `json:"integrity"`
	Error      string          `json:"error,omitempty"`
}
