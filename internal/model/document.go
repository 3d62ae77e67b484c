package model

// ContentFormat identifies which extraction variant of a source is in play
type ContentFormat string

const (
	FormatText     ContentFormat = "text"     // Raw extracted plain text
	FormatMarkdown ContentFormat = "markdown" // Markdown (pre-existing or reader-formatted)
	FormatHTML     ContentFormat = "html"     // Cleaned HTML
)

// ViewMode selects which variant a reader view should display
type ViewMode string

const (
	ModeAuto     ViewMode = "auto"     // Reader-formatted raw text > markdown > HTML
	ModeText     ViewMode = "text"     // Force raw text, displayed verbatim
	ModeMarkdown ViewMode = "markdown" // Force markdown
	ModeHTML     ViewMode = "html"     // Force cleaned HTML
)

// ParseViewMode maps a mode string to a ViewMode, defaulting to auto
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ModeText, ModeMarkdown, ModeHTML:
		return ViewMode(s)
	default:
		return ModeAuto
	}
}

// SourceContent holds the extraction variants of one source document.
// Exactly which variants are populated depends on what the upstream
// extractor managed to produce; TextRaw is the one stored offsets
// reference.
type SourceContent struct {
	TextRaw   string `json:"text_raw,omitempty"`   // Raw extracted text
	Markdown  string `json:"markdown,omitempty"`   // Clean markdown when available
	HTMLClean string `json:"html_clean,omitempty"` // Sanitized HTML when available
}

// IsEmpty reports whether no variant carries any content
func (s SourceContent) IsEmpty() bool {
	return s.TextRaw == "" && s.Markdown == "" && s.HTMLClean == ""
}
