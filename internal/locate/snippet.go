package locate

import (
	"strings"
	"unicode/utf8"

	"github.com/loupe-labs/loupe/internal/model"
)

// Snippet returns the sentences surrounding a match, for compact
// display next to a citation: the matched sentence plus up to two
// that follow, never crossing a paragraph break. Snippets longer
// than maxChars are cut at a rune boundary and ellipsized; a
// non-positive maxChars disables the cap.
func Snippet(doc string, m model.MatchResult, maxChars int) string {
	if !m.Found || m.Start >= len(doc) {
		return ""
	}

	start := 0
	for i := m.Start - 1; i > 0; i-- {
		c := doc[i]
		if c == '\n' {
			start = i + 1
			break
		}
		if isTerminator(c) && (doc[i+1] == ' ' || doc[i+1] == '\n') {
			start = i + 1
			break
		}
	}

	end := len(doc)
	terms := 0
	for i := m.End; i < len(doc); i++ {
		c := doc[i]
		if c == '\n' {
			end = i
			break
		}
		if isTerminator(c) && (i+1 == len(doc) || doc[i+1] == ' ' || doc[i+1] == '\n') {
			terms++
			if terms == 2 {
				end = i + 1
				break
			}
		}
	}

	snippet := strings.TrimSpace(doc[start:end])
	if maxChars > 0 && len(snippet) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = strings.TrimSpace(snippet[:cut]) + "…"
	}
	return snippet
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
