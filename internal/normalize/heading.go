package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/loupe-labs/loupe/internal/util"
)

// sectionKeywords are common standalone section titles promoted even
// without any casing signal.
var sectionKeywords = map[string]bool{
	"introduction": true,
	"background":   true,
	"methods":      true,
	"results":      true,
	"discussion":   true,
	"conclusion":   true,
	"references":   true,
	"summary":      true,
}

// smallWords may stay lowercase inside a title-case heading.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "by": true,
	"for": true, "in": true, "of": true, "on": true, "or": true,
	"the": true, "to": true, "with": true,
}

// promoteHeadings turns lines that look like section titles into
// markdown headings. Lines already structured as headings, lists, or
// tables are never reinterpreted.
func (n *Normalizer) promoteHeadings(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" || isStructuredLine(stripped) {
			out = append(out, line)
			continue
		}
		if heading, ok := n.promoteLine(stripped); ok {
			// Cleanup collapses any doubled blanks this introduces.
			out = append(out, "", heading, "")
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (n *Normalizer) promoteLine(s string) (string, bool) {
	switch {
	case n.isAllCapsTitle(s):
		return "## " + util.TitleCase(s), true
	case n.isTitleCaseColon(s):
		return "## " + strings.TrimSuffix(s, ":"), true
	case isLabelNumberHeading(s):
		return "### " + s, true
	case isSectionKeyword(s):
		return "## " + strings.TrimSuffix(s, ":"), true
	}
	return "", false
}

// isAllCapsTitle matches multi-word shouting titles such as
// "SOURCES OF BIOTIN". Digits and sentence punctuation disqualify the
// line so data rows and abbreviation-heavy prose stay untouched.
func (n *Normalizer) isAllCapsTitle(s string) bool {
	if len(s) > n.cfg.HeadingMaxLen {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if !unicode.IsUpper(r) {
				return false
			}
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return len(strings.Fields(s)) >= 2
}

// isTitleCaseColon matches short title-case lines ending in a colon,
// e.g. "Sources of Biotin:". Every word must start uppercase or be a
// lowercase connector, so "Table 1:" falls through to the label rule.
func (n *Normalizer) isTitleCaseColon(s string) bool {
	if !strings.HasSuffix(s, ":") || len(s) > n.cfg.HeadingMaxLen {
		return false
	}
	words := strings.Fields(strings.TrimSuffix(s, ":"))
	if len(words) < 2 || len(words) > 8 {
		return false
	}
	capitalized := 0
	for i, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		switch {
		case unicode.IsUpper(r):
			capitalized++
		case smallWords[strings.ToLower(w)] && i > 0:
		default:
			return false
		}
	}
	return capitalized >= 2
}

// isLabelNumberHeading matches captions like "Table 1: Daily Intakes"
// or "Figure 3." which become minor headings.
func isLabelNumberHeading(s string) bool {
	words := strings.Fields(s)
	if len(words) < 2 {
		return false
	}
	switch strings.ToLower(words[0]) {
	case "table", "figure", "chart":
	default:
		return false
	}

	num := words[1]
	if len(num) < 2 {
		return false
	}
	last := num[len(num)-1]
	if last != ':' && last != '.' {
		return false
	}
	digits := num[:len(num)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

func isSectionKeyword(s string) bool {
	return sectionKeywords[strings.ToLower(strings.TrimSuffix(s, ":"))]
}

// isStructuredLine reports whether a trimmed line already carries
// markdown structure and must not be promoted.
func isStructuredLine(s string) bool {
	switch s[0] {
	case '#', '|', '-', '*', '>':
		return true
	}
	// Numbered list items: digits followed by a dot.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && s[i] == '.'
}
