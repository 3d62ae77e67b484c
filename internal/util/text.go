package util

import (
	"strings"
	"unicode"
)

// FoldASCII lowercases ASCII letters only, leaving every other byte
// untouched. Unlike strings.ToLower it can never change the byte length
// of the input, so indexes into the folded string are valid indexes
// into the original.
func FoldASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// IndexFold returns the byte index of the first case-insensitive
// occurrence of substr in s, or -1. Offsets are valid for the original
// strings.
func IndexFold(s, substr string) int {
	return strings.Index(FoldASCII(s), FoldASCII(substr))
}

// CollapseWhitespace trims the string and collapses every interior
// whitespace run to a single space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CollapseWithMap collapses whitespace like CollapseWhitespace but also
// returns a byte-index map: indexMap[i] is the position in s of the
// byte that produced collapsed[i]. A space standing in for a whitespace
// run maps to the run's first byte.
func CollapseWithMap(s string) (collapsed string, indexMap []int) {
	var b strings.Builder
	b.Grow(len(s))
	indexMap = make([]int, 0, len(s))

	pendingSpace := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if pendingSpace < 0 {
				pendingSpace = i
			}
			continue
		}
		if pendingSpace >= 0 && b.Len() > 0 {
			b.WriteByte(' ')
			indexMap = append(indexMap, pendingSpace)
		}
		pendingSpace = -1

		before := b.Len()
		b.WriteRune(r)
		for k := before; k < b.Len(); k++ {
			indexMap = append(indexMap, i+(k-before))
		}
	}

	return b.String(), indexMap
}

// SplitSentences splits text into sentences at `.`/`!`/`?` runs that
// are followed by whitespace and an uppercase letter. Delimiters stay
// attached to their sentence; inter-sentence whitespace is dropped.
// Abbreviations ("Dr. Smith") split too; callers accept that.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Absorb a trailing delimiter run ("?!", "...")
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
			current.WriteRune(runes[i])
		}

		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
			continue
		}

		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
		i = j - 1
	}

	if tail := strings.TrimSpace(current.String()); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// TitleCase uppercases the first letter of every word and lowercases
// the rest: "RECOMMENDED INTAKES" becomes "Recommended Intakes".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
