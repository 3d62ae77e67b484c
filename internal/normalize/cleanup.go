package normalize

import "strings"

// cleanupArtifacts removes extraction debris left behind by the
// earlier stages: trailing whitespace, stray spaces before
// punctuation, and uneven blank-line runs. Headings end up with at
// least one blank line on each side, and runs of three or more blank
// lines collapse to exactly two.
func (n *Normalizer) cleanupArtifacts(text string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = trimSpaceBeforePunct(strings.TrimRight(lines[i], " \t"))
	}

	out := make([]string, 0, len(lines))
	blanks := 0
	prevHeading := false
	for _, line := range lines {
		if line == "" {
			blanks++
			continue
		}
		if blanks > 2 {
			blanks = 2
		}
		heading := strings.HasPrefix(line, "#")
		if blanks == 0 && len(out) > 0 && (heading || prevHeading) {
			blanks = 1
		}
		for ; blanks > 0; blanks-- {
			out = append(out, "")
		}
		out = append(out, line)
		prevHeading = heading
	}
	return strings.Join(out, "\n")
}

// trimSpaceBeforePunct drops whitespace runs that sit directly before
// sentence punctuation, a common artifact of PDF text extraction.
// It operates within a single line so it can never merge lines.
func trimSpaceBeforePunct(line string) string {
	if !strings.ContainsAny(line, " \t") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != ' ' && c != '\t' {
			b.WriteByte(c)
			continue
		}
		j := i
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		if j < len(line) && isSentencePunct(line[j]) {
			i = j - 1
			continue
		}
		b.WriteString(line[i:j])
		i = j - 1
	}
	return b.String()
}

func isSentencePunct(c byte) bool {
	switch c {
	case '.', ',', ';', ':', '!', '?':
		return true
	}
	return false
}
