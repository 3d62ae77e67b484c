package normalize

import (
	"strings"

	"github.com/loupe-labs/loupe/internal/util"
)

type textBlock struct {
	lines []string
	prose bool
}

// reflowParagraphs splits wall-of-text documents into readable
// paragraphs at sentence boundaries. Documents whose mean paragraph
// length already sits below the threshold pass through untouched, so
// a second run is a no-op.
func (n *Normalizer) reflowParagraphs(text string) string {
	blocks := splitBlocks(text)

	total, count := 0, 0
	for _, b := range blocks {
		if !b.prose {
			continue
		}
		total += len(b.text())
		count++
	}
	if count == 0 || total/count < n.cfg.ReflowMeanThreshold {
		return text
	}

	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		joined := b.text()
		if !b.prose || len(joined) <= n.cfg.ReflowMaxParagraph {
			out = append(out, strings.Join(b.lines, "\n"))
			continue
		}
		out = append(out, n.splitLongParagraph(joined)...)
	}
	return strings.Join(out, "\n\n")
}

// splitLongParagraph chunks a paragraph at sentence boundaries,
// closing a chunk once it reaches the target size. A paragraph that
// yields a single sentence cannot be split and is returned whole.
func (n *Normalizer) splitLongParagraph(text string) []string {
	sentences := util.SplitSentences(text)
	if len(sentences) <= 1 {
		return []string{text}
	}

	var chunks []string
	var current []string
	length := 0
	for _, s := range sentences {
		current = append(current, s)
		length += len(s) + 1
		if length >= n.cfg.ReflowTargetChunk {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			length = 0
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// splitBlocks groups lines into blank-line-delimited blocks and marks
// the ones that are plain prose. Tables, headings, and lists keep
// their internal line structure through the reflow stage.
func splitBlocks(text string) []textBlock {
	lines := strings.Split(text, "\n")
	var blocks []textBlock
	var current []string
	prose := true

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, textBlock{lines: current, prose: prose})
		current = nil
		prose = true
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			flush()
			continue
		}
		if isStructuredLine(stripped) {
			prose = false
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func (b textBlock) text() string {
	if len(b.lines) == 1 {
		return b.lines[0]
	}
	return strings.Join(b.lines, " ")
}
