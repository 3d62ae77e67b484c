package normalize

import "strings"

// repairInlineTables detects whole tables collapsed onto a single line
// (header, separator, and data cells joined by pipes) and unrolls them
// into one row per line. A collapsed table always stands alone: lines
// adjacent to other pipe lines are part of a block table and belong to
// the block stage, which keeps the pipeline stable on its own output.
func (n *Normalizer) repairInlineTables(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		alone := (i == 0 || !isTableLine(lines[i-1])) &&
			(i+1 >= len(lines) || !isTableLine(lines[i+1]))
		if alone {
			if rows, ok := n.unrollInlineTable(line); ok {
				out = append(out, rows...)
				continue
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (n *Normalizer) unrollInlineTable(line string) ([]string, bool) {
	if strings.Count(line, "|") < n.cfg.MinInlinePipes {
		return nil, false
	}

	// In the collapsed single-line form "| |" is row glue, not an
	// empty cell, so whitespace-only fragments are dropped outright.
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	if len(cells) == 0 {
		return nil, false
	}

	// The first separator cell fixes the column count: everything
	// before it is the header row.
	sepIdx := -1
	for i, c := range cells {
		if isSeparatorCell(c) {
			sepIdx = i
			break
		}
	}
	if sepIdx <= 0 {
		return nil, false
	}
	columns := sepIdx

	if len(cells) < sepIdx+columns {
		return nil, false
	}
	for _, c := range cells[sepIdx : sepIdx+columns] {
		if !isSeparatorCell(c) {
			return nil, false
		}
	}

	rows := [][]string{cells[:columns], separatorCells(columns)}
	data := cells[sepIdx+columns:]
	for start := 0; start < len(data); start += columns {
		row := make([]string, columns)
		for i := 0; i < columns; i++ {
			if start+i < len(data) {
				row[i] = data[start+i]
			} else {
				row[i] = "—"
			}
		}
		rows = append(rows, row)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, formatRow(row))
	}
	return out, true
}

// normalizeTableBlocks re-pads groups of consecutive pipe-delimited
// lines into uniform markdown tables and synthesizes a separator row
// after the header when one is missing. Cell content is preserved.
func (n *Normalizer) normalizeTableBlocks(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if !isTableLine(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		j := i
		for j < len(lines) && isTableLine(lines[j]) {
			j++
		}
		if j-i >= 2 {
			out = append(out, rebuildTableBlock(lines[i:j])...)
		} else {
			out = append(out, lines[i:j]...)
		}
		i = j
	}
	return strings.Join(out, "\n")
}

func rebuildTableBlock(block []string) []string {
	rows := make([][]string, 0, len(block))
	columns := 0
	for _, line := range block {
		cells := splitCells(line)
		if len(cells) > columns {
			columns = len(cells)
		}
		rows = append(rows, cells)
	}
	if columns == 0 {
		return block
	}

	// Pad ragged rows so every row renders with the same width.
	for i, row := range rows {
		for len(row) < columns {
			row = append(row, "")
		}
		rows[i] = row
	}

	// A leading separator row means there is no header to anchor a
	// synthesized one; emit the block re-padded but otherwise as-is.
	if isSeparatorRow(rows[0]) {
		out := make([]string, 0, len(rows))
		for _, row := range rows {
			out = append(out, formatRow(row))
		}
		return out
	}

	out := make([]string, 0, len(rows)+1)
	out = append(out, formatRow(rows[0]))
	rest := rows[1:]
	if len(rest) > 0 && isSeparatorRow(rest[0]) {
		out = append(out, formatRow(separatorCells(columns)))
		rest = rest[1:]
	} else {
		out = append(out, formatRow(separatorCells(columns)))
	}
	for _, row := range rest {
		out = append(out, formatRow(row))
	}
	return out
}

// splitCells breaks a pipe-delimited line into trimmed cells. Empty
// fragments from boundary or doubled pipes are dropped; cells that
// held only whitespace survive as empty strings.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// isSeparatorCell reports whether a cell is a markdown column
// separator: a run of three or more dashes, optionally fenced by
// alignment colons.
func isSeparatorCell(cell string) bool {
	s := strings.TrimPrefix(cell, ":")
	s = strings.TrimSuffix(s, ":")
	if len(s) < 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			return false
		}
	}
	return true
}

func isSeparatorRow(cells []string) bool {
	seen := false
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !isSeparatorCell(c) {
			return false
		}
		seen = true
	}
	return seen
}

func isTableLine(line string) bool {
	return strings.Count(line, "|") >= 2
}

func separatorCells(columns int) []string {
	cells := make([]string, columns)
	for i := range cells {
		cells[i] = "---"
	}
	return cells
}

func formatRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
