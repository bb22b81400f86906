package term

import "strings"

// SelectedText extracts the text between two absolute (line, column)
// coordinates (per LineAt/VisibleRange addressing), inclusive of both
// endpoints, normalizing so the earlier point always comes first. A
// convenience helper outside the core dispatch table.
func (t *Terminal) SelectedText(startCol, startLine, endCol, endLine int) string {
	total := t.TotalLines()
	if total == 0 {
		return ""
	}

	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= total {
		endLine = total - 1
	}
	if endLine < startLine {
		return ""
	}

	width := t.width
	if width < 1 {
		width = 1
	}
	clampCol := func(c int) int {
		if c < 0 {
			return 0
		}
		if c >= width {
			return width - 1
		}
		return c
	}
	startCol, endCol = clampCol(startCol), clampCol(endCol)

	var out []string
	for line := startLine; line <= endLine; line++ {
		cells := t.LineAt(line).Cells
		xStart, xEnd := 0, len(cells)-1
		if line == startLine {
			xStart = startCol
		}
		if line == endLine {
			xEnd = endCol
		}
		if xEnd >= len(cells) {
			xEnd = len(cells) - 1
		}
		if xEnd < xStart {
			xEnd = xStart
		}

		var b strings.Builder
		for x := xStart; x <= xEnd && x < len(cells); x++ {
			c := cells[x]
			if c.IsContinuation() {
				continue
			}
			if c.Glyph == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.Glyph)
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(out, "\n")
}
