package term

import "strings"

// lineText renders a Line's glyphs as plain text, skipping the
// trailing continuation half of wide glyphs and trimming trailing blanks.
func lineText(l Line) string {
	var b strings.Builder
	for _, c := range l.Cells {
		if c.IsContinuation() {
			continue
		}
		if c.Glyph == "" {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(c.Glyph)
	}
	return strings.TrimRight(b.String(), " ")
}

// Search returns the absolute line indices (per LineAt) of every line
// in scrollback+primary buffer whose text contains query, case
// insensitive. A convenience helper outside the core dispatch table.
func (t *Terminal) Search(query string) []int {
	if query == "" {
		return nil
	}
	query = strings.ToLower(query)

	total := t.TotalLines()
	var matches []int
	for i := 0; i < total; i++ {
		if strings.Contains(strings.ToLower(lineText(t.LineAt(i))), query) {
			matches = append(matches, i)
		}
	}
	return matches
}
