package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/coreterm/vtcore/internal/term"
)

// renderTerminal draws the active buffer's visible rows as one marked
// zone string, run-length grouping cells that share a style so lipgloss
// only pays for one Render call per run instead of per cell.
func renderTerminal(t *term.Terminal, zones *zone.Manager) string {
	snap := t.Snapshot()
	lines := snap.Lines
	if t.ScrollOffset > 0 {
		lines = scrolledLines(t)
	}

	var b strings.Builder
	for y := 0; y < len(lines); y++ {
		renderLine(&b, lines[y])
		if y < len(lines)-1 {
			b.WriteByte('\n')
		}
	}

	content := zones.Mark(termZoneID, b.String())

	title := snap.Title
	if title == "" {
		title = "vtview"
	}
	if t.ScrollOffset > 0 {
		title += " [scrollback]"
	}
	// Truncate by display width, not byte length: an OSC 0/2 title can
	// contain wide glyphs that would otherwise overflow the column grid.
	title = ansi.Truncate(title, snap.Width, "…")
	header := lipgloss.NewStyle().Bold(true).Render(title)
	return header + "\n" + content
}

// scrolledLines returns the window of history the current ScrollOffset
// puts on screen, read via LineAt rather than the live Snapshot.
func scrolledLines(t *term.Terminal) []term.Line {
	start, end, _ := t.VisibleRange()
	lines := make([]term.Line, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, t.LineAt(i))
	}
	return lines
}

func renderLine(b *strings.Builder, line term.Line) {
	var runStyle term.Style
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(styleFor(runStyle).Render(run.String()))
		run.Reset()
	}

	for _, c := range line.Cells {
		if c.IsContinuation() {
			continue
		}
		if run.Len() > 0 && c.Style != runStyle {
			flush()
		}
		runStyle = c.Style
		if c.Glyph == "" {
			run.WriteByte(' ')
		} else {
			run.WriteString(c.Glyph)
		}
	}
	flush()
}

func styleFor(s term.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if !s.Fg.IsDefault() {
		st = st.Foreground(colorFor(s.Fg))
	}
	if !s.Bg.IsDefault() {
		st = st.Background(colorFor(s.Bg))
	}
	if s.Attrs&term.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&term.AttrDim != 0 {
		st = st.Faint(true)
	}
	if s.Attrs&term.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attrs&term.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attrs&term.AttrInverse != 0 {
		st = st.Reverse(true)
	}
	if s.Attrs&term.AttrStrike != 0 {
		st = st.Strikethrough(true)
	}
	if s.Underline != term.UnderlineNone {
		st = st.Underline(true)
	}
	return st
}

func colorFor(c term.Color) color.Color {
	switch c.Kind {
	case term.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	case term.ColorIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	default:
		return lipgloss.Color("")
	}
}
