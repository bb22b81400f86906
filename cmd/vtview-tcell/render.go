package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/coreterm/vtcore/internal/term"
)

// render draws the active buffer directly onto the tcell screen, cell
// by cell, downconverting truecolor styles to the nearest 256-color
// palette entry when the screen's color profile lacks truecolor.
func render(screen tcell.Screen, t *term.Terminal) {
	snap := t.Snapshot()
	trueColor := screen.Colors() >= 1<<24

	for y, line := range snap.Lines {
		x := 0
		for _, c := range line.Cells {
			if c.IsContinuation() {
				continue
			}
			style := tcellStyle(t, c.Style, trueColor)
			r := rune(' ')
			if c.Glyph != "" {
				for _, rn := range c.Glyph {
					r = rn
					break
				}
			}
			screen.SetContent(x, y, r, nil, style)
			x += c.Width
		}
	}

	if snap.CursorVisible {
		screen.ShowCursor(snap.CursorCol, snap.CursorRow)
	} else {
		screen.HideCursor()
	}

	screen.Show()
}

func tcellStyle(t *term.Terminal, s term.Style, trueColor bool) tcell.Style {
	st := tcell.StyleDefault

	if !s.Fg.IsDefault() {
		st = st.Foreground(tcellColor(t, s.Fg, trueColor))
	}
	if !s.Bg.IsDefault() {
		st = st.Background(tcellColor(t, s.Bg, trueColor))
	}
	if s.Attrs&term.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&term.AttrDim != 0 {
		st = st.Dim(true)
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
		st = st.StrikeThrough(true)
	}
	if s.Underline != term.UnderlineNone {
		st = st.Underline(true)
	}
	return st
}

func tcellColor(t *term.Terminal, c term.Color, trueColor bool) tcell.Color {
	switch c.Kind {
	case term.ColorRGB:
		if trueColor {
			return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		}
		idx := t.Palette().NearestIndex(c.R, c.G, c.B)
		return tcell.PaletteColor(int(idx))
	case term.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	default:
		return tcell.ColorDefault
	}
}
