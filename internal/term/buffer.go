package term

import "github.com/mattn/go-runewidth"

// SavedCursor captures everything DECSC/DECRC must round-trip: position,
// current style, the pending-wrap flag, origin mode, and the active
// charset configuration.
type SavedCursor struct {
	Row, Col    int
	Style       Style
	PendingWrap bool
	OriginMode  bool
	Charsets    [4]charsetID
	GL, GR      int
}

// Buffer is a fixed-size grid of lines plus cursor, margins, tab stops
// and saved state. It has no knowledge of its sibling buffer
// (primary/alternate) or of the terminal that owns it.
type Buffer struct {
	Width, Height int
	Lines         []Line

	CursorRow, CursorCol int
	Saved                *SavedCursor

	ScrollTop, ScrollBottom int // inclusive, 0-indexed

	TabStops map[int]bool

	CurrentStyle Style
	PendingWrap  bool
	OriginMode   bool
	AutoWrap     bool
	InsertMode   bool

	Charsets [4]charsetID
	GL, GR   int

	// OnEvictLine, when set, is invoked with each line scrolled out of
	// view by ScrollUp, in order, before it is overwritten. The primary
	// buffer's terminal wires this to scrollback capture; the alternate
	// buffer leaves it nil so its history is simply discarded.
	OnEvictLine func(Line)
}

func newBuffer(width, height int) *Buffer {
	b := &Buffer{
		Width:        width,
		Height:       height,
		AutoWrap:     true,
		ScrollBottom: height - 1,
	}
	b.Lines = make([]Line, height)
	for i := range b.Lines {
		b.Lines[i] = newLine(width, DefaultStyle)
	}
	b.initTabStops()
	return b
}

func (b *Buffer) initTabStops() {
	b.TabStops = make(map[int]bool)
	for c := 8; c < b.Width; c += 8 {
		b.TabStops[c] = true
	}
}

func (b *Buffer) eraseStyle() Style {
	return Style{Bg: b.CurrentStyle.Bg}
}

func glyphWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// WriteChar writes one grapheme at the cursor, advancing it and handling
// auto-wrap and wide-glyph placement.
func (b *Buffer) WriteChar(r rune) {
	r = translate(b.Charsets[b.GL], r)
	w := glyphWidth(r)
	if w == 0 {
		b.mergeCombining(r)
		return
	}

	if b.PendingWrap {
		if b.AutoWrap {
			b.wrapAdvance()
		} else {
			b.CursorCol = b.Width - 1
		}
	}

	// A wide glyph can never straddle the last column: if it wouldn't
	// fit, blank the remaining cell and either wrap to the next line or,
	// with auto-wrap off, simply drop the glyph in place of a truncated
	// straddle.
	if w == 2 && b.CursorCol == b.Width-1 {
		line := &b.Lines[b.CursorRow]
		line.clearWideNeighbor(b.CursorCol, b.CurrentStyle)
		line.set(b.CursorCol, blankCellStyled(b.CurrentStyle))
		if !b.AutoWrap {
			return
		}
		b.PendingWrap = false
		b.wrapAdvance()
	}

	col := b.CursorCol
	if col >= b.Width {
		col = b.Width - 1
	}

	line := &b.Lines[b.CursorRow]
	style := b.CurrentStyle
	if b.InsertMode {
		line.insertCells(col, w, blankCellStyled(style))
	}
	line.clearWideNeighbor(col, style)
	if w == 2 {
		if col+1 < b.Width {
			line.clearWideNeighbor(col+1, style)
			line.set(col+1, Cell{Glyph: "", Width: 1, Style: style})
		}
		line.set(col, Cell{Glyph: string(r), Width: 2, Style: style})
	} else {
		line.set(col, Cell{Glyph: string(r), Width: 1, Style: style})
	}

	newCol := col + w
	if newCol >= b.Width {
		b.PendingWrap = true
		b.CursorCol = b.Width
	} else {
		b.CursorCol = newCol
		b.PendingWrap = false
	}
}

func (b *Buffer) mergeCombining(r rune) {
	target := b.CursorCol - 1
	if b.PendingWrap {
		target = b.Width - 1
	}
	if target < 0 {
		return
	}
	if target >= b.Width {
		target = b.Width - 1
	}
	line := &b.Lines[b.CursorRow]
	if target > 0 && line.Cells[target].IsContinuation() {
		target--
	}
	c := line.get(target)
	c.Glyph += string(r)
	line.set(target, c)
}

func (b *Buffer) wrapAdvance() {
	b.Lines[b.CursorRow].Wrapped = true
	b.PendingWrap = false
	if b.CursorRow == b.ScrollBottom {
		b.ScrollUp(1)
	} else if b.CursorRow < b.Height-1 {
		b.CursorRow++
	}
	b.CursorCol = 0
}

func (b *Buffer) clampCursor() {
	if b.OriginMode {
		if b.CursorRow < b.ScrollTop {
			b.CursorRow = b.ScrollTop
		}
		if b.CursorRow > b.ScrollBottom {
			b.CursorRow = b.ScrollBottom
		}
	} else {
		if b.CursorRow < 0 {
			b.CursorRow = 0
		}
		if b.CursorRow >= b.Height {
			b.CursorRow = b.Height - 1
		}
	}
	if b.CursorCol < 0 {
		b.CursorCol = 0
	}
	if b.CursorCol >= b.Width {
		b.CursorCol = b.Width - 1
	}
}

// SetCursorPos implements cursor_move_abs(row, col), 0-based. row is
// interpreted relative to scroll_top when origin mode is set.
func (b *Buffer) SetCursorPos(row, col int) {
	if b.OriginMode {
		b.CursorRow = b.ScrollTop + row
	} else {
		b.CursorRow = row
	}
	b.CursorCol = col
	b.PendingWrap = false
	b.clampCursor()
}

// SetColumn moves only the column (CHA/HPA), leaving the row untouched.
func (b *Buffer) SetColumn(col int) {
	b.CursorCol = col
	b.PendingWrap = false
	b.clampCursor()
}

// SetRow moves only the row (VPA), leaving the column untouched. row is
// in origin-mode-relative coordinates when origin mode is set.
func (b *Buffer) SetRow(row int) {
	if b.OriginMode {
		b.CursorRow = b.ScrollTop + row
	} else {
		b.CursorRow = row
	}
	b.PendingWrap = false
	b.clampCursor()
}

// MoveRel implements cursor_move_rel(drow, dcol).
func (b *Buffer) MoveRel(dRow, dCol int) {
	b.CursorRow += dRow
	b.CursorCol += dCol
	b.PendingWrap = false
	b.clampCursor()
}

func (b *Buffer) LineFeed() {
	b.PendingWrap = false
	if b.CursorRow == b.ScrollBottom {
		b.ScrollUp(1)
	} else if b.CursorRow < b.Height-1 {
		b.CursorRow++
	}
}

func (b *Buffer) ReverseLineFeed() {
	b.PendingWrap = false
	if b.CursorRow == b.ScrollTop {
		b.ScrollDown(1)
	} else if b.CursorRow > 0 {
		b.CursorRow--
	}
}

func (b *Buffer) CarriageReturn() {
	b.CursorCol = 0
	b.PendingWrap = false
}

func (b *Buffer) Backspace() {
	col := b.CursorCol
	if col > 0 {
		col--
	}
	b.CursorCol = col
	b.PendingWrap = false
}

// TabForward implements tab(forward, n): move to the nth next stop, or
// the right edge if there are fewer than n remaining.
func (b *Buffer) TabForward(n int) {
	col := b.CursorCol
	for i := 0; i < n; i++ {
		next := b.Width - 1
		found := false
		for c := col + 1; c < b.Width; c++ {
			if b.TabStops[c] {
				next = c
				found = true
				break
			}
		}
		col = next
		if !found {
			break
		}
	}
	b.CursorCol = col
	b.PendingWrap = false
}

func (b *Buffer) TabBack(n int) {
	col := b.CursorCol
	for i := 0; i < n; i++ {
		prev := 0
		found := false
		for c := col - 1; c >= 0; c-- {
			if b.TabStops[c] {
				prev = c
				found = true
				break
			}
		}
		col = prev
		if !found {
			break
		}
	}
	b.CursorCol = col
	b.PendingWrap = false
}

func (b *Buffer) TabClearAtCursor() {
	delete(b.TabStops, b.CursorCol)
}

func (b *Buffer) TabClearAll() {
	b.TabStops = make(map[int]bool)
}

// ScrollUp implements scroll_up(n): rotate lines within the scroll
// region, filling vacated lines at the bottom with blanks. Lines
// scrolled off the top of the region are handed to OnEvictLine in order.
func (b *Buffer) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	regionHeight := b.ScrollBottom - b.ScrollTop + 1
	if n > regionHeight {
		n = regionHeight
	}

	if b.OnEvictLine != nil {
		for i := b.ScrollTop; i < b.ScrollTop+n; i++ {
			b.OnEvictLine(copyLine(b.Lines[i]))
		}
	}

	copy(b.Lines[b.ScrollTop:b.ScrollBottom+1-n], b.Lines[b.ScrollTop+n:b.ScrollBottom+1])
	fill := b.eraseStyle()
	for i := b.ScrollBottom + 1 - n; i <= b.ScrollBottom; i++ {
		b.Lines[i] = newLine(b.Width, fill)
	}
}

// ScrollDown implements scroll_down(n): the mirror image of ScrollUp,
// never touching scrollback.
func (b *Buffer) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	regionHeight := b.ScrollBottom - b.ScrollTop + 1
	if n > regionHeight {
		n = regionHeight
	}

	copy(b.Lines[b.ScrollTop+n:b.ScrollBottom+1], b.Lines[b.ScrollTop:b.ScrollBottom+1-n])
	fill := b.eraseStyle()
	for i := b.ScrollTop; i < b.ScrollTop+n; i++ {
		b.Lines[i] = newLine(b.Width, fill)
	}
}

// InsertLines implements insert_lines(n): active only when the cursor is
// within the scroll region.
func (b *Buffer) InsertLines(n int) {
	if b.CursorRow < b.ScrollTop || b.CursorRow > b.ScrollBottom {
		return
	}
	if n > b.ScrollBottom-b.CursorRow+1 {
		n = b.ScrollBottom - b.CursorRow + 1
	}
	if n <= 0 {
		return
	}
	fill := b.eraseStyle()
	copy(b.Lines[b.CursorRow+n:b.ScrollBottom+1], b.Lines[b.CursorRow:b.ScrollBottom+1-n])
	for i := b.CursorRow; i < b.CursorRow+n; i++ {
		b.Lines[i] = newLine(b.Width, fill)
	}
}

// DeleteLines implements delete_lines(n).
func (b *Buffer) DeleteLines(n int) {
	if b.CursorRow < b.ScrollTop || b.CursorRow > b.ScrollBottom {
		return
	}
	if n > b.ScrollBottom-b.CursorRow+1 {
		n = b.ScrollBottom - b.CursorRow + 1
	}
	if n <= 0 {
		return
	}
	fill := b.eraseStyle()
	copy(b.Lines[b.CursorRow:b.ScrollBottom+1-n], b.Lines[b.CursorRow+n:b.ScrollBottom+1])
	for i := b.ScrollBottom + 1 - n; i <= b.ScrollBottom; i++ {
		b.Lines[i] = newLine(b.Width, fill)
	}
}

func (b *Buffer) InsertChars(n int) {
	if n <= 0 {
		return
	}
	line := &b.Lines[b.CursorRow]
	line.insertCells(b.CursorCol, n, blankCellStyled(b.eraseStyle()))
	normalizeLine(line)
}

func (b *Buffer) DeleteChars(n int) {
	if n <= 0 {
		return
	}
	line := &b.Lines[b.CursorRow]
	normalizeLine(line)
	line.deleteCells(b.CursorCol, n, blankCellStyled(b.eraseStyle()))
}

func (b *Buffer) EraseChars(n int) {
	if n <= 0 {
		return
	}
	line := &b.Lines[b.CursorRow]
	line.clearWideNeighbor(b.CursorCol, b.eraseStyle())
	end := b.CursorCol + n
	if end > b.Width {
		end = b.Width
	}
	line.clearWideNeighbor(end, b.eraseStyle())
	line.clearRange(b.CursorCol, end, b.eraseStyle())
}

func (b *Buffer) ClearRect(top, left, bottom, right int, style Style) {
	if top < 0 {
		top = 0
	}
	if bottom >= b.Height {
		bottom = b.Height - 1
	}
	for r := top; r <= bottom; r++ {
		line := &b.Lines[r]
		line.clearWideNeighbor(left, style)
		line.clearWideNeighbor(right+1, style)
		line.clearRange(left, right+1, style)
	}
}

// EraseInDisplay implements erase_in_display(mode).
func (b *Buffer) EraseInDisplay(mode int) {
	style := b.eraseStyle()
	switch mode {
	case 0:
		b.EraseInLine(0)
		b.ClearRect(b.CursorRow+1, 0, b.Height-1, b.Width-1, style)
	case 1:
		b.EraseInLine(1)
		b.ClearRect(0, 0, b.CursorRow-1, b.Width-1, style)
	case 2, 3:
		b.ClearRect(0, 0, b.Height-1, b.Width-1, style)
	}
}

// EraseInLine implements erase_in_line(mode).
func (b *Buffer) EraseInLine(mode int) {
	style := b.eraseStyle()
	line := &b.Lines[b.CursorRow]
	switch mode {
	case 0:
		line.clearWideNeighbor(b.CursorCol, style)
		line.clearRange(b.CursorCol, b.Width, style)
	case 1:
		line.clearWideNeighbor(b.CursorCol+1, style)
		line.clearRange(0, b.CursorCol+1, style)
	case 2:
		line.clear(style)
	}
}

// SetScrollRegion implements DECSTBM's buffer-level effect: top/bottom
// are 0-based inclusive here (the CSI layer converts from 1-based).
func (b *Buffer) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= b.Height {
		bottom = b.Height - 1
	}
	if top >= bottom {
		return
	}
	b.ScrollTop = top
	b.ScrollBottom = bottom
	if b.OriginMode {
		b.CursorRow = b.ScrollTop
	} else {
		b.CursorRow = 0
	}
	b.CursorCol = 0
	b.PendingWrap = false
}

// SaveCursor implements save_cursor (DECSC).
func (b *Buffer) SaveCursor() {
	b.Saved = &SavedCursor{
		Row: b.CursorRow, Col: b.CursorCol,
		Style:       b.CurrentStyle,
		PendingWrap: b.PendingWrap,
		OriginMode:  b.OriginMode,
		Charsets:    b.Charsets,
		GL:          b.GL,
		GR:          b.GR,
	}
}

// RestoreCursor implements restore_cursor (DECRC).
func (b *Buffer) RestoreCursor() {
	if b.Saved == nil {
		b.CursorRow, b.CursorCol = 0, 0
		b.PendingWrap = false
		return
	}
	s := b.Saved
	b.CursorRow, b.CursorCol = s.Row, s.Col
	b.CurrentStyle = s.Style
	b.PendingWrap = s.PendingWrap
	b.OriginMode = s.OriginMode
	b.Charsets = s.Charsets
	b.GL = s.GL
	b.GR = s.GR
	b.clampCursor()
}

// Resize implements resize(new_width, new_height): pad/truncate lines,
// grow/shrink the row count, and clamp the cursor into bounds. No reflow.
func (b *Buffer) Resize(newWidth, newHeight int) {
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	style := DefaultStyle
	for i := range b.Lines {
		b.Lines[i].resize(newWidth, style)
	}
	if newHeight < len(b.Lines) {
		overflow := len(b.Lines) - newHeight
		if b.OnEvictLine != nil {
			for i := 0; i < overflow; i++ {
				b.OnEvictLine(copyLine(b.Lines[i]))
			}
		}
		b.Lines = b.Lines[overflow:]
	} else if newHeight > len(b.Lines) {
		grown := make([]Line, newHeight)
		pad := newHeight - len(b.Lines)
		for i := 0; i < pad; i++ {
			grown[i] = newLine(newWidth, style)
		}
		copy(grown[pad:], b.Lines)
		b.Lines = grown
	}

	b.Width = newWidth
	b.Height = newHeight
	b.ScrollTop = 0
	b.ScrollBottom = newHeight - 1
	b.initTabStops()
	b.clampCursor()
}

// normalizeLine fixes up orphaned wide-glyph halves after an in-place
// shift (insert/delete chars can leave a lone continuation cell, or cut
// a wide glyph's leading half without its continuation).
func normalizeLine(l *Line) {
	for i := 0; i < len(l.Cells); i++ {
		c := l.Cells[i]
		switch {
		case c.Width == 2:
			if i+1 >= len(l.Cells) || !l.Cells[i+1].IsContinuation() {
				if i+1 < len(l.Cells) {
					l.Cells[i+1] = Cell{Glyph: "", Width: 1, Style: c.Style}
				} else {
					l.Cells[i] = blankCellStyled(c.Style)
				}
			}
		case c.IsContinuation():
			if i == 0 || l.Cells[i-1].Width != 2 {
				l.Cells[i] = blankCellStyled(c.Style)
			}
		}
	}
}
