package term

import "testing"

func TestWriteCharAdvancesColumn(t *testing.T) {
	b := newBuffer(10, 5)
	b.WriteChar('a')
	if b.CursorCol != 1 {
		t.Errorf("CursorCol = %d, want 1", b.CursorCol)
	}
	if b.Lines[0].Cells[0].Glyph != "a" {
		t.Errorf("Lines[0].Cells[0].Glyph = %q, want %q", b.Lines[0].Cells[0].Glyph, "a")
	}
}

func TestAutoWrapSetsPendingWrap(t *testing.T) {
	b := newBuffer(3, 3)
	b.WriteChar('a')
	b.WriteChar('b')
	b.WriteChar('c')
	if !b.PendingWrap {
		t.Fatal("expected PendingWrap after filling the last column")
	}
	if b.CursorCol != b.Width {
		t.Errorf("CursorCol = %d, want %d (transiently at width)", b.CursorCol, b.Width)
	}
	b.WriteChar('d')
	if b.CursorRow != 1 || b.CursorCol != 1 {
		t.Errorf("after wrap write, cursor = (%d,%d), want (1,1)", b.CursorRow, b.CursorCol)
	}
	if !b.Lines[0].Wrapped {
		t.Error("Lines[0].Wrapped should be set after an auto-wrap")
	}
}

func TestAutoWrapDisabledClampsColumn(t *testing.T) {
	b := newBuffer(3, 3)
	b.AutoWrap = false
	b.WriteChar('a')
	b.WriteChar('b')
	b.WriteChar('c')
	b.WriteChar('d')
	if b.CursorRow != 0 {
		t.Errorf("CursorRow = %d, want 0 (no wrap)", b.CursorRow)
	}
	if b.Lines[0].Cells[2].Glyph != "d" {
		t.Errorf("last cell = %q, want overwritten with 'd'", b.Lines[0].Cells[2].Glyph)
	}
}

func TestWideGlyphNeverStraddlesLastColumn(t *testing.T) {
	b := newBuffer(4, 3)
	b.WriteChar('a')
	b.WriteChar('b')
	b.WriteChar('c') // cursor now at col 3, one cell free
	b.WriteChar('世') // width-2 glyph cannot fit; must wrap instead of straddling
	if b.CursorRow != 1 {
		t.Fatalf("expected wide glyph to wrap to next line, CursorRow=%d", b.CursorRow)
	}
	if b.Lines[1].Cells[0].Glyph != "世" {
		t.Errorf("Lines[1].Cells[0] = %q, want wide glyph", b.Lines[1].Cells[0].Glyph)
	}
	if !b.Lines[1].Cells[1].IsContinuation() {
		t.Errorf("Lines[1].Cells[1] = %+v, want continuation cell", b.Lines[1].Cells[1])
	}
}

func TestScrollUpClamping(t *testing.T) {
	b := newBuffer(80, 24)
	b.ScrollTop = 5
	b.ScrollBottom = 14

	for i := 5; i < 15; i++ {
		b.Lines[i].Cells[0] = blankCellStyled(Style{})
		b.Lines[i].Cells[0].Glyph = string(rune('A' + i - 5))
	}

	b.ScrollUp(100)

	for i := 5; i < 15; i++ {
		if b.Lines[i].Cells[0].Glyph != " " {
			t.Errorf("line %d should be blank after excessive scroll, got %q", i, b.Lines[i].Cells[0].Glyph)
		}
	}
}

func TestScrollDownClamping(t *testing.T) {
	b := newBuffer(80, 24)
	b.ScrollTop = 5
	b.ScrollBottom = 14

	for i := 5; i < 15; i++ {
		b.Lines[i].Cells[0].Glyph = string(rune('A' + i - 5))
	}

	b.ScrollDown(100)

	for i := 5; i < 15; i++ {
		if b.Lines[i].Cells[0].Glyph != " " {
			t.Errorf("line %d should be blank after excessive scroll, got %q", i, b.Lines[i].Cells[0].Glyph)
		}
	}
}

func TestScrollUpDownInverse(t *testing.T) {
	b := newBuffer(10, 5)
	b.ScrollTop, b.ScrollBottom = 0, 4
	for i := 0; i < 5; i++ {
		b.Lines[i].Cells[0].Glyph = string(rune('A' + i))
	}
	before := make([]string, 5)
	for i := range before {
		before[i] = b.Lines[i].Cells[0].Glyph
	}

	b.ScrollUp(2)
	b.ScrollDown(2)

	// the top two lines scrolled away are now blank, but the invariant
	// that scroll-down undoes scroll-up only holds for the region's
	// surviving content, which shifts to exactly where it started.
	for i := 2; i < 5; i++ {
		if b.Lines[i].Cells[0].Glyph != before[i] {
			t.Errorf("after ScrollUp(2)+ScrollDown(2), line %d = %q, want %q", i, b.Lines[i].Cells[0].Glyph, before[i])
		}
	}
}

func TestSaveRestoreCursorRoundTrip(t *testing.T) {
	b := newBuffer(20, 10)
	b.SetCursorPos(3, 4)
	b.CurrentStyle.Attrs = AttrBold
	b.SaveCursor()

	b.SetCursorPos(0, 0)
	b.CurrentStyle = DefaultStyle

	b.RestoreCursor()
	if b.CursorRow != 3 || b.CursorCol != 4 {
		t.Errorf("cursor after restore = (%d,%d), want (3,4)", b.CursorRow, b.CursorCol)
	}
	if b.CurrentStyle.Attrs != AttrBold {
		t.Errorf("style after restore = %v, want AttrBold", b.CurrentStyle.Attrs)
	}
}

func TestInsertLinesClamping(t *testing.T) {
	b := newBuffer(10, 24)
	b.ScrollTop, b.ScrollBottom = 0, 23
	b.CursorRow = 20
	for i := 20; i < 24; i++ {
		b.Lines[i].Cells[0].Glyph = string(rune('A' + i - 20))
	}

	b.InsertLines(100)
	for i := 20; i < 24; i++ {
		if b.Lines[i].Cells[0].Glyph != " " {
			t.Errorf("line %d should be blank after excessive insert, got %q", i, b.Lines[i].Cells[0].Glyph)
		}
	}
}

func TestResizeClampsCursor(t *testing.T) {
	b := newBuffer(10, 10)
	b.SetCursorPos(9, 9)
	b.Resize(5, 5)
	if b.CursorRow >= 5 || b.CursorCol >= 5 {
		t.Errorf("cursor after shrink = (%d,%d), want within 5x5", b.CursorRow, b.CursorCol)
	}
	for _, l := range b.Lines {
		if len(l.Cells) != 5 {
			t.Fatalf("line width = %d, want 5", len(l.Cells))
		}
	}
}

func TestEraseInDisplayMode2ClearsAll(t *testing.T) {
	b := newBuffer(5, 3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			b.Lines[row].Cells[col].Glyph = "x"
		}
	}
	b.SetCursorPos(1, 2)
	b.EraseInDisplay(2)
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			if b.Lines[row].Cells[col].Glyph != " " {
				t.Fatalf("cell (%d,%d) not cleared by ED 2", row, col)
			}
		}
	}
}

func TestTabStopsEveryEightColumns(t *testing.T) {
	b := newBuffer(40, 5)
	b.TabForward(1)
	if b.CursorCol != 8 {
		t.Errorf("CursorCol after one tab = %d, want 8", b.CursorCol)
	}
	b.TabForward(1)
	if b.CursorCol != 16 {
		t.Errorf("CursorCol after second tab = %d, want 16", b.CursorCol)
	}
}
