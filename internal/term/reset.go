package term

// softReset implements CSI ! p (DECSTR): origin mode off, auto-wrap
// on, scroll region full, cursor keys normal, keypad normal, SGR
// defaults restored; buffer contents untouched.
func (t *Terminal) softReset() {
	for _, b := range []*Buffer{t.primary, t.alternate} {
		b.OriginMode = false
		b.AutoWrap = true
		b.InsertMode = false
		b.ScrollTop = 0
		b.ScrollBottom = b.Height - 1
		b.CurrentStyle = DefaultStyle
		b.PendingWrap = false
	}
	t.CursorKeys = CursorKeysNormal
	t.Keypad = KeypadNormal
	t.cursorVisible = true
}

// fullReset implements ESC c (RIS): soft reset plus clearing both
// buffers, homing the cursor, resetting charsets, mouse, and other modes.
func (t *Terminal) fullReset() {
	t.softReset()
	for _, b := range []*Buffer{t.primary, t.alternate} {
		b.ClearRect(0, 0, b.Height-1, b.Width-1, DefaultStyle)
		b.CursorRow, b.CursorCol = 0, 0
		b.Charsets = [4]charsetID{}
		b.GL, b.GR = 0, 0
		b.Saved = nil
		b.TabStops = nil
	}
	t.primary.initTabStops()
	t.alternate.initTabStops()
	t.altActive = false
	t.MouseModeVal = MouseOff
	t.MouseEnc = MouseEncX10
	t.BracketedPaste = false
	t.FocusReporting = false
	t.syncActive = false
	t.title = ""
	t.iconName = ""
	t.hasLastPrintable = false
	t.palette.Reset()
	t.defaultFg, t.defaultBg, t.cursorColor = Default, Default, Default
}

// enterAltScreen implements the 47/1047/1049 DECSET semantics: switch
// the active buffer to the alternate screen, clearing it first. The
// alternate buffer never carries over the primary's saved-cursor state.
func (t *Terminal) enterAltScreen(saveCursor, clear bool) {
	if t.altActive {
		return
	}
	if saveCursor {
		t.primary.SaveCursor()
	}
	t.altActive = true
	if clear {
		t.alternate.ClearRect(0, 0, t.alternate.Height-1, t.alternate.Width-1, DefaultStyle)
		t.alternate.CursorRow, t.alternate.CursorCol = 0, 0
		t.alternate.PendingWrap = false
	}
}

// exitAltScreen switches back to the primary buffer, optionally
// restoring its saved cursor (xterm does this for mode 1049).
func (t *Terminal) exitAltScreen(restoreCursor bool) {
	if !t.altActive {
		return
	}
	t.altActive = false
	if restoreCursor {
		t.primary.RestoreCursor()
	}
}
