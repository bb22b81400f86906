package term

import "strconv"

// setPrivateModes implements DECSET (set=true) / DECRST (set=false) for
// every numeric code in params.
func (t *Terminal) setPrivateModes(params []Param, set bool) {
	for _, p := range params {
		if p.Omitted {
			continue
		}
		t.setPrivateMode(p.Value, set)
	}
}

func (t *Terminal) setPrivateMode(mode int, set bool) {
	switch mode {
	case 1: // DECCKM
		if set {
			t.CursorKeys = CursorKeysApplication
		} else {
			t.CursorKeys = CursorKeysNormal
		}
	case 3: // 132/80 column switch: stubbed, no resize performed
	case 6: // DECOM origin mode
		t.primary.OriginMode = set
		t.alternate.OriginMode = set
		b := t.active()
		if set {
			b.CursorRow, b.CursorCol = b.ScrollTop, 0
		} else {
			b.CursorRow, b.CursorCol = 0, 0
		}
		b.PendingWrap = false
	case 7: // DECAWM auto-wrap
		t.primary.AutoWrap = set
		t.alternate.AutoWrap = set
	case 12: // cursor blink: cosmetic only, nothing to track beyond the bit
	case 25: // DECTCEM cursor visible
		t.cursorVisible = set
	case 47: // alternate screen (legacy, no cursor save)
		if set {
			t.enterAltScreen(false, true)
		} else {
			t.exitAltScreen(false)
		}
	case 1000:
		if set {
			t.MouseModeVal = MouseNormal
		} else if t.MouseModeVal == MouseNormal {
			t.MouseModeVal = MouseOff
		}
	case 1002:
		if set {
			t.MouseModeVal = MouseButtonEvent
		} else if t.MouseModeVal == MouseButtonEvent {
			t.MouseModeVal = MouseOff
		}
	case 1003:
		if set {
			t.MouseModeVal = MouseAnyEvent
		} else if t.MouseModeVal == MouseAnyEvent {
			t.MouseModeVal = MouseOff
		}
	case 1004: // focus reporting
		t.FocusReporting = set
	case 1005:
		t.setMouseEncoding(MouseEncUTF8, set)
	case 1006:
		t.setMouseEncoding(MouseEncSGR, set)
	case 1015:
		t.setMouseEncoding(MouseEncURXVT, set)
	case 1047: // alternate screen, no cursor save
		if set {
			t.enterAltScreen(false, true)
		} else {
			t.exitAltScreen(false)
		}
	case 1048: // save/restore cursor only
		if set {
			t.active().SaveCursor()
		} else {
			t.active().RestoreCursor()
		}
	case 1049: // alternate screen + save/restore cursor
		if set {
			t.enterAltScreen(true, true)
		} else {
			t.exitAltScreen(true)
		}
	case 2004: // bracketed paste
		t.BracketedPaste = set
	case 2026: // synchronized output (xterm extension)
		t.syncActive = set
	default:
		t.debugf("unhandled DEC private mode %d set=%v", mode, set)
	}
}

func (t *Terminal) setMouseEncoding(enc MouseEncoding, set bool) {
	if set {
		t.MouseEnc = enc
	} else if t.MouseEnc == enc {
		t.MouseEnc = MouseEncX10
	}
}

// setAnsiModes implements SM/RM without the '?' private marker. The
// only one of practical relevance here is IRM (insert mode, code 4);
// others are accepted and ignored.
func (t *Terminal) setAnsiModes(params []Param, set bool) {
	for _, p := range params {
		if p.Value == 4 {
			t.primary.InsertMode = set
			t.alternate.InsertMode = set
		}
	}
}

// decrqm answers CSI ? Ps $ p / CSI Ps $ p (DECRQM) by reporting a
// mode's current state: 1 set, 2 reset, 0 not recognized.
func (t *Terminal) decrqm(private byte, params []Param) {
	if len(params) == 0 {
		return
	}
	mode := paramD0(params, 0)
	state := 0
	if private == '?' {
		switch mode {
		case 1:
			state = boolState(t.CursorKeys == CursorKeysApplication)
		case 6:
			state = boolState(t.primary.OriginMode)
		case 7:
			state = boolState(t.primary.AutoWrap)
		case 25:
			state = boolState(t.cursorVisible)
		case 47, 1047, 1049:
			state = boolState(t.altActive)
		case 1048:
			state = 0
		case 2004:
			state = boolState(t.BracketedPaste)
		case 2026:
			state = boolState(t.syncActive)
		}
	}
	t.queueOutput([]byte(csiSeq("?" + strconv.Itoa(mode) + ";" + strconv.Itoa(state) + "$y")))
}

func boolState(on bool) int {
	if on {
		return 1
	}
	return 2
}

// deviceStatusReport implements DSR (CSI n). Param 5 reports OK status;
// param 6 reports the cursor position.
func (t *Terminal) deviceStatusReport(params []Param) {
	switch paramD0(params, 0) {
	case 5:
		t.queueOutput([]byte(csiSeq("0n")))
	case 6:
		b := t.active()
		row := b.CursorRow + 1
		col := b.CursorCol + 1
		if col > b.Width {
			col = b.Width
		}
		if b.OriginMode {
			row -= b.ScrollTop
		}
		t.queueOutput([]byte(csiSeq(strconv.Itoa(row) + ";" + strconv.Itoa(col) + "R")))
	}
}

// deviceAttributes implements DA (CSI c) and DA2 (CSI > c).
func (t *Terminal) deviceAttributes(private byte) {
	if private == '>' {
		t.queueOutput([]byte(csiSeq(">1;10;0c")))
		return
	}
	t.queueOutput([]byte(csiSeq("?62;22c")))
}

func csiSeq(s string) string {
	return "\x1b[" + s
}
