package term

// CsiDispatch implements csi_dispatch(private_marker, params, intermediates,
// final), the CSI dispatch table.
func (t *Terminal) CsiDispatch(private byte, params []Param, intermediates []byte, final byte) {
	// DEC private-mode forms are routed first: SM/RM with '?', DECSTBM
	// and save/restore cursor are only ambiguous with SCP/RCP when no
	// private marker or intermediate is present.
	if private == '?' {
		switch final {
		case 'h':
			t.setPrivateModes(params, true)
			return
		case 'l':
			t.setPrivateModes(params, false)
			return
		}
	}

	if len(intermediates) == 1 && intermediates[0] == '$' && final == 'p' {
		t.decrqm(private, params)
		return
	}
	if len(intermediates) == 1 && intermediates[0] == '!' && final == 'p' {
		t.softReset()
		return
	}

	b := t.active()

	switch final {
	case '@': // ICH
		b.InsertChars(paramD1(params, 0))
	case 'A': // CUU
		b.MoveRel(-paramD1(params, 0), 0)
	case 'B': // CUD
		b.MoveRel(paramD1(params, 0), 0)
	case 'C': // CUF
		b.MoveRel(0, paramD1(params, 0))
	case 'D': // CUB
		b.MoveRel(0, -paramD1(params, 0))
	case 'E': // CNL
		b.MoveRel(paramD1(params, 0), 0)
		b.CarriageReturn()
	case 'F': // CPL
		b.MoveRel(-paramD1(params, 0), 0)
		b.CarriageReturn()
	case 'G', '`': // CHA / HPA
		b.SetColumn(paramD1(params, 0) - 1)
	case 'H', 'f': // CUP / HVP
		b.SetCursorPos(paramD1(params, 0)-1, paramD1(params, 1)-1)
	case 'I': // CHT
		b.TabForward(paramD1(params, 0))
	case 'Z': // CBT
		b.TabBack(paramD1(params, 0))
	case 'J': // ED
		b.EraseInDisplay(paramD0(params, 0))
		if paramD0(params, 0) == 3 {
			t.scrollback = newScrollbackRing(t.scrollback.cap)
			t.primary.OnEvictLine = func(l Line) { t.scrollback.Push(l) }
		}
	case 'K': // EL
		b.EraseInLine(paramD0(params, 0))
	case 'L': // IL
		b.InsertLines(paramD1(params, 0))
	case 'M': // DL
		b.DeleteLines(paramD1(params, 0))
	case 'P': // DCH
		b.DeleteChars(paramD1(params, 0))
	case 'S': // SU
		b.ScrollUp(paramD1(params, 0))
	case 'T': // SD
		b.ScrollDown(paramD1(params, 0))
	case 'X': // ECH
		b.EraseChars(paramD1(params, 0))
	case 'b': // REP
		if t.hasLastPrintable {
			n := paramD1(params, 0)
			for i := 0; i < n; i++ {
				b.WriteChar(t.lastPrintable)
			}
		}
	case 'd': // VPA
		b.SetRow(paramD1(params, 0) - 1)
	case 'g': // TBC
		switch paramD0(params, 0) {
		case 0:
			b.TabClearAtCursor()
		case 3:
			b.TabClearAll()
		}
	case 'h': // SM (ANSI, non-private)
		t.setAnsiModes(params, true)
	case 'l': // RM (ANSI, non-private)
		t.setAnsiModes(params, false)
	case 'm': // SGR
		t.applySGR(params)
	case 'n': // DSR
		t.deviceStatusReport(params)
	case 'c': // DA
		t.deviceAttributes(private)
	case 'r': // DECSTBM
		top := paramDefault(params, 0, 1) - 1
		bottom := paramDefault(params, 1, b.Height) - 1
		b.SetScrollRegion(top, bottom)
	case 's': // SCOSC (only when unambiguous; DECSLRM shares this final)
		if private == 0 && len(intermediates) == 0 {
			b.SaveCursor()
		}
	case 'u': // SCORC
		if private == 0 && len(intermediates) == 0 {
			b.RestoreCursor()
		}
	case 't': // window ops: no-op subset
	case 'p': // bare 'p' with no qualifying intermediate: ignored
	default:
		t.debugf("unhandled CSI private=%q params=%v intermediates=%q final=%q", private, params, intermediates, final)
	}
}
