package term

// Print implements the parser's print(codepoint) event.
func (t *Terminal) Print(r rune) {
	b := t.active()
	b.WriteChar(r)
	t.lastPrintable = r
	t.hasLastPrintable = true
}

// Execute implements the parser's execute(byte) event for C0 controls.
func (t *Terminal) Execute(b byte) {
	buf := t.active()
	switch b {
	case 0x07: // BEL
		t.bell()
	case 0x08: // BS
		buf.Backspace()
	case 0x09: // HT
		buf.TabForward(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF all advance a line
		buf.LineFeed()
	case 0x0D: // CR
		buf.CarriageReturn()
	case 0x0E: // SO -> G1 into GL
		buf.GL = 1
	case 0x0F: // SI -> G0 into GL
		buf.GL = 0
	}
}

// EscDispatch implements esc_dispatch(intermediates, final).
func (t *Terminal) EscDispatch(intermediates []byte, final byte) {
	buf := t.active()
	if len(intermediates) > 0 {
		switch intermediates[0] {
		case '(':
			buf.Charsets[0] = charsetFromFinal(final)
			return
		case ')':
			buf.Charsets[1] = charsetFromFinal(final)
			return
		}
	}
	switch final {
	case 'D': // IND
		buf.LineFeed()
	case 'M': // RI
		buf.ReverseLineFeed()
	case 'E': // NEL
		buf.CarriageReturn()
		buf.LineFeed()
	case 'c': // RIS
		t.fullReset()
	case '7': // DECSC
		buf.SaveCursor()
	case '8': // DECRC
		buf.RestoreCursor()
	case '=': // DECKPAM
		t.Keypad = KeypadApplication
	case '>': // DECKPNM
		t.Keypad = KeypadNormal
	default:
		t.debugf("unhandled ESC intermediates=%q final=%q", intermediates, final)
	}
}

func charsetFromFinal(final byte) charsetID {
	switch final {
	case '0':
		return charsetDECSpecial
	default:
		return charsetASCII
	}
}

// DcsHook/DcsPut/DcsUnhook: DCS payloads are safely skipped (no Sixel or
// terminfo query response is in scope; see DESIGN.md).
func (t *Terminal) DcsHook(params []Param, intermediates []byte, final byte) {}
func (t *Terminal) DcsPut(b byte)                                            {}
func (t *Terminal) DcsUnhook()                                               {}
