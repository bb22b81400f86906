package term

import "strconv"

// KeyCode enumerates the non-printable keys the C6 input encoder knows
// how to turn into bytes. Printable runes are passed as Key.Rune with
// Code KeyNone instead.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier is a bit-set over the modifier keys held alongside a key or
// mouse event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

// modParam is the xterm modifier parameter appended to CSI sequences as
// "1;N" -- N = 1 + sum of the modifier bits.
func (m Modifier) modParam() int {
	n := 1
	if m&ModShift != 0 {
		n += 1
	}
	if m&ModAlt != 0 {
		n += 2
	}
	if m&ModCtrl != 0 {
		n += 4
	}
	if m&ModMeta != 0 {
		n += 8
	}
	return n
}

// Key is one keypress handed to EncodeKey.
type Key struct {
	Code KeyCode
	Rune rune // valid when Code == KeyNone; a printable character
	Mod  Modifier
}

// cursorKeyFinals maps a cursor/navigation KeyCode to its CSI/SS3 final
// byte, used for both the no-modifier and xterm-modifier encodings.
var cursorKeyFinals = map[KeyCode]byte{
	KeyUp: 'A', KeyDown: 'B', KeyRight: 'C', KeyLeft: 'D',
	KeyHome: 'H', KeyEnd: 'F',
}

var tildeKeyCodes = map[KeyCode]int{
	KeyInsert: 2, KeyDelete: 3, KeyPageUp: 5, KeyPageDown: 6,
	KeyF5: 15, KeyF6: 17, KeyF7: 18, KeyF8: 19, KeyF9: 20, KeyF10: 21,
	KeyF11: 23, KeyF12: 24,
}

// ss3FunctionFinals holds F1-F4, which use SS3 (ESC O P/Q/R/S) rather
// than the tilde form even with no modifiers.
var ss3FunctionFinals = map[KeyCode]byte{
	KeyF1: 'P', KeyF2: 'Q', KeyF3: 'R', KeyF4: 'S',
}

// EncodeKey turns one keypress into the byte sequence the PTY-side
// program expects, taking cursor-keys mode (DECCKM) into account for
// the arrow, Home and End keys. Keypad mode (DECKPAM/DECKPNM) is not
// consulted: there are no keypad-specific key codes, so keypad digits
// encode like any other printable rune.
func (t *Terminal) EncodeKey(k Key) []byte {
	if k.Code == KeyNone {
		return t.encodeRune(k.Rune, k.Mod)
	}

	switch k.Code {
	case KeyEnter:
		return []byte{'\r'}
	case KeyTab:
		if k.Mod&ModShift != 0 {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyBackspace:
		return []byte{0x7f}
	case KeyEscape:
		return []byte{0x1b}
	}

	if final, ok := cursorKeyFinals[k.Code]; ok {
		if k.Mod != 0 {
			return []byte("\x1b[1;" + strconv.Itoa(k.Mod.modParam()) + string(final))
		}
		if t.CursorKeys == CursorKeysApplication {
			return []byte{0x1b, 'O', final}
		}
		return []byte{0x1b, '[', final}
	}

	if final, ok := ss3FunctionFinals[k.Code]; ok {
		if k.Mod != 0 {
			return []byte("\x1b[1;" + strconv.Itoa(k.Mod.modParam()) + string(final))
		}
		return []byte{0x1b, 'O', final}
	}

	if n, ok := tildeKeyCodes[k.Code]; ok {
		if k.Mod != 0 {
			return []byte("\x1b[" + strconv.Itoa(n) + ";" + strconv.Itoa(k.Mod.modParam()) + "~")
		}
		return []byte("\x1b[" + strconv.Itoa(n) + "~")
	}

	switch k.Code {
	case KeyF1:
		return []byte{0x1b, 'O', 'P'}
	case KeyF2:
		return []byte{0x1b, 'O', 'Q'}
	case KeyF3:
		return []byte{0x1b, 'O', 'R'}
	case KeyF4:
		return []byte{0x1b, 'O', 'S'}
	}
	return nil
}

// encodeRune encodes a printable character: Ctrl+letter maps to its C0
// control code, Alt/Meta prepends ESC, and anything else passes through
// as raw UTF-8.
func (t *Terminal) encodeRune(r rune, mod Modifier) []byte {
	if mod&ModCtrl != 0 && ((r >= '?' && r < 0x60) || (r >= 'a' && r <= 'z')) {
		b := []byte{byte(r) & 0x1f}
		if mod&ModAlt != 0 || mod&ModMeta != 0 {
			return append([]byte{0x1b}, b...)
		}
		return b
	}
	out := []byte(string(r))
	if mod&ModAlt != 0 || mod&ModMeta != 0 {
		return append([]byte{0x1b}, out...)
	}
	return out
}

// EncodePaste wraps data in bracketed-paste markers when mode 2004 is
// active; otherwise it returns data unchanged.
func (t *Terminal) EncodePaste(data string) []byte {
	if !t.BracketedPaste {
		return []byte(data)
	}
	out := make([]byte, 0, len(data)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, data...)
	out = append(out, "\x1b[201~"...)
	return out
}

// MouseButton identifies which button (or wheel direction) a MouseEvent
// reports.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonRelease
	MouseWheelUp
	MouseWheelDown
	MouseMotion // reported only under mode 1002/1003
)

// MouseEvent is one mouse action offered to EncodeMouse; Row/Col are
// 0-based cell coordinates.
type MouseEvent struct {
	Button MouseButton
	Row    int
	Col    int
	Mod    Modifier
}

// EncodeMouse reports a mouse event as the byte sequence the PTY-side
// program expects: it reports an event only if the current MouseModeVal
// would report it (button-only
// events always allowed under any mode except MouseOff/MouseX10
// semantics for motion), and serializes it per the active MouseEnc.
func (t *Terminal) EncodeMouse(e MouseEvent) []byte {
	if t.MouseModeVal == MouseOff {
		return nil
	}
	if e.Button == MouseMotion {
		switch t.MouseModeVal {
		case MouseButtonEvent, MouseAnyEvent:
		default:
			return nil
		}
	}

	cb := mouseButtonCode(e.Button)
	if e.Mod&ModShift != 0 {
		cb |= 4
	}
	if e.Mod&ModAlt != 0 {
		cb |= 8
	}
	if e.Mod&ModCtrl != 0 {
		cb |= 16
	}
	if e.Button == MouseMotion {
		cb |= 32
	}

	col := e.Col + 1
	row := e.Row + 1

	switch t.MouseEnc {
	case MouseEncSGR:
		final := byte('M')
		if e.Button == MouseButtonRelease {
			final = 'm'
		}
		return []byte("\x1b[<" + strconv.Itoa(cb) + ";" + strconv.Itoa(col) + ";" + strconv.Itoa(row) + string(final))
	case MouseEncURXVT:
		return []byte("\x1b[" + strconv.Itoa(cb+32) + ";" + strconv.Itoa(col) + ";" + strconv.Itoa(row) + "M")
	case MouseEncUTF8:
		return []byte{0x1b, '[', 'M', byte(cb + 32), byte(clampMouseCoord(col)), byte(clampMouseCoord(row))}
	default: // MouseEncX10
		return []byte{0x1b, '[', 'M', byte(cb + 32), byte(clampMouseCoord(col)), byte(clampMouseCoord(row))}
	}
}

func mouseButtonCode(b MouseButton) int {
	switch b {
	case MouseButtonLeft, MouseMotion:
		return 0
	case MouseButtonMiddle:
		return 1
	case MouseButtonRight:
		return 2
	case MouseButtonRelease:
		return 3
	case MouseWheelUp:
		return 64
	case MouseWheelDown:
		return 65
	}
	return 0
}

// clampMouseCoord keeps the legacy X10/UTF8 coordinate encoding, which
// adds the value to 32 and emits it as a single byte, from overflowing
// past 255-32.
func clampMouseCoord(v int) int {
	if v > 223 {
		return 223
	}
	return v
}
