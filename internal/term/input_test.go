package term

import "testing"

func TestEncodeKeyPrintableRune(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Rune: 'a'})
	if string(out) != "a" {
		t.Errorf("EncodeKey('a') = %q", out)
	}
}

func TestEncodeKeyCtrlLetter(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Rune: 'c', Mod: ModCtrl})
	if len(out) != 1 || out[0] != 0x03 {
		t.Errorf("Ctrl+c = %v, want [0x03]", out)
	}
}

func TestEncodeKeyAltPrependsESC(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Rune: 'a', Mod: ModAlt})
	if string(out) != "\x1ba" {
		t.Errorf("Alt+a = %q, want ESC-a", out)
	}
}

func TestEncodeKeyArrowsNormalVsApplication(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Code: KeyUp})
	if string(out) != "\x1b[A" {
		t.Errorf("Up (normal) = %q, want CSI A", out)
	}
	term.CursorKeys = CursorKeysApplication
	out = term.EncodeKey(Key{Code: KeyUp})
	if string(out) != "\x1bOA" {
		t.Errorf("Up (application) = %q, want SS3 A", out)
	}
}

func TestEncodeKeyArrowWithModifier(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Code: KeyUp, Mod: ModShift})
	if string(out) != "\x1b[1;2A" {
		t.Errorf("Shift+Up = %q, want CSI 1;2 A", out)
	}
}

func TestEncodeKeyFunctionKeysTilde(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Code: KeyDelete})
	if string(out) != "\x1b[3~" {
		t.Errorf("Delete = %q, want CSI 3~", out)
	}
	out = term.EncodeKey(Key{Code: KeyF5})
	if string(out) != "\x1b[15~" {
		t.Errorf("F5 = %q, want CSI 15~", out)
	}
}

func TestEncodeKeyF1ThroughF4UseSS3(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeKey(Key{Code: KeyF1})
	if string(out) != "\x1bOP" {
		t.Errorf("F1 = %q, want SS3 P", out)
	}
}

func TestEncodeMouseSGR(t *testing.T) {
	term := New(80, 24)
	term.MouseModeVal = MouseNormal
	term.MouseEnc = MouseEncSGR
	out := term.EncodeMouse(MouseEvent{Button: MouseButtonLeft, Row: 4, Col: 9})
	if string(out) != "\x1b[<0;10;5M" {
		t.Errorf("SGR mouse press = %q, want CSI < 0;10;5 M", out)
	}
	out = term.EncodeMouse(MouseEvent{Button: MouseButtonRelease, Row: 4, Col: 9})
	if string(out) != "\x1b[<3;10;5m" {
		t.Errorf("SGR mouse release = %q, want lowercase m terminator", out)
	}
}

func TestEncodeMouseOffModeSuppressesEvents(t *testing.T) {
	term := New(80, 24)
	out := term.EncodeMouse(MouseEvent{Button: MouseButtonLeft, Row: 0, Col: 0})
	if out != nil {
		t.Errorf("expected no output with mouse reporting off, got %q", out)
	}
}

func TestEncodeMouseMotionRequiresButtonOrAnyEventMode(t *testing.T) {
	term := New(80, 24)
	term.MouseModeVal = MouseNormal
	out := term.EncodeMouse(MouseEvent{Button: MouseMotion, Row: 0, Col: 0})
	if out != nil {
		t.Error("motion should be suppressed under plain MouseNormal mode")
	}
	term.MouseModeVal = MouseAnyEvent
	out = term.EncodeMouse(MouseEvent{Button: MouseMotion, Row: 0, Col: 0})
	if out == nil {
		t.Error("motion should be reported under MouseAnyEvent mode")
	}
}
