package term

import "testing"

// recordingSink captures every Sink event for assertions, rather than
// driving a real Terminal -- useful for isolating parser behavior from
// buffer semantics.
type recordingSink struct {
	prints  []rune
	execs   []byte
	escs    []escEvent
	csis    []csiEvent
	oscs    [][]byte
	dcsHook []csiEvent
	dcsPuts []byte
	dcsUnhooks int
}

type escEvent struct {
	intermediates []byte
	final         byte
}

type csiEvent struct {
	private       byte
	params        []Param
	intermediates []byte
	final         byte
}

func (s *recordingSink) Print(r rune) { s.prints = append(s.prints, r) }
func (s *recordingSink) Execute(b byte) { s.execs = append(s.execs, b) }
func (s *recordingSink) EscDispatch(intermediates []byte, final byte) {
	s.escs = append(s.escs, escEvent{append([]byte(nil), intermediates...), final})
}
func (s *recordingSink) CsiDispatch(private byte, params []Param, intermediates []byte, final byte) {
	s.csis = append(s.csis, csiEvent{private, params, append([]byte(nil), intermediates...), final})
}
func (s *recordingSink) OscDispatch(payload []byte) {
	s.oscs = append(s.oscs, append([]byte(nil), payload...))
}
func (s *recordingSink) DcsHook(params []Param, intermediates []byte, final byte) {
	s.dcsHook = append(s.dcsHook, csiEvent{0, params, intermediates, final})
}
func (s *recordingSink) DcsPut(b byte)  { s.dcsPuts = append(s.dcsPuts, b) }
func (s *recordingSink) DcsUnhook()     { s.dcsUnhooks++ }

func TestParserPrintsPlainText(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("hello"))
	if string(s.prints) != "hello" {
		t.Errorf("prints = %q, want %q", string(s.prints), "hello")
	}
}

func TestParserCSIWithParams(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[1;31m"))
	if len(s.csis) != 1 {
		t.Fatalf("got %d CSI events, want 1", len(s.csis))
	}
	e := s.csis[0]
	if e.final != 'm' {
		t.Errorf("final = %q, want 'm'", e.final)
	}
	if len(e.params) != 2 || e.params[0].Value != 1 || e.params[1].Value != 31 {
		t.Errorf("params = %+v, want [1 31]", e.params)
	}
}

func TestParserCSIOmittedParam(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[;1H"))
	e := s.csis[0]
	if !e.params[0].Omitted {
		t.Error("first param should be Omitted")
	}
	if e.params[1].Value != 1 {
		t.Errorf("second param = %d, want 1", e.params[1].Value)
	}
}

func TestParserCSINoParamsZeroLength(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[m"))
	if len(s.csis[0].params) != 0 {
		t.Errorf("params = %+v, want empty (bare CSI m is SGR reset)", s.csis[0].params)
	}
}

func TestParserCSIPrivateMarker(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[?25h"))
	e := s.csis[0]
	if e.private != '?' {
		t.Errorf("private = %q, want '?'", e.private)
	}
	if e.final != 'h' || e.params[0].Value != 25 {
		t.Errorf("e = %+v", e)
	}
}

func TestParserCSISubParameters(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[38:2::255:128:0m"))
	e := s.csis[0]
	if e.params[0].Value != 38 {
		t.Fatalf("Value = %d, want 38", e.params[0].Value)
	}
	want := []int{2, 0, 255, 128, 0}
	if len(e.params[0].Sub) != len(want) {
		t.Fatalf("Sub = %v, want %v", e.params[0].Sub, want)
	}
	for i, v := range want {
		if e.params[0].Sub[i] != v {
			t.Errorf("Sub[%d] = %d, want %d", i, e.params[0].Sub[i], v)
		}
	}
}

func TestParserOSCBEL(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b]0;my title\x07"))
	if len(s.oscs) != 1 || string(s.oscs[0]) != "0;my title" {
		t.Errorf("oscs = %v", s.oscs)
	}
}

func TestParserOSCST(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b]0;my title\x1b\\"))
	if len(s.oscs) != 1 || string(s.oscs[0]) != "0;my title" {
		t.Errorf("oscs = %v", s.oscs)
	}
}

func TestParserResumabilitySplitMidEscape(t *testing.T) {
	full := []byte("\x1b[1;31mhi")
	for split := 0; split <= len(full); split++ {
		s := &recordingSink{}
		p := NewParser(s)
		p.Feed(full[:split])
		p.Feed(full[split:])
		if len(s.csis) != 1 || string(s.prints) != "hi" {
			t.Errorf("split at %d: csis=%v prints=%q", split, s.csis, string(s.prints))
		}
	}
}

func TestParserResumabilitySplitMidUTF8(t *testing.T) {
	full := []byte("a\xe4\xb8\x96b") // a, 世 (3-byte), b
	for split := 1; split < len(full); split++ {
		s := &recordingSink{}
		p := NewParser(s)
		p.Feed(full[:split])
		p.Feed(full[split:])
		if string(s.prints) != "a世b" {
			t.Errorf("split at %d: prints=%q, want %q", split, string(s.prints), "a世b")
		}
	}
}

func TestParserCancelByteAbortsSequence(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[1;3"))
	p.Feed([]byte{0x18}) // CAN
	p.Feed([]byte("X"))
	if len(s.csis) != 0 {
		t.Errorf("cancel byte should have aborted the CSI sequence, got %v", s.csis)
	}
	if string(s.prints) != "X" {
		t.Errorf("prints after cancel = %q, want %q", string(s.prints), "X")
	}
}

func TestParserDCSPassthrough(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1bP1$qdata\x1b\\"))
	if len(s.dcsHook) != 1 {
		t.Fatalf("got %d DcsHook calls, want 1", len(s.dcsHook))
	}
	if string(s.dcsPuts) != "data" {
		t.Errorf("dcsPuts = %q, want %q", string(s.dcsPuts), "data")
	}
	if s.dcsUnhooks != 1 {
		t.Errorf("dcsUnhooks = %d, want 1", s.dcsUnhooks)
	}
}

func TestParserC0DuringCSIExecutesWithoutAborting(t *testing.T) {
	s := &recordingSink{}
	p := NewParser(s)
	p.Feed([]byte("\x1b[1\n;2m"))
	if len(s.execs) != 1 || s.execs[0] != '\n' {
		t.Errorf("execs = %v, want [\\n]", s.execs)
	}
	if len(s.csis) != 1 || len(s.csis[0].params) != 2 {
		t.Errorf("CSI sequence should still complete across the embedded C0 byte: %+v", s.csis)
	}
}
