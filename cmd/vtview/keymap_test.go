package main

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/coreterm/vtcore/internal/term"
)

func TestTeaKeyCodeMapsNavigationKeys(t *testing.T) {
	cases := map[rune]term.KeyCode{
		tea.KeyEnter:     term.KeyEnter,
		tea.KeyTab:       term.KeyTab,
		tea.KeyBackspace: term.KeyBackspace,
		tea.KeyEsc:       term.KeyEscape,
		tea.KeyUp:        term.KeyUp,
		tea.KeyPgUp:      term.KeyPageUp,
		tea.KeyPgDown:    term.KeyPageDown,
		tea.KeyF1:        term.KeyF1,
		tea.KeyF12:       term.KeyF12,
	}
	for in, want := range cases {
		got, ok := teaKeyCode(in)
		if !ok {
			t.Errorf("teaKeyCode(%v): expected ok=true", in)
			continue
		}
		if got != want {
			t.Errorf("teaKeyCode(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestTeaKeyCodeRejectsUnmapped(t *testing.T) {
	if _, ok := teaKeyCode('x'); ok {
		t.Errorf("expected unmapped key code to return ok=false")
	}
}

func TestTeaModToTermCombinesBits(t *testing.T) {
	mod := teaModToTerm(tea.ModCtrl | tea.ModShift)
	if mod&term.ModCtrl == 0 || mod&term.ModShift == 0 {
		t.Errorf("expected both ModCtrl and ModShift set, got %v", mod)
	}
	if mod&term.ModAlt != 0 {
		t.Errorf("did not expect ModAlt set")
	}
}

func TestTeaModToTermCollapsesMetaVariants(t *testing.T) {
	for _, m := range []tea.KeyMod{tea.ModMeta, tea.ModSuper, tea.ModHyper} {
		if got := teaModToTerm(m); got&term.ModMeta == 0 {
			t.Errorf("teaModToTerm(%v): expected ModMeta set", m)
		}
	}
}

func TestTeaMouseButtonDefaultsToLeft(t *testing.T) {
	if got := teaMouseButton(tea.MouseButton(99)); got != term.MouseButtonLeft {
		t.Errorf("expected unrecognized button to default to MouseButtonLeft, got %v", got)
	}
	if got := teaMouseButton(tea.MouseMiddle); got != term.MouseButtonMiddle {
		t.Errorf("expected MouseMiddle to map to MouseButtonMiddle, got %v", got)
	}
	if got := teaMouseButton(tea.MouseRight); got != term.MouseButtonRight {
		t.Errorf("expected MouseRight to map to MouseButtonRight, got %v", got)
	}
}
