// Command vtview-tcell is a second, independent demo embedder for
// internal/term, built directly on github.com/gdamore/tcell/v2 instead
// of Bubble Tea, proving the terminal core is renderer-agnostic.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"github.com/coreterm/vtcore/internal/config"
	"github.com/coreterm/vtcore/internal/logging"
	"github.com/coreterm/vtcore/internal/ptyproc"
	"github.com/coreterm/vtcore/internal/term"
)

func main() {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vtview-tcell: stdout is not a terminal")
		os.Exit(1)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	logger, err := logging.NewFile(filepath.Join(home, ".vtcore", "logs"), logging.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtview-tcell: could not initialize logging: %v\n", err)
	} else {
		defer logger.Close()
	}

	cfg, err := config.Load(filepath.Join(home, ".config", "vtcore", "config.json"))
	if err != nil {
		cfg = config.Default()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtview-tcell: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "vtview-tcell: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	t := term.New(cols, rows)
	t.SetScrollbackCapacity(cfg.ScrollbackLines)
	if logger != nil {
		t.SetLogger(logger)
	}
	if err := config.ApplyPalette(cfg, t.Palette()); err != nil && logger != nil {
		logger.Errorf("palette overrides: %v", err)
	}

	proc, err := ptyproc.Spawn(cfg.Program, cfg.Args, nil, "", cols, rows)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vtview-tcell: %v\n", err)
		os.Exit(1)
	}
	if logger != nil {
		proc.SetLogger(logger)
	}
	defer proc.Close()

	runLoop(screen, t, proc, cfg)
}

func runLoop(screen tcell.Screen, t *term.Terminal, proc *ptyproc.Process, cfg *config.Config) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ptyBytes := make(chan []byte, 64)
	ptyDone := make(chan error, 1)
	go func() {
		buf := make([]byte, 32*1024)
		for {
			n, err := proc.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				ptyBytes <- chunk
			}
			if err != nil {
				ptyDone <- err
				close(ptyBytes)
				return
			}
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case ev := <-events:
			handleEvent(screen, t, proc, ev, &dirty)
		case data, ok := <-ptyBytes:
			if !ok {
				continue
			}
			t.Feed(data)
			if out := t.TakeOutput(); len(out) > 0 {
				proc.Write(out)
			}
			dirty = true
		case <-ptyDone:
			close(quit)
			return
		case <-ticker.C:
			if dirty {
				render(screen, t)
				dirty = false
			}
		}
	}
}

func handleEvent(screen tcell.Screen, t *term.Terminal, proc *ptyproc.Process, ev tcell.Event, dirty *bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.Resize(cols, rows)
		proc.Resize(cols, rows)
		screen.Sync()
		*dirty = true

	case *tcell.EventKey:
		proc.Write(encodeTcellKey(t, ev))

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons()
		mod := tcellModToTerm(ev.Modifiers())
		var mb term.MouseButton
		switch {
		case btn&tcell.Button1 != 0:
			mb = term.MouseButtonLeft
		case btn&tcell.Button2 != 0:
			mb = term.MouseButtonMiddle
		case btn&tcell.Button3 != 0:
			mb = term.MouseButtonRight
		case btn&tcell.WheelUp != 0:
			mb = term.MouseWheelUp
		case btn&tcell.WheelDown != 0:
			mb = term.MouseWheelDown
		default:
			mb = term.MouseMotion
		}
		proc.Write(t.EncodeMouse(term.MouseEvent{Button: mb, Row: y, Col: x, Mod: mod}))
	}
}

func tcellModToTerm(mod tcell.ModMask) term.Modifier {
	var out term.Modifier
	if mod&tcell.ModShift != 0 {
		out |= term.ModShift
	}
	if mod&tcell.ModAlt != 0 {
		out |= term.ModAlt
	}
	if mod&tcell.ModCtrl != 0 {
		out |= term.ModCtrl
	}
	if mod&tcell.ModMeta != 0 {
		out |= term.ModMeta
	}
	return out
}

func encodeTcellKey(t *term.Terminal, ev *tcell.EventKey) []byte {
	mod := tcellModToTerm(ev.Modifiers())

	if code, ok := tcellKeyCode(ev.Key()); ok {
		return t.EncodeKey(term.Key{Code: code, Mod: mod})
	}
	if ev.Key() == tcell.KeyRune {
		return t.EncodeKey(term.Key{Rune: ev.Rune(), Mod: mod})
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return t.EncodeKey(term.Key{Rune: rune('a' + (k - tcell.KeyCtrlA)), Mod: mod | term.ModCtrl})
	}
	return nil
}

func tcellKeyCode(k tcell.Key) (term.KeyCode, bool) {
	switch k {
	case tcell.KeyEnter:
		return term.KeyEnter, true
	case tcell.KeyTab:
		return term.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return term.KeyBackspace, true
	case tcell.KeyEsc:
		return term.KeyEscape, true
	case tcell.KeyUp:
		return term.KeyUp, true
	case tcell.KeyDown:
		return term.KeyDown, true
	case tcell.KeyRight:
		return term.KeyRight, true
	case tcell.KeyLeft:
		return term.KeyLeft, true
	case tcell.KeyHome:
		return term.KeyHome, true
	case tcell.KeyEnd:
		return term.KeyEnd, true
	case tcell.KeyInsert:
		return term.KeyInsert, true
	case tcell.KeyDelete:
		return term.KeyDelete, true
	case tcell.KeyPgUp:
		return term.KeyPageUp, true
	case tcell.KeyPgDn:
		return term.KeyPageDown, true
	case tcell.KeyF1:
		return term.KeyF1, true
	case tcell.KeyF2:
		return term.KeyF2, true
	case tcell.KeyF3:
		return term.KeyF3, true
	case tcell.KeyF4:
		return term.KeyF4, true
	case tcell.KeyF5:
		return term.KeyF5, true
	case tcell.KeyF6:
		return term.KeyF6, true
	case tcell.KeyF7:
		return term.KeyF7, true
	case tcell.KeyF8:
		return term.KeyF8, true
	case tcell.KeyF9:
		return term.KeyF9, true
	case tcell.KeyF10:
		return term.KeyF10, true
	case tcell.KeyF11:
		return term.KeyF11, true
	case tcell.KeyF12:
		return term.KeyF12, true
	case tcell.KeyCtrlC:
		return term.KeyNone, false // encodeTcellKey maps KeyCtrlA..KeyCtrlZ to a Ctrl+letter rune
	}
	return term.KeyNone, false
}
