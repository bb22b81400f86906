package main

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	zone "github.com/lrstanley/bubblezone"

	"github.com/coreterm/vtcore/internal/config"
	"github.com/coreterm/vtcore/internal/logging"
	"github.com/coreterm/vtcore/internal/ptyproc"
	"github.com/coreterm/vtcore/internal/term"
)

const termZoneID = "vtview.terminal"

// ptyOutputMsg carries one chunk of bytes read from the child process.
type ptyOutputMsg struct{ data []byte }

// ptyStoppedMsg reports that the child process's PTY reached EOF.
type ptyStoppedMsg struct{ err error }

type model struct {
	cfg     *config.Config
	term    *term.Terminal
	process *ptyproc.Process
	logger  *logging.Logger
	zones   *zone.Manager

	readCh chan tea.Msg

	width, height int
	quitting      bool
	scrollMode    bool
}

var (
	bindScrollEnter = key.NewBinding(key.WithKeys("ctrl+b"))
	bindScrollExit  = key.NewBinding(key.WithKeys("q", "esc"))
	bindScrollUp    = key.NewBinding(key.WithKeys("ctrl+b", "pgup"))
	bindScrollDown  = key.NewBinding(key.WithKeys("ctrl+f", "pgdown"))
	bindScrollTop   = key.NewBinding(key.WithKeys("g"))
	bindScrollBot   = key.NewBinding(key.WithKeys("G"))
)

func newModel(cfg *config.Config, logger *logging.Logger) (*model, error) {
	t := term.New(cfg.DefaultCols, cfg.DefaultRows)
	t.SetScrollbackCapacity(cfg.ScrollbackLines)
	if logger != nil {
		t.SetLogger(logger)
	}
	if err := config.ApplyPalette(cfg, t.Palette()); err != nil {
		if logger != nil {
			logger.Errorf("palette overrides: %v", err)
		}
	}

	proc, err := ptyproc.Spawn(cfg.Program, cfg.Args, nil, "", cfg.DefaultCols, cfg.DefaultRows)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		proc.SetLogger(logger)
	}

	m := &model{
		cfg:     cfg,
		term:    t,
		process: proc,
		logger:  logger,
		zones:   zone.New(),
		readCh:  make(chan tea.Msg, 64),
		width:   cfg.DefaultCols,
		height:  cfg.DefaultRows,
	}

	t.OnClipboardWrite = func(_ string, data []byte) {
		_ = clipboard.WriteAll(string(data))
	}
	t.OnBell = func() {}

	go m.readLoop()
	return m, nil
}

// applyConfig is the config.Watcher reload callback: it updates the
// scrollback cap live. Geometry and program changes only take effect on
// the next launch, since the PTY is already spawned.
func (m *model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.term.SetScrollbackCapacity(cfg.ScrollbackLines)
	if err := config.ApplyPalette(cfg, m.term.Palette()); err != nil && m.logger != nil {
		m.logger.Errorf("palette overrides: %v", err)
	}
}

// readLoop shuttles PTY output into bubbletea messages, matching the
// teacher's read-goroutine-plus-channel pattern at demo scale.
func (m *model) readLoop() {
	buf := make([]byte, 32*1024)
	for {
		n, err := m.process.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			m.readCh <- ptyOutputMsg{data: chunk}
		}
		if err != nil {
			m.readCh <- ptyStoppedMsg{err: err}
			close(m.readCh)
			return
		}
	}
}

func waitForPTYMsg(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *model) Init() tea.Cmd {
	return waitForPTYMsg(m.readCh)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.term.Resize(msg.Width, msg.Height)
		m.process.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.PasteMsg:
		m.process.Write(m.term.EncodePaste(msg.Content))
		return m, nil

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)
	case tea.MouseReleaseMsg:
		return m, m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)
	case tea.MouseMotionMsg:
		return m, m.handleMouseMotion(msg)

	case ptyOutputMsg:
		m.term.Feed(msg.data)
		if out := m.term.TakeOutput(); len(out) > 0 {
			m.process.Write(out)
		}
		return m, waitForPTYMsg(m.readCh)

	case ptyStoppedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.scrollMode {
		return m.handleScrollModeKey(msg)
	}
	if !m.term.AltScreenActive() && key.Matches(msg, bindScrollEnter) {
		m.scrollMode = true
		m.term.ScrollView(m.height - 1)
		return nil
	}

	k := msg.Key()
	mod := teaModToTerm(k.Mod)

	if code, ok := teaKeyCode(k.Code); ok {
		m.process.Write(m.term.EncodeKey(term.Key{Code: code, Mod: mod}))
		return nil
	}
	if k.Text != "" {
		for _, r := range k.Text {
			m.process.Write(m.term.EncodeKey(term.Key{Rune: r, Mod: mod}))
		}
	}
	return nil
}

// handleScrollModeKey navigates scrollback history while the child
// process is paused from receiving keystrokes.
func (m *model) handleScrollModeKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, bindScrollExit):
		m.scrollMode = false
		m.term.ScrollViewToBottom()
	case key.Matches(msg, bindScrollUp):
		m.term.ScrollView(m.height - 1)
	case key.Matches(msg, bindScrollDown):
		m.term.ScrollView(-(m.height - 1))
	case key.Matches(msg, bindScrollTop):
		m.term.ScrollViewToTop()
	case key.Matches(msg, bindScrollBot):
		m.term.ScrollViewToBottom()
	}
	return nil
}

func teaModToTerm(mod tea.KeyMod) term.Modifier {
	var out term.Modifier
	if mod&tea.ModShift != 0 {
		out |= term.ModShift
	}
	if mod&tea.ModAlt != 0 {
		out |= term.ModAlt
	}
	if mod&tea.ModCtrl != 0 {
		out |= term.ModCtrl
	}
	if mod&(tea.ModMeta|tea.ModSuper|tea.ModHyper) != 0 {
		out |= term.ModMeta
	}
	return out
}

func teaKeyCode(code rune) (term.KeyCode, bool) {
	switch code {
	case tea.KeyEnter:
		return term.KeyEnter, true
	case tea.KeyTab:
		return term.KeyTab, true
	case tea.KeyBackspace:
		return term.KeyBackspace, true
	case tea.KeyEscape:
		return term.KeyEscape, true
	case tea.KeyUp:
		return term.KeyUp, true
	case tea.KeyDown:
		return term.KeyDown, true
	case tea.KeyRight:
		return term.KeyRight, true
	case tea.KeyLeft:
		return term.KeyLeft, true
	case tea.KeyHome:
		return term.KeyHome, true
	case tea.KeyEnd:
		return term.KeyEnd, true
	case tea.KeyInsert:
		return term.KeyInsert, true
	case tea.KeyDelete:
		return term.KeyDelete, true
	case tea.KeyPgUp:
		return term.KeyPageUp, true
	case tea.KeyPgDown:
		return term.KeyPageDown, true
	case tea.KeyF1:
		return term.KeyF1, true
	case tea.KeyF2:
		return term.KeyF2, true
	case tea.KeyF3:
		return term.KeyF3, true
	case tea.KeyF4:
		return term.KeyF4, true
	case tea.KeyF5:
		return term.KeyF5, true
	case tea.KeyF6:
		return term.KeyF6, true
	case tea.KeyF7:
		return term.KeyF7, true
	case tea.KeyF8:
		return term.KeyF8, true
	case tea.KeyF9:
		return term.KeyF9, true
	case tea.KeyF10:
		return term.KeyF10, true
	case tea.KeyF11:
		return term.KeyF11, true
	case tea.KeyF12:
		return term.KeyF12, true
	}
	return term.KeyNone, false
}

func (m *model) termCoordFor(x, y int) (col, row int, ok bool) {
	zoneInfo := m.zones.Get(termZoneID)
	if zoneInfo == nil {
		return 0, 0, false
	}
	col = x - zoneInfo.StartX
	row = y - zoneInfo.StartY
	snap := m.term.Snapshot()
	if col < 0 || row < 0 || col >= snap.Width || row >= snap.Height {
		return 0, 0, false
	}
	return col, row, true
}

func (m *model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	col, row, ok := m.termCoordFor(msg.X, msg.Y)
	if !ok {
		return nil
	}
	m.process.Write(m.term.EncodeMouse(term.MouseEvent{
		Button: teaMouseButton(msg.Button), Row: row, Col: col, Mod: teaModToTerm(msg.Mod),
	}))
	return nil
}

func (m *model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	col, row, ok := m.termCoordFor(msg.X, msg.Y)
	if !ok {
		return nil
	}
	m.process.Write(m.term.EncodeMouse(term.MouseEvent{
		Button: term.MouseButtonRelease, Row: row, Col: col, Mod: teaModToTerm(msg.Mod),
	}))
	return nil
}

func (m *model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	col, row, ok := m.termCoordFor(msg.X, msg.Y)
	if !ok {
		return nil
	}
	button := term.MouseWheelDown
	if msg.Button == tea.MouseWheelUp {
		button = term.MouseWheelUp
	}
	if !m.term.AltScreenActive() {
		if button == term.MouseWheelUp {
			m.term.ScrollView(3)
		} else {
			m.term.ScrollView(-3)
		}
		return nil
	}
	m.process.Write(m.term.EncodeMouse(term.MouseEvent{Button: button, Row: row, Col: col, Mod: teaModToTerm(msg.Mod)}))
	return nil
}

func (m *model) handleMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	col, row, ok := m.termCoordFor(msg.X, msg.Y)
	if !ok {
		return nil
	}
	out := m.term.EncodeMouse(term.MouseEvent{Button: term.MouseMotion, Row: row, Col: col, Mod: teaModToTerm(msg.Mod)})
	if len(out) > 0 {
		m.process.Write(out)
	}
	return nil
}

func teaMouseButton(b tea.MouseButton) term.MouseButton {
	switch b {
	case tea.MouseMiddle:
		return term.MouseButtonMiddle
	case tea.MouseRight:
		return term.MouseButtonRight
	default:
		return term.MouseButtonLeft
	}
}

func (m *model) View() tea.View {
	if m.quitting {
		v := tea.NewView("")
		v.MouseMode = tea.MouseModeAllMotion
		return v
	}
	v := tea.NewView(m.zones.Scan(renderTerminal(m.term, m.zones)))
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
