package term

// MouseMode is which mouse events are reported, per DECSET 1000/1002/1003.
type MouseMode uint8

const (
	MouseOff MouseMode = iota
	MouseX10
	MouseNormal      // 1000: button press/release
	MouseButtonEvent // 1002: + motion while a button is held
	MouseAnyEvent    // 1003: + motion with no button held
)

// MouseEncoding is how a reported mouse event is serialized.
type MouseEncoding uint8

const (
	MouseEncX10 MouseEncoding = iota
	MouseEncUTF8
	MouseEncSGR
	MouseEncURXVT
)

type KeypadMode uint8

const (
	KeypadNormal KeypadMode = iota
	KeypadApplication
)

type CursorKeysMode uint8

const (
	CursorKeysNormal CursorKeysMode = iota
	CursorKeysApplication
)

// Logger is the minimal leveled-logging capability the core needs to
// optionally log unknown/malformed sequences at debug level.
// internal/logging satisfies this; it is defined here so the core never
// imports a concrete logging package.
type Logger interface {
	Debugf(format string, args ...any)
}

// Terminal is the C5 state machine: it owns the primary and alternate
// buffers, the mode set, title/icon, mouse/keypad/cursor-key modes, and
// drains parser events into buffer mutations and queued output bytes.
type Terminal struct {
	primary   *Buffer
	alternate *Buffer
	altActive bool

	width, height int

	title, iconName string

	MouseModeVal  MouseMode
	MouseEnc      MouseEncoding
	BracketedPaste bool
	FocusReporting bool
	Keypad        KeypadMode
	CursorKeys    CursorKeysMode
	cursorVisible bool

	defaultFg, defaultBg, cursorColor Color
	palette                           *Palette

	lastPrintable    rune
	hasLastPrintable bool

	scrollback  *scrollbackRing
	ScrollOffset int

	syncActive bool

	pendingOutput []byte

	logger Logger

	OnTitleChanged      func(string)
	OnIconChanged        func(string)
	OnBell              func()
	OnResizeRequested   func(cols, rows int)

	// OnClipboardWrite, when set, receives OSC 52 clipboard-set requests
	// (selection name, decoded payload). Core has no opinion on how
	// clipboard access happens; that belongs to the embedder.
	OnClipboardWrite func(selection string, data []byte)

	parser *Parser
}

// DefaultScrollbackCapacity is the default number of evicted lines
// retained; callers may change it with Terminal.SetScrollbackCapacity
// before feeding data.
const DefaultScrollbackCapacity = 10000

// New constructs a Terminal with both buffers at width x height.
func New(width, height int) *Terminal {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t := &Terminal{
		primary:      newBuffer(width, height),
		alternate:    newBuffer(width, height),
		width:        width,
		height:       height,
		cursorVisible: true,
		defaultFg:    Default,
		defaultBg:    Default,
		cursorColor:  Default,
		palette:      newPalette(),
		scrollback:   newScrollbackRing(DefaultScrollbackCapacity),
	}
	t.primary.OnEvictLine = func(l Line) { t.scrollback.Push(l) }
	t.parser = NewParser(t)
	return t
}

// SetLogger installs the optional debug logger.
func (t *Terminal) SetLogger(l Logger) { t.logger = l }

func (t *Terminal) debugf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Debugf(format, args...)
	}
}

// SetScrollbackCapacity resizes the scrollback ring, discarding its
// current contents (only meaningful before use or on a deliberate
// reconfiguration).
func (t *Terminal) SetScrollbackCapacity(n int) {
	t.scrollback = newScrollbackRing(n)
	t.primary.OnEvictLine = func(l Line) { t.scrollback.Push(l) }
}

func (t *Terminal) active() *Buffer {
	if t.altActive {
		return t.alternate
	}
	return t.primary
}

// Feed drives the parser over data. Feed is resumable across calls: a
// sequence split across two Feed calls parses the same as one call with
// the concatenated bytes.
func (t *Terminal) Feed(data []byte) {
	t.parser.Feed(data)
}

// Resize reshapes both buffers. Non-positive sizes clamp to at least 1x1.
func (t *Terminal) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t.width, t.height = width, height
	t.primary.Resize(width, height)
	t.alternate.Resize(width, height)
}

// TakeOutput drains and clears the pending device-reply/paste byte queue.
func (t *Terminal) TakeOutput() []byte {
	out := t.pendingOutput
	t.pendingOutput = nil
	return out
}

func (t *Terminal) queueOutput(b []byte) {
	t.pendingOutput = append(t.pendingOutput, b...)
}

// Title and IconName are read-only snapshots of OSC-set window state.
func (t *Terminal) Title() string    { return t.title }
func (t *Terminal) IconName() string { return t.iconName }

func (t *Terminal) setTitle(s string) {
	t.title = s
	if t.OnTitleChanged != nil {
		t.OnTitleChanged(s)
	}
}

func (t *Terminal) setIconName(s string) {
	t.iconName = s
	if t.OnIconChanged != nil {
		t.OnIconChanged(s)
	}
}

func (t *Terminal) bell() {
	if t.OnBell != nil {
		t.OnBell()
	}
}

// CursorVisible reports whether the cursor is visible (DECTCEM, mode 25).
func (t *Terminal) CursorVisible() bool { return t.cursorVisible }

// SyncActive reports whether synchronized-output mode (2026) is set;
// an embedder can use this to defer rendering until it clears.
func (t *Terminal) SyncActive() bool { return t.syncActive }

// AltScreenActive reports whether the alternate buffer is in use.
func (t *Terminal) AltScreenActive() bool { return t.altActive }

// Palette exposes the terminal's 256-color table, letting an embedder
// downconvert truecolor styles when its renderer lacks truecolor support.
func (t *Terminal) Palette() *Palette { return t.palette }

// Snapshot is a read-only view over terminal state for rendering.
type Snapshot struct {
	Width, Height int
	Lines         []Line
	CursorRow     int
	CursorCol     int
	CursorVisible bool
	Title         string
	IconName      string
	AltScreen     bool
	Sync          bool
}

// Snapshot returns a read-only view of the active buffer. The returned
// Lines slice is a fresh copy; mutating it does not affect the Terminal.
func (t *Terminal) Snapshot() Snapshot {
	b := t.active()
	lines := make([]Line, len(b.Lines))
	for i := range b.Lines {
		lines[i] = copyLine(b.Lines[i])
	}
	col := b.CursorCol
	if col >= b.Width {
		col = b.Width - 1
	}
	return Snapshot{
		Width: b.Width, Height: b.Height,
		Lines:         lines,
		CursorRow:     b.CursorRow,
		CursorCol:     col,
		CursorVisible: t.cursorVisible,
		Title:         t.title,
		IconName:      t.iconName,
		AltScreen:     t.altActive,
		Sync:          t.syncActive,
	}
}

// ScrollbackLines returns the number of lines retained in history beyond
// the visible primary buffer.
func (t *Terminal) ScrollbackLines() int {
	return t.scrollback.Len()
}

// LineAt returns an absolute line (0 = oldest scrollback line) across
// the combined scrollback + primary-buffer history.
func (t *Terminal) LineAt(absolute int) Line {
	sbLen := t.scrollback.Len()
	if absolute < sbLen {
		return t.scrollback.At(absolute)
	}
	idx := absolute - sbLen
	if idx < 0 || idx >= len(t.primary.Lines) {
		return Line{}
	}
	return t.primary.Lines[idx]
}

// TotalLines is ScrollbackLines() + the primary buffer's row count.
func (t *Terminal) TotalLines() int {
	return t.scrollback.Len() + t.primary.Height
}
