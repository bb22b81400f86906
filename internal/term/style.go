package term

// UnderlineStyle enumerates the variants addressable via SGR 4:n / CSI 4:n m.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Attr is a bit-set over the boolean SGR attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrBlink
	AttrInverse
	AttrHidden
	AttrStrike
	AttrOverline
)

// Style is the full set of SGR attributes in effect for a cell. The zero
// value is the default style: default fg/bg, no attributes, no underline.
type Style struct {
	Fg             Color
	Bg             Color
	UnderlineColor Color
	Underline      UnderlineStyle
	Attrs          Attr
}

// DefaultStyle is the style in effect after a full or SGR-0 reset.
var DefaultStyle = Style{}

func (s Style) IsDefault() bool {
	return s == DefaultStyle
}

func (s Style) has(a Attr) bool {
	return s.Attrs&a != 0
}

func (s *Style) set(a Attr, on bool) {
	if on {
		s.Attrs |= a
	} else {
		s.Attrs &^= a
	}
}
