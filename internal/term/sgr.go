package term

// applySGR applies an SGR parameter sequence to the active style. params use the flat
// (Value, Sub) representation the parser produces; colon sub-parameter
// forms (38:2::r:g:b, 38:5:n, 4:3) are read from Sub, semicolon forms
// (38;2;r;g;b) read from the following params in the slice.
func (t *Terminal) applySGR(params []Param) {
	b := t.active()
	style := b.CurrentStyle

	if len(params) == 0 {
		b.CurrentStyle = DefaultStyle
		return
	}

	i := 0
	for i < len(params) {
		p := params[i]
		code := p.Value
		if p.Omitted {
			code = 0
		}
		switch {
		case code == 0:
			style = DefaultStyle
		case code == 1:
			style.set(AttrBold, true)
		case code == 2:
			style.set(AttrDim, true)
		case code == 3:
			style.set(AttrItalic, true)
		case code == 4:
			if len(p.Sub) > 0 {
				style.Underline = underlineStyleFrom(subAt(p, 0))
			} else {
				style.Underline = UnderlineSingle
			}
		case code == 5:
			style.set(AttrBlink, true)
		case code == 7:
			style.set(AttrInverse, true)
		case code == 8:
			style.set(AttrHidden, true)
		case code == 9:
			style.set(AttrStrike, true)
		case code == 21:
			style.Underline = UnderlineDouble
		case code == 22:
			style.set(AttrBold, false)
			style.set(AttrDim, false)
		case code == 23:
			style.set(AttrItalic, false)
		case code == 24:
			style.Underline = UnderlineNone
		case code == 25:
			style.set(AttrBlink, false)
		case code == 27:
			style.set(AttrInverse, false)
		case code == 28:
			style.set(AttrHidden, false)
		case code == 29:
			style.set(AttrStrike, false)
		case code == 39:
			style.Fg = Default
		case code == 49:
			style.Bg = Default
		case code == 53:
			style.set(AttrOverline, true)
		case code == 55:
			style.set(AttrOverline, false)
		case code == 58:
			color, consumed := t.parseExtendedColor(params, i, p)
			style.UnderlineColor = color
			i += consumed
		case code == 59:
			style.UnderlineColor = Default
		case code >= 30 && code <= 37:
			style.Fg = Indexed(uint8(code - 30))
		case code >= 40 && code <= 47:
			style.Bg = Indexed(uint8(code - 40))
		case code >= 90 && code <= 97:
			style.Fg = Indexed(uint8(code - 90 + 8))
		case code >= 100 && code <= 107:
			style.Bg = Indexed(uint8(code - 100 + 8))
		case code == 38:
			color, consumed := t.parseExtendedColor(params, i, p)
			style.Fg = color
			i += consumed
		case code == 48:
			color, consumed := t.parseExtendedColor(params, i, p)
			style.Bg = color
			i += consumed
		}
		i++
	}

	b.CurrentStyle = style
}

func underlineStyleFrom(n int) UnderlineStyle {
	switch n {
	case 0:
		return UnderlineNone
	case 1:
		return UnderlineSingle
	case 2:
		return UnderlineDouble
	case 3:
		return UnderlineCurly
	case 4:
		return UnderlineDotted
	case 5:
		return UnderlineDashed
	default:
		return UnderlineSingle
	}
}

// parseExtendedColor handles both the semicolon form (38;5;n / 38;2;r;g;b,
// consuming following params) and the sub-parameter colon form
// (38:5:n / 38:2::r:g:b, everything inside p.Sub). It returns the color
// and how many extra semicolon-separated params it consumed (0 for the
// colon form, since those live in Sub instead).
func (t *Terminal) parseExtendedColor(params []Param, i int, p Param) (Color, int) {
	if len(p.Sub) > 0 {
		switch subAt(p, 0) {
		case 5:
			return Indexed(uint8(subAt(p, 1))), 0
		case 2:
			// 38:2::r:g:b -- sub[1] is an optional colorspace id, skip it.
			return RGB(uint8(subAt(p, 2)), uint8(subAt(p, 3)), uint8(subAt(p, 4))), 0
		}
		return Default, 0
	}

	if i+1 >= len(params) {
		return Default, 0
	}
	mode := paramD0(params, i+1)
	switch mode {
	case 5:
		if i+2 < len(params) {
			return Indexed(uint8(paramD0(params, i+2))), 2
		}
		return Default, 1
	case 2:
		if i+4 < len(params) {
			return RGB(uint8(paramD0(params, i+2)), uint8(paramD0(params, i+3)), uint8(paramD0(params, i+4))), 4
		}
		return Default, 1
	}
	return Default, 1
}
