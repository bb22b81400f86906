package term

import "github.com/lucasb-eyer/go-colorful"

// palette256 is the standard xterm 256-color table: 16 ANSI colors, a
// 6x6x6 color cube, and a 24-step grayscale ramp. OSC 4 overrides a
// per-Terminal copy of it; the defaults here never mutate.
var palette256 = buildDefaultPalette()

func buildDefaultPalette() [256][3]uint8 {
	var p [256][3]uint8
	ansi := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	copy(p[:16], ansi[:])

	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = [3]uint8{steps[r], steps[g], steps[b]}
				i++
			}
		}
	}
	for gi := 0; gi < 24; gi++ {
		v := uint8(8 + gi*10)
		p[232+gi] = [3]uint8{v, v, v}
	}
	return p
}

// Palette holds a per-Terminal, mutable copy of the 256-color table, so
// OSC 4 / OSC 104 can override entries without disturbing other
// Terminal instances.
type Palette struct {
	entries [256][3]uint8
}

func newPalette() *Palette {
	pal := &Palette{entries: palette256}
	return pal
}

func (p *Palette) Lookup(idx uint8) (r, g, b uint8) {
	e := p.entries[idx]
	return e[0], e[1], e[2]
}

func (p *Palette) Set(idx uint8, r, g, b uint8) {
	p.entries[idx] = [3]uint8{r, g, b}
}

func (p *Palette) Reset() {
	p.entries = palette256
}

func (p *Palette) ResetOne(idx uint8) {
	p.entries[idx] = palette256[idx]
}

// NearestIndex returns the palette entry whose color is perceptually
// closest to (r,g,b), using CIE76 distance in Lab space. Used when an
// embedder needs to downconvert a truecolor Style to the 256-color
// table (e.g. rendering to a terminal without truecolor support).
func (p *Palette) NearestIndex(r, g, b uint8) uint8 {
	target, _ := colorful.MakeColor(clr{r, g, b})
	best := uint8(0)
	bestDist := 1e9
	for i, e := range p.entries {
		c, _ := colorful.MakeColor(clr{e[0], e[1], e[2]})
		d := target.DistanceLab(c)
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// clr adapts a raw RGB triple to color.Color for go-colorful.
type clr struct{ r, g, b uint8 }

func (c clr) RGBA() (r, g, bch, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	bch = uint32(c.b) * 0x101
	a = 0xffff
	return
}
