package chart

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/drake/termchart/layout"
)

// ColorMode assigns a color to each data point. It is a closed set of
// variants; the unexported fold method keeps fingerprinting exhaustive and
// in one place per variant.
type ColorMode interface {
	// ItemColor returns the color for data point i.
	ItemColor(data []DataPoint, i int) layout.Color

	fold(f *digest, data []DataPoint)
}

// PerItem uses each data point's own color.
type PerItem struct{}

// ItemColor implements ColorMode.
func (PerItem) ItemColor(data []DataPoint, i int) layout.Color {
	return data[i].Color
}

func (PerItem) fold(f *digest, data []DataPoint) {
	f.u32(0)
	for _, d := range data {
		f.color(d.Color)
	}
}

// Palette cycles through a fixed list of colors. An empty palette falls
// back to per-item colors.
type Palette struct {
	Colors []layout.Color
}

// ItemColor implements ColorMode.
func (p Palette) ItemColor(data []DataPoint, i int) layout.Color {
	if len(p.Colors) == 0 {
		return data[i].Color
	}
	return p.Colors[i%len(p.Colors)]
}

func (p Palette) fold(f *digest, data []DataPoint) {
	f.u32(1)
	if len(p.Colors) == 0 {
		for _, d := range data {
			f.color(d.Color)
		}
		return
	}
	for _, c := range p.Colors {
		f.color(c)
	}
}

// Gradient blends from Start to End across the data set.
type Gradient struct {
	Start, End layout.Color
}

// ItemColor implements ColorMode.
func (g Gradient) ItemColor(data []DataPoint, i int) layout.Color {
	var t float64
	if len(data) > 1 {
		t = float64(i) / float64(len(data)-1)
	}
	blended := toColorful(g.Start).BlendRgb(toColorful(g.End), t)
	r, gg, b := blended.RGB255()
	return layout.Color{R: r, G: gg, B: b, A: 255}
}

func (g Gradient) fold(f *digest, data []DataPoint) {
	f.u32(2)
	f.color(g.Start)
	f.color(g.End)
}

// Random assigns deterministic pseudo-random colors derived from the seed.
// The same seed and index always produce the same color, so a chart does
// not flicker between frames.
type Random struct {
	Seed uint32
}

// defaultRandomSeed replaces a zero seed so output stays reproducible.
const defaultRandomSeed = 0x9e3779b9

// ItemColor implements ColorMode.
func (r Random) ItemColor(data []DataPoint, i int) layout.Color {
	state := r.Seed
	if state == 0 {
		state = defaultRandomSeed
	}
	var rnd uint32
	for k := 0; k <= i; k++ {
		state = (state*1103515245 + 12345) & 0x7fffffff
		rnd = state
	}
	// Bias toward the 100..255 range so segments stay readable on dark
	// terminal backgrounds.
	return layout.Color{
		R: uint8(100 + rnd%156),
		G: uint8(100 + (rnd>>8)%156),
		B: uint8(100 + (rnd>>16)%156),
		A: 255,
	}
}

func (r Random) fold(f *digest, data []DataPoint) {
	f.u32(3)
	seed := r.Seed
	if seed == 0 {
		seed = defaultRandomSeed
	}
	f.u32(seed)
}

func toColorful(c layout.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
