// Package canvas is a braille-dot raster surface for terminal cells. Each
// cell holds a 2x4 dot grid, so a canvas of W x H cells addresses 2W x 4H
// dots. Dots are assumed square; angles are degrees, clockwise, with 0 at
// 3 o'clock (screen y grows downward).
package canvas

import (
	"math"

	"github.com/drake/termchart/layout"
)

const (
	// DotsPerCellX is the horizontal dot resolution of one cell.
	DotsPerCellX = 2
	// DotsPerCellY is the vertical dot resolution of one cell.
	DotsPerCellY = 4
)

// brailleBase is U+2800; dot bits follow the Unicode braille layout.
const brailleBase = 0x2800

// dotBits[row][col] is the bit a dot contributes to its cell's rune.
var dotBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas accumulates dots before rasterizing to an Image. Cells take the
// color of the most recently plotted dot.
type Canvas struct {
	wCells, hCells int
	bits           []uint8
	colors         []layout.Color
}

// New creates a canvas of the given size in cells.
func New(wCells, hCells int) *Canvas {
	if wCells < 0 {
		wCells = 0
	}
	if hCells < 0 {
		hCells = 0
	}
	return &Canvas{
		wCells: wCells,
		hCells: hCells,
		bits:   make([]uint8, wCells*hCells),
		colors: make([]layout.Color, wCells*hCells),
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.wCells }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.hCells }

// DotWidth returns the horizontal dot resolution.
func (c *Canvas) DotWidth() int { return c.wCells * DotsPerCellX }

// DotHeight returns the vertical dot resolution.
func (c *Canvas) DotHeight() int { return c.hCells * DotsPerCellY }

// Clear resets all dots for reuse.
func (c *Canvas) Clear() {
	for i := range c.bits {
		c.bits[i] = 0
		c.colors[i] = layout.Color{}
	}
}

// SetDot plots one dot. Out-of-range coordinates are clipped.
func (c *Canvas) SetDot(x, y int, col layout.Color) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	idx := (y/DotsPerCellY)*c.wCells + x/DotsPerCellX
	c.bits[idx] |= dotBits[y%DotsPerCellY][x%DotsPerCellX]
	c.colors[idx] = col
}

// Line plots a dot line from (x0, y0) to (x1, y1) with Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int, col layout.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.SetDot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillSector fills the circular sector centered at (cx, cy) with the given
// radius between startDeg and startDeg+sweepDeg.
func (c *Canvas) FillSector(cx, cy, radius, startDeg, sweepDeg float64, col layout.Color) {
	c.FillRing(cx, cy, 0, radius, startDeg, sweepDeg, col)
}

// FillRing fills the ring segment between inner and outer radius across the
// given angular extent. A zero or negative sweep draws nothing.
func (c *Canvas) FillRing(cx, cy, inner, outer, startDeg, sweepDeg float64, col layout.Color) {
	if sweepDeg <= 0 || outer <= 0 {
		return
	}
	if sweepDeg > 360 {
		sweepDeg = 360
	}

	x0 := int(math.Floor(cx - outer))
	x1 := int(math.Ceil(cx + outer))
	y0 := int(math.Floor(cy - outer))
	y1 := int(math.Ceil(cy + outer))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			r := math.Hypot(dx, dy)
			if r > outer || r < inner {
				continue
			}
			if !angleWithin(math.Atan2(dy, dx)*180/math.Pi, startDeg, sweepDeg) {
				continue
			}
			c.SetDot(x, y, col)
		}
	}
}

// angleWithin reports whether angle a falls inside [start, start+sweep),
// with all angles normalized to [0, 360).
func angleWithin(a, start, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	rel := math.Mod(math.Mod(a-start, 360)+360, 360)
	return rel < sweep
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
