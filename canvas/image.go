package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/termchart/layout"
)

// Image is an immutable rasterized canvas: the offscreen target a widget
// retains across frames and a compositor blits into place.
type Image struct {
	wCells, hCells int
	runes          []rune
	colors         []layout.Color
}

// Render rasterizes the current dot grid into an Image. The canvas can be
// cleared and reused afterwards without affecting the returned image.
func (c *Canvas) Render() *Image {
	img := &Image{
		wCells: c.wCells,
		hCells: c.hCells,
		runes:  make([]rune, len(c.bits)),
		colors: make([]layout.Color, len(c.colors)),
	}
	for i, b := range c.bits {
		if b == 0 {
			img.runes[i] = ' '
			continue
		}
		img.runes[i] = rune(brailleBase + int(b))
		img.colors[i] = c.colors[i]
	}
	return img
}

// Width returns the image width in cells.
func (img *Image) Width() int { return img.wCells }

// Height returns the image height in cells.
func (img *Image) Height() int { return img.hCells }

// CellAt returns the rune and foreground color of one cell. Out-of-range
// cells read as blank.
func (img *Image) CellAt(x, y int) (rune, layout.Color) {
	if x < 0 || y < 0 || x >= img.wCells || y >= img.hCells {
		return ' ', layout.Color{}
	}
	idx := y*img.wCells + x
	return img.runes[idx], img.colors[idx]
}

// Lines renders the image as ANSI-styled terminal lines. Runs of cells with
// the same color share one style application.
func (img *Image) Lines() []string {
	lines := make([]string, 0, img.hCells)
	for y := 0; y < img.hCells; y++ {
		var b strings.Builder
		var run []rune
		var runColor layout.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor.Transparent() {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(runColor.Hex())).
					Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < img.wCells; x++ {
			r, col := img.CellAt(x, y)
			if x > 0 && col != runColor {
				flush()
			}
			runColor = col
			run = append(run, r)
		}
		flush()
		lines = append(lines, b.String())
	}
	return lines
}
