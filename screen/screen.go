// Package screen composes flattened render commands into the frame string
// a Bubble Tea view returns. It is a plain cell grid: rect commands paint
// backgrounds, text commands write runes, and custom commands blit the
// image their widget prepared for the frame.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/termchart/canvas"
	"github.com/drake/termchart/layout"
)

// Imager is implemented by widgets whose custom commands carry a prepared
// offscreen image (the pie chart). Custom payloads without it are skipped.
type Imager interface {
	Image() *canvas.Image
}

type cell struct {
	r  rune
	fg layout.Color
	bg layout.Color
}

// Screen is a reusable cell grid.
type Screen struct {
	w, h  int
	cells []cell
}

// New creates a screen of the given size in cells.
func New(w, h int) *Screen {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &Screen{w: w, h: h, cells: make([]cell, w*h)}
	s.Reset()
	return s
}

// Reset blanks the grid for the next frame.
func (s *Screen) Reset() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' '}
	}
}

// Compose paints all commands in order and returns the frame string.
// Later commands paint over earlier ones, matching the engine's
// parent-before-child command order.
func (s *Screen) Compose(cmds []layout.RenderCommand) string {
	s.Reset()
	for _, cmd := range cmds {
		switch cmd.Kind {
		case layout.CmdRect:
			s.fillRect(cmd.Box, cmd.Background)
		case layout.CmdText:
			s.drawText(cmd.Box, cmd.Text, cmd.TextColor)
		case layout.CmdCustom:
			s.blit(cmd)
		}
	}
	return s.String()
}

func (s *Screen) fillRect(box layout.BoundingBox, bg layout.Color) {
	if bg.Transparent() {
		return
	}
	for y := box.Y; y < box.Y+box.H; y++ {
		for x := box.X; x < box.X+box.W; x++ {
			if !s.in(x, y) {
				continue
			}
			c := &s.cells[y*s.w+x]
			c.r = ' '
			c.fg = layout.Color{}
			c.bg = bg
		}
	}
}

func (s *Screen) drawText(box layout.BoundingBox, text string, fg layout.Color) {
	x, y := box.X, box.Y
	for _, r := range text {
		if x >= box.X+box.W {
			break // clip to the element's box
		}
		if s.in(x, y) {
			c := &s.cells[y*s.w+x]
			c.r = r
			c.fg = fg
		}
		x++
	}
}

func (s *Screen) blit(cmd layout.RenderCommand) {
	if cmd.Custom == nil {
		return
	}
	w, ok := cmd.Custom.Data.(Imager)
	if !ok {
		return
	}
	img := w.Image()
	if img == nil {
		return
	}
	for iy := 0; iy < img.Height(); iy++ {
		for ix := 0; ix < img.Width(); ix++ {
			r, fg := img.CellAt(ix, iy)
			if r == ' ' {
				continue // keep whatever background is underneath
			}
			x, y := cmd.Box.X+ix, cmd.Box.Y+iy
			if !s.in(x, y) {
				continue
			}
			c := &s.cells[y*s.w+x]
			c.r = r
			c.fg = fg
		}
	}
}

func (s *Screen) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

// CellAt returns the rune at a grid position, for tests and debugging.
func (s *Screen) CellAt(x, y int) rune {
	if !s.in(x, y) {
		return ' '
	}
	return s.cells[y*s.w+x].r
}

// String renders the grid, styling runs of cells that share colors.
func (s *Screen) String() string {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run []rune
		var fg, bg layout.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			text := string(run)
			if fg.Transparent() && bg.Transparent() {
				b.WriteString(text)
			} else {
				st := lipgloss.NewStyle()
				if !fg.Transparent() {
					st = st.Foreground(lipgloss.Color(fg.Hex()))
				}
				if !bg.Transparent() {
					st = st.Background(lipgloss.Color(bg.Hex()))
				}
				b.WriteString(st.Render(text))
			}
			run = run[:0]
		}
		for x := 0; x < s.w; x++ {
			c := s.cells[y*s.w+x]
			if x > 0 && (c.fg != fg || c.bg != bg) {
				flush()
			}
			fg, bg = c.fg, c.bg
			run = append(run, c.r)
		}
		flush()
	}
	return b.String()
}
