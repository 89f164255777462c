package layout

import "github.com/mattn/go-runewidth"

// Engine computes element positions and flattens the tree into render
// commands. Rebuild the tree and call Layout once per frame.
type Engine struct {
	width  int
	height int
	bounds map[uint32]BoundingBox
}

// NewEngine creates a new layout engine.
func NewEngine() *Engine {
	return &Engine{bounds: make(map[uint32]BoundingBox)}
}

// SetSize sets the total available size in cells.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Width returns the current width.
func (e *Engine) Width() int { return e.width }

// Height returns the current height.
func (e *Engine) Height() int { return e.height }

// Layout solves the tree against the engine size and returns the flattened
// command list. Command order is depth-first, parents before children.
func (e *Engine) Layout(root *Element) []RenderCommand {
	clear(e.bounds)
	if root == nil {
		return nil
	}

	measure(root)

	w, h := root.prefW, root.prefH
	if root.Width.Kind == SizingGrow || root.Width.Kind == SizingPercent {
		w = e.width
	}
	if root.Height.Kind == SizingGrow || root.Height.Kind == SizingPercent {
		h = e.height
	}

	var cmds []RenderCommand
	e.arrange(root, BoundingBox{X: 0, Y: 0, W: w, H: h}, &cmds)
	return cmds
}

// Bounds returns the solved bounding box of a named element from the most
// recent Layout call.
func (e *Engine) Bounds(name string) (BoundingBox, bool) {
	box, ok := e.bounds[ElementID(name)]
	return box, ok
}

// measure computes bottom-up preferred sizes. Fixed sizing overrides the
// content size; Grow and Percent are resolved later against the parent.
func measure(el *Element) (int, int) {
	var w, h int
	switch {
	case el.Text != "":
		w, h = runewidth.StringWidth(el.Text), 1
	default:
		mainSum, crossMax := 0, 0
		for i, c := range el.Children {
			cw, ch := measure(c)
			cm, cc := cw, ch
			if el.Direction == TopToBottom {
				cm, cc = ch, cw
			}
			mainSum += cm
			if i > 0 {
				mainSum += el.Gap
			}
			if cc > crossMax {
				crossMax = cc
			}
		}
		if el.Direction == LeftToRight {
			w, h = mainSum, crossMax
		} else {
			w, h = crossMax, mainSum
		}
	}

	w += 2 * el.Padding
	h += 2 * el.Padding
	if el.Width.Kind == SizingFixed {
		w = int(el.Width.Value)
	}
	if el.Height.Kind == SizingFixed {
		h = int(el.Height.Value)
	}
	el.prefW, el.prefH = w, h
	return w, h
}

func (e *Engine) arrange(el *Element, box BoundingBox, cmds *[]RenderCommand) {
	var id uint32
	if el.ID != "" {
		id = ElementID(el.ID)
		e.bounds[id] = box
	}

	if !el.Background.Transparent() {
		*cmds = append(*cmds, RenderCommand{Kind: CmdRect, Box: box, ID: id, Background: el.Background})
	}
	if el.Custom != nil {
		*cmds = append(*cmds, RenderCommand{Kind: CmdCustom, Box: box, ID: id, Custom: el.Custom})
	}
	if el.Text != "" {
		*cmds = append(*cmds, RenderCommand{Kind: CmdText, Box: box, ID: id, Text: el.Text, TextColor: el.TextColor})
		return
	}
	if len(el.Children) == 0 {
		return
	}

	content := BoundingBox{
		X: box.X + el.Padding,
		Y: box.Y + el.Padding,
		W: max(0, box.W-2*el.Padding),
		H: max(0, box.H-2*el.Padding),
	}

	mainAvail, crossAvail := content.W, content.H
	if el.Direction == TopToBottom {
		mainAvail, crossAvail = content.H, content.W
	}

	// Main-axis pass: fixed, percent, and fit first, then grow children
	// split the remainder by weight.
	n := len(el.Children)
	sizes := make([]int, n)
	used := el.Gap * (n - 1)
	growSum := 0.0
	for i, c := range el.Children {
		s := c.mainSizing(el.Direction)
		switch s.Kind {
		case SizingFixed:
			sizes[i] = int(s.Value)
		case SizingPercent:
			sizes[i] = int(float64(mainAvail)*s.Value + 0.5)
		case SizingGrow:
			growSum += s.Value
			sizes[i] = -1
		default:
			sizes[i] = c.mainPref(el.Direction)
		}
		if sizes[i] > 0 {
			used += sizes[i]
		}
	}
	remaining := max(0, mainAvail-used)
	if growSum > 0 {
		given := 0
		last := -1
		for i, c := range el.Children {
			if sizes[i] != -1 {
				continue
			}
			s := c.mainSizing(el.Direction)
			sizes[i] = int(float64(remaining) * s.Value / growSum)
			given += sizes[i]
			last = i
		}
		if last >= 0 {
			sizes[last] += remaining - given // rounding leftover
		}
	} else {
		for i := range sizes {
			if sizes[i] == -1 {
				sizes[i] = 0
			}
		}
	}

	total := el.Gap * (n - 1)
	for _, s := range sizes {
		total += s
	}

	mainAlign, crossAlign := el.AlignX, el.AlignY
	if el.Direction == TopToBottom {
		mainAlign, crossAlign = el.AlignY, el.AlignX
	}
	cur := alignOffset(mainAlign, mainAvail-total)

	for i, c := range el.Children {
		cross := crossAvail
		cs := c.crossSizing(el.Direction)
		switch cs.Kind {
		case SizingFixed:
			cross = int(cs.Value)
		case SizingPercent:
			cross = int(float64(crossAvail)*cs.Value + 0.5)
		case SizingFit:
			cross = min(c.crossPref(el.Direction), crossAvail)
		}
		crossOff := alignOffset(crossAlign, crossAvail-cross)

		var cb BoundingBox
		if el.Direction == LeftToRight {
			cb = BoundingBox{X: content.X + cur, Y: content.Y + crossOff, W: sizes[i], H: cross}
		} else {
			cb = BoundingBox{X: content.X + crossOff, Y: content.Y + cur, W: cross, H: sizes[i]}
		}
		e.arrange(c, cb, cmds)
		cur += sizes[i] + el.Gap
	}
}

func alignOffset(a Align, leftover int) int {
	if leftover <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return leftover / 2
	case AlignEnd:
		return leftover
	}
	return 0
}

func (el *Element) mainSizing(d Direction) Sizing {
	if d == LeftToRight {
		return el.Width
	}
	return el.Height
}

func (el *Element) crossSizing(d Direction) Sizing {
	if d == LeftToRight {
		return el.Height
	}
	return el.Width
}

func (el *Element) mainPref(d Direction) int {
	if d == LeftToRight {
		return el.prefW
	}
	return el.prefH
}

func (el *Element) crossPref(d Direction) int {
	if d == LeftToRight {
		return el.prefH
	}
	return el.prefW
}
