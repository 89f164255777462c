package chart

import (
	"fmt"
	"math"

	"github.com/drake/termchart/layout"
)

// Bar is a bar/histogram widget. Unlike the pie it is a pure layout
// widget: bars are background rectangles sized proportionally to their
// values, so there is no raster step and no cache.
type Bar struct {
	name string
	cfg  BarConfig
}

// NewBar creates a bar chart widget.
func NewBar(name string, cfg BarConfig) *Bar {
	return &Bar{name: name, cfg: cfg}
}

// Name returns the widget's element name.
func (b *Bar) Name() string { return b.name }

// Config returns the current configuration.
func (b *Bar) Config() BarConfig { return b.cfg }

// SetConfig replaces the configuration wholesale.
func (b *Bar) SetConfig(cfg BarConfig) { b.cfg = cfg }

// Node builds the widget's layout subtree sized to the given cell box.
// It returns nil for degenerate input (no data or non-positive scale).
func (b *Bar) Node(width, height int) *layout.Element {
	if len(b.cfg.Data) == 0 || b.cfg.Max() <= 0 {
		return nil
	}
	if b.cfg.Orientation == Horizontal {
		return b.horizontal(width, height)
	}
	return b.vertical(width, height)
}

func (b *Bar) vertical(width, height int) *layout.Element {
	cfg := b.cfg
	mode := cfg.mode()
	maxValue := cfg.Max()

	// Rows available for the bars themselves, after padding and the
	// optional value/label rows.
	plotRows := height - 2
	if cfg.ShowValues {
		plotRows--
	}
	if cfg.ShowLabels {
		plotRows--
	}
	if plotRows < 1 {
		plotRows = 1
	}

	root := &layout.Element{
		ID:         b.name,
		Direction:  layout.LeftToRight,
		Width:      layout.Fixed(width),
		Height:     layout.Fixed(height),
		Padding:    1,
		Gap:        cfg.BarGap,
		AlignX:     layout.AlignCenter,
		AlignY:     layout.AlignEnd,
		Background: cfg.Background,
	}

	for i, d := range cfg.Data {
		rows := barExtent(d.Value, maxValue, plotRows)
		col := &layout.Element{
			Direction: layout.TopToBottom,
			Width:     layout.Fixed(cfg.BarWidth),
			AlignX:    layout.AlignCenter,
		}
		if cfg.ShowValues {
			col.Add(&layout.Element{Text: fmt.Sprintf("%.1f", d.Value), TextColor: cfg.LabelColor})
		}
		col.Add(&layout.Element{
			Width:      layout.Fixed(cfg.BarWidth),
			Height:     layout.Fixed(rows),
			Background: mode.ItemColor(cfg.Data, i),
		})
		if cfg.ShowLabels && d.Label != "" {
			col.Add(&layout.Element{Text: d.Label, TextColor: cfg.LabelColor})
		}
		root.Add(col)
	}
	return root
}

func (b *Bar) horizontal(width, height int) *layout.Element {
	cfg := b.cfg
	mode := cfg.mode()
	maxValue := cfg.Max()

	// Columns available for the bars after padding, the label gutter, and
	// room for the value text.
	plotCols := width - 2
	if cfg.ShowLabels {
		plotCols -= cfg.LabelWidth + 1
	}
	if cfg.ShowValues {
		plotCols -= 7
	}
	if plotCols < 1 {
		plotCols = 1
	}

	root := &layout.Element{
		ID:         b.name,
		Direction:  layout.TopToBottom,
		Width:      layout.Fixed(width),
		Height:     layout.Fixed(height),
		Padding:    1,
		Gap:        cfg.BarGap,
		Background: cfg.Background,
	}

	for i, d := range cfg.Data {
		cols := barExtent(d.Value, maxValue, plotCols)
		row := &layout.Element{
			Direction: layout.LeftToRight,
			Gap:       1,
			AlignY:    layout.AlignCenter,
		}
		if cfg.ShowLabels {
			row.Add(&layout.Element{
				Text:      padLabel(d.Label, cfg.LabelWidth),
				TextColor: cfg.LabelColor,
			})
		}
		row.Add(&layout.Element{
			Width:      layout.Fixed(cols),
			Height:     layout.Fixed(1),
			Background: mode.ItemColor(cfg.Data, i),
		})
		if cfg.ShowValues {
			row.Add(&layout.Element{Text: fmt.Sprintf("%.1f", d.Value), TextColor: cfg.LabelColor})
		}
		root.Add(row)
	}
	return root
}

// barExtent scales a value to cells. Positive values always get at least
// one cell so small bars stay visible.
func barExtent(value, maxValue float64, plot int) int {
	if value <= 0 || maxValue <= 0 {
		return 0
	}
	n := int(math.Round(value / maxValue * float64(plot)))
	if n < 1 {
		n = 1
	}
	if n > plot {
		n = plot
	}
	return n
}

// padLabel trims or pads a label to a fixed gutter width.
func padLabel(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	for len(r) < width {
		r = append(r, ' ')
	}
	return string(r)
}
