package chart

import (
	"fmt"
	"math"

	"github.com/drake/termchart/canvas"
	"github.com/drake/termchart/layout"
)

// PieTag marks the custom render command a pie widget claims during its
// prepare pass. Other custom drawable kinds in the same tree are ignored.
const PieTag = "piechart"

// Pie is a pie/donut chart widget. Each instance owns its configuration
// and segment cache; instances are safe to create per chart with no shared
// state between them.
type Pie struct {
	name  string
	cfg   PieConfig
	cache SegmentCache
}

// NewPie creates a pie widget. The name identifies its layout element for
// bounds lookup and must be unique within a frame's tree.
func NewPie(name string, cfg PieConfig) *Pie {
	return &Pie{name: name, cfg: cfg}
}

// Name returns the widget's element name.
func (p *Pie) Name() string { return p.name }

// Config returns the current configuration.
func (p *Pie) Config() PieConfig { return p.cfg }

// SetConfig replaces the configuration wholesale. Staleness is detected on
// the next prepare pass via the config fingerprint.
func (p *Pie) SetConfig(cfg PieConfig) { p.cfg = cfg }

// Cache exposes the segment cache for inspection.
func (p *Pie) Cache() *SegmentCache { return &p.cache }

// areaCells returns the drawing area size in cells, derived from the
// configured radius and explode distance in dots.
func (p *Pie) areaCells() (int, int) {
	span := 2 * (p.cfg.Radius + p.cfg.ExplodeDistance)
	w := int(math.Ceil(span / canvas.DotsPerCellX))
	h := int(math.Ceil(span / canvas.DotsPerCellY))
	return w, h
}

// Node builds the widget's layout subtree: the drawing area carrying the
// pie's custom payload, plus a legend column when enabled. It returns nil
// for degenerate input (no data or non-positive total) — nothing to
// render, and the cache is left untouched.
func (p *Pie) Node() *layout.Element {
	total := p.cfg.Total()
	if len(p.cfg.Data) == 0 || total <= 0 {
		return nil
	}

	areaW, areaH := p.areaCells()
	area := &layout.Element{
		ID:     p.name + ".area",
		Width:  layout.Fixed(areaW),
		Height: layout.Fixed(areaH),
		Custom: &layout.CustomPayload{Tag: PieTag, Data: p},
	}

	root := &layout.Element{
		ID:         p.name,
		Direction:  layout.LeftToRight,
		Padding:    1,
		Gap:        3,
		AlignX:     layout.AlignCenter,
		AlignY:     layout.AlignCenter,
		Background: p.cfg.Background,
	}
	root.Add(area)
	if p.cfg.ShowLegend {
		root.Add(p.legend(total))
	}
	return root
}

// legend builds one row per data point: color swatch, label, percentage.
func (p *Pie) legend(total float64) *layout.Element {
	mode := p.cfg.mode()
	col := &layout.Element{
		Direction: layout.TopToBottom,
		Gap:       0,
	}
	for i, d := range p.cfg.Data {
		pct := fmt.Sprintf("%.1f%%", d.Value/total*100)
		row := (&layout.Element{
			Direction: layout.LeftToRight,
			Gap:       1,
		}).Add(
			&layout.Element{Width: layout.Fixed(2), Height: layout.Fixed(1), Background: mode.ItemColor(p.cfg.Data, i)},
			&layout.Element{Text: d.Label, TextColor: p.cfg.LabelColor},
			&layout.Element{Text: pct, TextColor: layout.RGB(130, 130, 140)},
		)
		col.Add(row)
	}
	return col
}

// Prepare is the per-frame texture step: it scans the flattened commands
// for this widget's payload and regenerates the cached image if stale.
// Call it after Layout and before composing the frame.
func (p *Pie) Prepare(cmds []layout.RenderCommand) {
	if len(p.cfg.Data) == 0 || p.cfg.Total() <= 0 {
		return
	}
	for _, cmd := range cmds {
		if cmd.Kind != layout.CmdCustom || cmd.Custom == nil {
			continue
		}
		if cmd.Custom.Tag != PieTag {
			continue // some other widget kind's drawable
		}
		w, ok := cmd.Custom.Data.(*Pie)
		if !ok || w != p {
			continue // another pie instance's drawable
		}
		p.prepareArea(cmd.Box.W, cmd.Box.H)
		return
	}
}

// prepareArea regenerates the segment image for the given cell dimensions
// when the cache says it is stale.
func (p *Pie) prepareArea(width, height int) {
	if !p.cache.ShouldRegenerate(p.cfg, width, height) {
		return
	}

	c := canvas.New(width, height)
	cx := float64(c.DotWidth()) / 2
	cy := float64(c.DotHeight()) / 2
	total := p.cfg.Total()
	mode := p.cfg.mode()

	cur := p.cfg.StartAngle
	for i, d := range p.cfg.Data {
		sweep := d.Value / total * 360
		col := mode.ItemColor(p.cfg.Data, i)

		ox, oy := 0.0, 0.0
		if d.Exploded {
			mid := radians(cur + sweep/2)
			ox = math.Cos(mid) * p.cfg.ExplodeDistance
			oy = math.Sin(mid) * p.cfg.ExplodeDistance
		}

		if p.cfg.HoleRadius > 0 {
			c.FillRing(cx+ox, cy+oy, p.cfg.HoleRadius, p.cfg.Radius, cur, sweep, col)
		} else {
			c.FillSector(cx+ox, cy+oy, p.cfg.Radius, cur, sweep, col)
		}

		if p.cfg.ShowSectorLines && i < len(p.cfg.Data)-1 {
			end := radians(cur + sweep)
			c.Line(
				int(cx+math.Cos(end)*p.cfg.HoleRadius), int(cy+math.Sin(end)*p.cfg.HoleRadius),
				int(cx+math.Cos(end)*p.cfg.Radius), int(cy+math.Sin(end)*p.cfg.Radius),
				p.cfg.SectorLineColor,
			)
		}

		cur += sweep
	}

	p.cache.Install(c.Render(), Fingerprint(p.cfg), width, height)
}

// Image returns the prepared segment image for compositing, or nil when
// nothing has been prepared.
func (p *Pie) Image() *canvas.Image {
	return p.cache.Image()
}

// sweeps returns each segment's angular extent in degrees. The extents of
// a non-degenerate config always sum to 360.
func sweeps(data []DataPoint) []float64 {
	var total float64
	for _, d := range data {
		total += d.Value
	}
	if total <= 0 {
		return nil
	}
	out := make([]float64, len(data))
	for i, d := range data {
		out[i] = d.Value / total * 360
	}
	return out
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
