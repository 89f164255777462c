// Package chart provides bar/histogram and pie/donut widgets for the
// layout engine, plus the fingerprint-keyed segment render cache the pie
// widget uses to avoid re-rasterizing unchanged data every frame.
package chart

import "github.com/drake/termchart/layout"

// DataPoint is one value in a chart's data set. Configs are replaced
// wholesale on update; widgets never mutate them.
type DataPoint struct {
	Value    float64
	Label    string
	Color    layout.Color
	Exploded bool // pie only: offset the segment away from the center
}

// PieConfig configures a pie or donut chart. Radius, HoleRadius, and
// ExplodeDistance are in braille dots (a cell is 2 dots wide, 4 tall).
type PieConfig struct {
	Data            []DataPoint
	Radius          float64
	HoleRadius      float64 // 0 = pie, >0 = donut
	ExplodeDistance float64
	StartAngle      float64 // degrees, 0 = 3 o'clock, -90 = 12 o'clock
	ShowLegend      bool
	ShowSectorLines bool
	SectorLineColor layout.Color
	Background      layout.Color
	LabelColor      layout.Color
	Mode            ColorMode // nil = PerItem
}

// Total returns the sum of all data values.
func (c PieConfig) Total() float64 {
	var total float64
	for _, d := range c.Data {
		total += d.Value
	}
	return total
}

func (c PieConfig) mode() ColorMode {
	if c.Mode == nil {
		return PerItem{}
	}
	return c.Mode
}

// DefaultPieConfig returns a donut-ready starting configuration.
func DefaultPieConfig() PieConfig {
	return PieConfig{
		Radius:          16,
		HoleRadius:      0,
		ExplodeDistance: 3,
		StartAngle:      -90,
		ShowLegend:      true,
		ShowSectorLines: true,
		SectorLineColor: layout.RGB(255, 255, 255),
		LabelColor:      layout.RGB(220, 220, 220),
		Mode:            PerItem{},
	}
}

// Orientation selects bar chart direction.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// BarConfig configures a bar chart. Widths and gaps are in cells.
type BarConfig struct {
	Data        []DataPoint
	Orientation Orientation
	BarWidth    int
	BarGap      int
	MaxValue    float64 // 0 = auto-scale from data with 10% headroom
	ShowLabels  bool
	ShowValues  bool
	LabelWidth  int // horizontal only: cells reserved for labels
	Background  layout.Color
	LabelColor  layout.Color
	Mode        ColorMode // nil = PerItem
}

// Max returns the value the tallest/longest bar is scaled against.
func (c BarConfig) Max() float64 {
	if c.MaxValue > 0 {
		return c.MaxValue
	}
	var m float64
	for _, d := range c.Data {
		if d.Value > m {
			m = d.Value
		}
	}
	return m * 1.1 // headroom so the tallest bar doesn't touch the edge
}

func (c BarConfig) mode() ColorMode {
	if c.Mode == nil {
		return PerItem{}
	}
	return c.Mode
}

// DefaultBarConfig returns a vertical bar chart starting configuration.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Orientation: Vertical,
		BarWidth:    6,
		BarGap:      2,
		ShowLabels:  true,
		ShowValues:  true,
		LabelWidth:  10,
		LabelColor:  layout.RGB(220, 220, 220),
		Mode:        PerItem{},
	}
}
