package chart

import (
	"math"
	"testing"

	"github.com/drake/termchart/layout"
)

func testBarConfig() BarConfig {
	cfg := DefaultBarConfig()
	cfg.Data = []DataPoint{
		{Value: 100, Label: "Jan", Color: layout.RGB(100, 150, 250)},
		{Value: 200, Label: "Feb", Color: layout.RGB(120, 200, 120)},
		{Value: 50, Label: "Mar", Color: layout.RGB(250, 180, 100)},
	}
	return cfg
}

func TestBarNode_DegenerateInput(t *testing.T) {
	b := NewBar("sales", DefaultBarConfig())
	if b.Node(80, 20) != nil {
		t.Error("empty data produced a layout node")
	}

	cfg := DefaultBarConfig()
	cfg.Data = []DataPoint{{Value: 0}}
	b.SetConfig(cfg)
	if b.Node(80, 20) != nil {
		t.Error("zero-valued data produced a layout node")
	}
}

func TestBarNode_VerticalHeightsProportional(t *testing.T) {
	cfg := testBarConfig()
	cfg.MaxValue = 200 // exact scale so Feb fills the plot
	cfg.ShowValues = false
	cfg.ShowLabels = false
	b := NewBar("sales", cfg)

	node := b.Node(40, 12) // plotRows = 12 - 2 padding = 10
	if node == nil {
		t.Fatal("no node for valid config")
	}
	heights := make([]int, len(node.Children))
	for i, col := range node.Children {
		bar := col.Children[0]
		heights[i] = int(bar.Height.Value)
	}
	if heights[1] != 10 {
		t.Errorf("max bar height = %d, want full plot height 10", heights[1])
	}
	if heights[0] != 5 {
		t.Errorf("half-value bar height = %d, want 5", heights[0])
	}
	if heights[2] >= heights[0] {
		t.Errorf("smallest value got height %d >= %d", heights[2], heights[0])
	}
}

func TestBarNode_AutoMaxAddsHeadroom(t *testing.T) {
	cfg := testBarConfig()
	if got, want := cfg.Max(), 220.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("auto max = %v, want %v (largest value + 10%%)", got, want)
	}

	cfg.MaxValue = 500
	if cfg.Max() != 500 {
		t.Errorf("explicit max = %v, want 500", cfg.Max())
	}
}

func TestBarNode_SmallValuesStayVisible(t *testing.T) {
	cfg := testBarConfig()
	cfg.Data = append(cfg.Data, DataPoint{Value: 0.1, Label: "Apr"})
	cfg.ShowValues = false
	cfg.ShowLabels = false
	b := NewBar("sales", cfg)

	node := b.Node(50, 12)
	tiny := node.Children[3].Children[0]
	if tiny.Height.Value < 1 {
		t.Error("positive value rendered with zero height")
	}
}

func TestBarNode_HorizontalWidthsProportional(t *testing.T) {
	cfg := testBarConfig()
	cfg.Orientation = Horizontal
	cfg.MaxValue = 200
	cfg.ShowValues = false
	cfg.ShowLabels = false
	b := NewBar("sales", cfg)

	node := b.Node(42, 12) // plotCols = 42 - 2 padding = 40
	widths := make([]int, len(node.Children))
	for i, row := range node.Children {
		widths[i] = int(row.Children[0].Width.Value)
	}
	if widths[1] != 40 {
		t.Errorf("max bar width = %d, want 40", widths[1])
	}
	if widths[0] != 20 {
		t.Errorf("half-value bar width = %d, want 20", widths[0])
	}
}

func TestBarNode_LabelsAndValuesPresent(t *testing.T) {
	cfg := testBarConfig()
	b := NewBar("sales", cfg)

	node := b.Node(50, 14)
	col := node.Children[0]
	// value text, bar, label text
	if len(col.Children) != 3 {
		t.Fatalf("bar column has %d children, want 3", len(col.Children))
	}
	if col.Children[0].Text != "100.0" {
		t.Errorf("value text = %q, want \"100.0\"", col.Children[0].Text)
	}
	if col.Children[2].Text != "Jan" {
		t.Errorf("label text = %q, want \"Jan\"", col.Children[2].Text)
	}
}

func TestPadLabel(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Jan", 5, "Jan  "},
		{"January", 5, "Janua"},
		{"Jan", 0, "Jan"},
	}
	for _, tt := range tests {
		if got := padLabel(tt.in, tt.width); got != tt.want {
			t.Errorf("padLabel(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
