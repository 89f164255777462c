package layout

import "testing"

func TestElementID_Deterministic(t *testing.T) {
	if ElementID("SalesChart") != ElementID("SalesChart") {
		t.Error("same name produced different IDs")
	}
	if ElementID("SalesChart") == ElementID("SalesPie") {
		t.Error("different names produced the same ID")
	}
}

func TestLayout_FixedAndGrowSplit(t *testing.T) {
	e := NewEngine()
	e.SetSize(100, 10)

	root := (&Element{
		ID:     "root",
		Width:  Grow(1),
		Height: Grow(1),
	}).Add(
		&Element{ID: "left", Width: Fixed(30), Height: Grow(1)},
		&Element{ID: "mid", Width: Grow(1), Height: Grow(1)},
		&Element{ID: "right", Width: Grow(1), Height: Grow(1)},
	)

	e.Layout(root)

	left, _ := e.Bounds("left")
	if left.W != 30 {
		t.Errorf("left.W = %d, want 30", left.W)
	}
	mid, _ := e.Bounds("mid")
	right, _ := e.Bounds("right")
	if mid.W+right.W != 70 {
		t.Errorf("grow children got %d cells, want 70", mid.W+right.W)
	}
	if right.X+right.W != 100 {
		t.Errorf("children overflow root: right edge %d", right.X+right.W)
	}
}

func TestLayout_PercentSizing(t *testing.T) {
	e := NewEngine()
	e.SetSize(90, 20)

	root := (&Element{Width: Grow(1), Height: Grow(1)}).Add(
		&Element{ID: "a", Width: Percent(0.5), Height: Grow(1)},
		&Element{ID: "b", Width: Percent(0.5), Height: Grow(1)},
	)
	e.Layout(root)

	a, _ := e.Bounds("a")
	if a.W != 45 {
		t.Errorf("a.W = %d, want 45 (half of 90)", a.W)
	}
}

func TestLayout_PaddingAndGap(t *testing.T) {
	e := NewEngine()
	e.SetSize(40, 10)

	root := (&Element{
		Width:   Grow(1),
		Height:  Grow(1),
		Padding: 2,
		Gap:     3,
	}).Add(
		&Element{ID: "a", Width: Fixed(5), Height: Grow(1)},
		&Element{ID: "b", Width: Fixed(5), Height: Grow(1)},
	)
	e.Layout(root)

	a, _ := e.Bounds("a")
	b, _ := e.Bounds("b")
	if a.X != 2 {
		t.Errorf("a.X = %d, want 2 (padding)", a.X)
	}
	if b.X != 10 {
		t.Errorf("b.X = %d, want 10 (padding + width + gap)", b.X)
	}
	if a.Y != 2 || a.H != 6 {
		t.Errorf("a vertical box = (%d, %d), want (2, 6)", a.Y, a.H)
	}
}

func TestLayout_CommandOrderDepthFirst(t *testing.T) {
	e := NewEngine()
	e.SetSize(20, 10)

	root := (&Element{
		ID:         "parent",
		Width:      Grow(1),
		Height:     Grow(1),
		Background: RGB(1, 1, 1),
	}).Add(
		&Element{ID: "child", Width: Grow(1), Height: Grow(1), Background: RGB(2, 2, 2)},
	)
	cmds := e.Layout(root)

	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if cmds[0].ID != ElementID("parent") || cmds[1].ID != ElementID("child") {
		t.Error("commands not in parent-before-child order")
	}
}

func TestLayout_TextCommand(t *testing.T) {
	e := NewEngine()
	e.SetSize(20, 10)

	root := (&Element{Width: Grow(1), Height: Grow(1)}).Add(
		&Element{Text: "hello", TextColor: RGB(10, 20, 30)},
	)
	cmds := e.Layout(root)

	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	cmd := cmds[0]
	if cmd.Kind != CmdText || cmd.Text != "hello" {
		t.Errorf("unexpected command %+v", cmd)
	}
	if cmd.Box.W != 5 || cmd.Box.H != 1 {
		t.Errorf("text box = %dx%d, want 5x1", cmd.Box.W, cmd.Box.H)
	}
}

func TestLayout_CustomCommandCarriesPayload(t *testing.T) {
	e := NewEngine()
	e.SetSize(20, 10)

	payload := &CustomPayload{Tag: "widget", Data: 42}
	root := (&Element{Width: Grow(1), Height: Grow(1)}).Add(
		&Element{ID: "area", Width: Fixed(10), Height: Fixed(5), Custom: payload},
	)
	cmds := e.Layout(root)

	var found *RenderCommand
	for i := range cmds {
		if cmds[i].Kind == CmdCustom {
			found = &cmds[i]
		}
	}
	if found == nil {
		t.Fatal("no custom command emitted")
	}
	if found.Custom != payload {
		t.Error("payload not passed through untouched")
	}
	if found.Box.W != 10 || found.Box.H != 5 {
		t.Errorf("custom box = %dx%d, want 10x5", found.Box.W, found.Box.H)
	}
}

func TestLayout_CenterAlignment(t *testing.T) {
	e := NewEngine()
	e.SetSize(20, 11)

	root := (&Element{
		Width:  Grow(1),
		Height: Grow(1),
		AlignX: AlignCenter,
		AlignY: AlignCenter,
	}).Add(
		&Element{ID: "box", Width: Fixed(10), Height: Fixed(5)},
	)
	e.Layout(root)

	box, _ := e.Bounds("box")
	if box.X != 5 {
		t.Errorf("box.X = %d, want 5", box.X)
	}
	if box.Y != 3 {
		t.Errorf("box.Y = %d, want 3", box.Y)
	}
}

func TestLayout_FitSizesToChildren(t *testing.T) {
	e := NewEngine()
	e.SetSize(80, 24)

	root := (&Element{
		ID:        "legend",
		Direction: TopToBottom,
		Padding:   1,
		Gap:       1,
	}).Add(
		&Element{Text: "alpha"},
		&Element{Text: "beta"},
	)
	e.Layout(root)

	box, ok := e.Bounds("legend")
	if !ok {
		t.Fatal("legend bounds missing")
	}
	// 2 rows of text + gap + padding on both sides
	if box.H != 5 {
		t.Errorf("legend.H = %d, want 5", box.H)
	}
	if box.W != 7 {
		t.Errorf("legend.W = %d, want 7 (widest text + padding)", box.W)
	}
}

func TestLayout_NilRoot(t *testing.T) {
	e := NewEngine()
	e.SetSize(10, 10)
	if cmds := e.Layout(nil); cmds != nil {
		t.Errorf("nil root produced %d commands", len(cmds))
	}
}
