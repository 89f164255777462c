package chart

import (
	"fmt"
	"testing"

	"github.com/drake/termchart/layout"
)

func newTestEngine() *layout.Engine {
	e := layout.NewEngine()
	e.SetSize(200, 60)
	return e
}

func rowOf(pies []*Pie) *layout.Element {
	root := &layout.Element{Width: layout.Grow(1), Height: layout.Grow(1), Gap: 1}
	for _, p := range pies {
		root.Add(p.Node())
	}
	return root
}

func TestNewStore_RejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, err := NewStore(capacity); err == nil {
			t.Errorf("NewStore(%d) did not return an error", capacity)
		}
	}
}

func TestStore_ReusesInstanceByName(t *testing.T) {
	s, err := NewStore(4)
	if err != nil {
		t.Fatal(err)
	}

	cfg := testPieConfig()
	a := s.Pie("sales", cfg)
	b := s.Pie("sales", cfg)
	if a != b {
		t.Error("same name returned a different instance")
	}
	if s.Len() != 1 {
		t.Errorf("store holds %d charts, want 1", s.Len())
	}
}

func TestStore_InstallsConfigWholesale(t *testing.T) {
	s, _ := NewStore(4)
	cfg := testPieConfig()
	p := s.Pie("sales", cfg)

	cfg.Radius = 99
	s.Pie("sales", cfg)
	if p.Config().Radius != 99 {
		t.Error("existing instance did not receive the new config")
	}
}

func TestStore_EvictionReleasesCachedImage(t *testing.T) {
	s, _ := NewStore(2)
	cfg := testPieConfig()
	cfg.Radius = 8
	cfg.ExplodeDistance = 0

	first := s.Pie("chart-0", cfg)
	first.Prepare(layoutFor(first))
	if first.Cache().Empty() {
		t.Fatal("prepare did not populate the cache")
	}

	// Exceed capacity; chart-0 is the least recently used.
	s.Pie("chart-1", cfg)
	s.Pie("chart-2", cfg)

	if s.Len() != 2 {
		t.Errorf("store holds %d charts after eviction, want 2", s.Len())
	}
	if !first.Cache().Empty() {
		t.Error("evicted chart still holds its cached image")
	}
}

func TestStore_PrepareCoversAllCharts(t *testing.T) {
	s, _ := NewStore(4)
	cfg := testPieConfig()
	cfg.Radius = 8
	cfg.ExplodeDistance = 0
	cfg.ShowLegend = false

	var pies []*Pie
	for i := 0; i < 3; i++ {
		pies = append(pies, s.Pie(fmt.Sprintf("chart-%d", i), cfg))
	}

	e := newTestEngine()
	root := rowOf(pies)
	cmds := e.Layout(root)
	s.Prepare(cmds)

	for i, p := range pies {
		if p.Image() == nil {
			t.Errorf("chart %d not prepared", i)
		}
	}
}
