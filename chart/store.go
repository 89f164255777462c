package chart

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/termchart/layout"
)

// Store is a bounded registry of pie widgets keyed by element name, for
// hosts that create charts dynamically. Capacity is explicit: when it is
// exceeded the least recently used chart is evicted and its cached image
// released, rather than silently overwriting a slot still in use.
type Store struct {
	charts *lru.Cache[string, *Pie]
}

// NewStore creates a store holding at most capacity chart instances.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("chart: store capacity must be positive, got %d", capacity)
	}
	c, err := lru.NewWithEvict(capacity, func(_ string, p *Pie) {
		p.cache.release()
	})
	if err != nil {
		return nil, fmt.Errorf("chart: create store: %w", err)
	}
	return &Store{charts: c}, nil
}

// Pie returns the named chart instance, creating it if needed. An existing
// instance gets the config installed wholesale; its cache decides on the
// next prepare pass whether the change requires regeneration.
func (s *Store) Pie(name string, cfg PieConfig) *Pie {
	if p, ok := s.charts.Get(name); ok {
		p.SetConfig(cfg)
		return p
	}
	p := NewPie(name, cfg)
	s.charts.Add(name, p)
	return p
}

// Prepare runs the texture step for every chart in the store.
func (s *Store) Prepare(cmds []layout.RenderCommand) {
	for _, name := range s.charts.Keys() {
		if p, ok := s.charts.Peek(name); ok {
			p.Prepare(cmds)
		}
	}
}

// Len returns the number of live chart instances.
func (s *Store) Len() int {
	return s.charts.Len()
}
