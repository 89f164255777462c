package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file returned error: %v", err)
	}
	if cfg.Demo.Window != DefaultConfig().Demo.Window {
		t.Error("missing file did not yield defaults")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
demo:
  tick_interval: 250ms
  window: 6
pie:
  radius: 20
  hole_radius: 8
palette:
  - "#112233"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Demo.TickInterval != 250*time.Millisecond {
		t.Errorf("tick_interval = %v, want 250ms", cfg.Demo.TickInterval)
	}
	if cfg.Demo.Window != 6 {
		t.Errorf("window = %d, want 6", cfg.Demo.Window)
	}
	if cfg.Pie.Radius != 20 {
		t.Errorf("radius = %v, want 20", cfg.Pie.Radius)
	}
	// Untouched fields keep their defaults.
	if cfg.Bar.BarWidth != DefaultConfig().Bar.BarWidth {
		t.Error("unrelated field lost its default")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("demo: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML did not return an error")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Demo.Window = 0 }},
		{"zero tick", func(c *Config) { c.Demo.TickInterval = 0 }},
		{"zero radius", func(c *Config) { c.Pie.Radius = 0 }},
		{"hole >= radius", func(c *Config) { c.Pie.HoleRadius = c.Pie.Radius }},
		{"negative explode", func(c *Config) { c.Pie.ExplodeDistance = -1 }},
		{"zero bar width", func(c *Config) { c.Bar.BarWidth = 0 }},
		{"bad palette hex", func(c *Config) { c.Palette = []string{"notacolor"} }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate returned nil", tt.name)
		}
	}
}

func TestPaletteColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = []string{"#6496fa"}
	colors, err := cfg.PaletteColors()
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(colors))
	}
	c := colors[0]
	if c.R != 0x64 || c.G != 0x96 || c.B != 0xfa || c.A != 255 {
		t.Errorf("parsed color = %+v", c)
	}
}
