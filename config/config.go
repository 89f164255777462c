// Package config handles the demo's YAML configuration with defaults and
// validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/drake/termchart/layout"
)

// Config holds all termchart demo configuration.
type Config struct {
	Demo    Demo     `yaml:"demo"`
	Pie     Pie      `yaml:"pie"`
	Bar     Bar      `yaml:"bar"`
	Palette []string `yaml:"palette"` // hex colors, e.g. "#6496fa"
}

// Demo holds data-rotation settings.
type Demo struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Window       int           `yaml:"window"` // rolling data points shown
	Seed         uint32        `yaml:"seed"`   // random color mode seed
}

// Pie holds donut geometry in braille dots.
type Pie struct {
	Radius          float64 `yaml:"radius"`
	HoleRadius      float64 `yaml:"hole_radius"`
	ExplodeDistance float64 `yaml:"explode_distance"`
	StartAngle      float64 `yaml:"start_angle"`
	SectorLines     bool    `yaml:"sector_lines"`
}

// Bar holds bar chart settings in cells.
type Bar struct {
	BarWidth   int     `yaml:"bar_width"`
	BarGap     int     `yaml:"bar_gap"`
	MaxValue   float64 `yaml:"max_value"` // 0 = auto
	ShowValues bool    `yaml:"show_values"`
	ShowLabels bool    `yaml:"show_labels"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Demo: Demo{
			TickInterval: time.Second,
			Window:       12,
			Seed:         12345,
		},
		Pie: Pie{
			Radius:          14,
			HoleRadius:      6,
			ExplodeDistance: 3,
			StartAngle:      -90,
			SectorLines:     true,
		},
		Bar: Bar{
			BarWidth:   5,
			BarGap:     1,
			ShowValues: true,
			ShowLabels: true,
		},
		Palette: []string{
			"#6496fa", "#78c878", "#fab464", "#fa6464", "#b478fa", "#64c8c8",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; an
// empty path loads the default location.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the widgets cannot render.
func (c Config) Validate() error {
	if c.Demo.TickInterval <= 0 {
		return errors.New("config: demo.tick_interval must be positive")
	}
	if c.Demo.Window <= 0 {
		return errors.New("config: demo.window must be positive")
	}
	if c.Pie.Radius <= 0 {
		return errors.New("config: pie.radius must be positive")
	}
	if c.Pie.HoleRadius < 0 || c.Pie.HoleRadius >= c.Pie.Radius {
		return errors.New("config: pie.hole_radius must be in [0, radius)")
	}
	if c.Pie.ExplodeDistance < 0 {
		return errors.New("config: pie.explode_distance must not be negative")
	}
	if c.Bar.BarWidth <= 0 {
		return errors.New("config: bar.bar_width must be positive")
	}
	if len(c.Palette) == 0 {
		return errors.New("config: palette must have at least one color")
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	return nil
}

// PaletteColors parses the palette hex strings.
func (c Config) PaletteColors() ([]layout.Color, error) {
	out := make([]layout.Color, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("config: palette color %q: %w", hex, err)
		}
		r, g, b := col.RGB255()
		out = append(out, layout.Color{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}

// Dir returns the termchart configuration directory. Respects
// XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "termchart")
}

// DefaultPath returns the path to the default config file.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}
