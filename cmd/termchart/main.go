package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/drake/termchart/config"
)

var (
	version = "dev"
	commit  = "unknown"
)

// CLI is the top-level command structure for termchart.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Path to config file." type:"path"`

	Demo   DemoCmd   `cmd:"" help:"Run the interactive chart dashboard." default:"1"`
	Export ExportCmd `cmd:"" help:"Render the demo dataset to a PNG file."`
}

// DemoCmd runs the interactive Bubble Tea dashboard.
type DemoCmd struct {
	NoAltScreen bool `help:"Render inline instead of using the alternate screen." default:"false"`
}

// Run executes the demo command.
func (c *DemoCmd) Run(cli *CLI) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("demo: stdout is not a terminal (use 'termchart export' for non-interactive output)")
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	m, err := NewModel(cfg)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	opts := []tea.ProgramOption{}
	if !c.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	prog := tea.NewProgram(m, opts...)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}

// loadConfig resolves the config path and loads it, falling back to the
// default location when no path is given.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("termchart"),
		kong.Description("Terminal bar and pie charts with a cached braille renderer."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("termchart %s (%s)", version, commit)},
	)
	if err := ctx.Run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "termchart: %v\n", err)
		os.Exit(1)
	}
}
