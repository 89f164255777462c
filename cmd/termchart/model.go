package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/termchart/chart"
	"github.com/drake/termchart/config"
	"github.com/drake/termchart/internal/series"
	"github.com/drake/termchart/layout"
	"github.com/drake/termchart/screen"
	"github.com/drake/termchart/style"
)

// tickMsg drives the rolling data window.
type tickMsg time.Time

func doTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// colorModeKind selects which pie color mode is active.
type colorModeKind int

const (
	modePerItem colorModeKind = iota
	modePalette
	modeGradient
	modeRandom
)

var modeNames = map[colorModeKind]string{
	modePerItem:  "per-item",
	modePalette:  "palette",
	modeGradient: "gradient",
	modeRandom:   "random",
}

var months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Model is the Bubble Tea model for the chart dashboard.
type Model struct {
	engine *layout.Engine
	scr    *screen.Screen
	charts *chart.Store
	styles style.Styles
	keys   demoKeys

	cfg     config.Config
	palette []layout.Color

	values   *series.Ring
	labels   []string
	monthIdx int
	rng      *rand.Rand

	modeKind colorModeKind
	exploded bool
	paused   bool

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates the dashboard model from a validated config.
func NewModel(cfg config.Config) (Model, error) {
	palette, err := cfg.PaletteColors()
	if err != nil {
		return Model{}, err
	}

	// Bounded store: the demo only ever shows one pie, but evicted
	// entries must release their cached images.
	charts, err := chart.NewStore(8)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		engine:  layout.NewEngine(),
		charts:  charts,
		styles:  style.DefaultStyles(),
		keys:    DemoKeyMap(),
		cfg:     cfg,
		palette: palette,
		values:  series.NewRing(cfg.Demo.Window),
		rng:     rand.New(rand.NewSource(int64(cfg.Demo.Seed))),
	}

	for i := 0; i < cfg.Demo.Window; i++ {
		m.values.Push(m.nextValue())
		m.labels = append(m.labels, months[i%len(months)])
	}
	m.monthIdx = cfg.Demo.Window % len(months)

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return doTick(m.cfg.Demo.TickInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetSize(msg.Width, max(msg.Height-2, 1))
		m.scr = screen.New(msg.Width, max(msg.Height-2, 1))
		m.initialized = true
		return m, nil

	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, doTick(m.cfg.Demo.TickInterval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.PerItem):
		m.modeKind = modePerItem
	case key.Matches(msg, m.keys.Palette):
		m.modeKind = modePalette
	case key.Matches(msg, m.keys.Gradient):
		m.modeKind = modeGradient
	case key.Matches(msg, m.keys.Random):
		m.modeKind = modeRandom
	case key.Matches(msg, m.keys.Explode):
		m.exploded = !m.exploded
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	}
	return m, nil
}

// advance shifts the rolling window: the oldest month drops off and a
// fresh pseudo-random sample takes its place.
func (m *Model) advance() {
	m.values.Push(m.nextValue())
	if len(m.labels) > 0 {
		m.labels = append(m.labels[1:], months[m.monthIdx])
	}
	m.monthIdx = (m.monthIdx + 1) % len(months)
}

func (m *Model) nextValue() float64 {
	return 40 + m.rng.Float64()*160
}

// colorMode maps the active mode kind onto a chart.ColorMode.
func (m Model) colorMode() chart.ColorMode {
	switch m.modeKind {
	case modePalette:
		return chart.Palette{Colors: m.palette}
	case modeGradient:
		return chart.Gradient{Start: m.palette[0], End: m.palette[len(m.palette)-1]}
	case modeRandom:
		return chart.Random{Seed: m.cfg.Demo.Seed}
	default:
		return chart.PerItem{}
	}
}

// dataPoints builds the shared dataset for both charts. Item colors
// cycle the palette so per-item mode still has something to show.
func (m Model) dataPoints() []chart.DataPoint {
	vals := m.values.Values()
	data := make([]chart.DataPoint, len(vals))

	largest := 0
	for i, v := range vals {
		if v > vals[largest] {
			largest = i
		}
		data[i] = chart.DataPoint{
			Value: v,
			Label: m.labels[i],
			Color: m.palette[i%len(m.palette)],
		}
	}
	if m.exploded && len(data) > 0 {
		data[largest].Exploded = true
	}
	return data
}

func (m Model) pieConfig(data []chart.DataPoint) chart.PieConfig {
	return chart.PieConfig{
		Data:            data,
		Radius:          m.cfg.Pie.Radius,
		HoleRadius:      m.cfg.Pie.HoleRadius,
		ExplodeDistance: m.cfg.Pie.ExplodeDistance,
		StartAngle:      m.cfg.Pie.StartAngle,
		ShowLegend:      true,
		ShowSectorLines: m.cfg.Pie.SectorLines,
		SectorLineColor: layout.RGB(255, 255, 255),
		LabelColor:      layout.RGB(220, 220, 220),
		Mode:            m.colorMode(),
	}
}

func (m Model) barConfig(data []chart.DataPoint) chart.BarConfig {
	return chart.BarConfig{
		Data:        data,
		Orientation: chart.Vertical,
		BarWidth:    m.cfg.Bar.BarWidth,
		BarGap:      m.cfg.Bar.BarGap,
		MaxValue:    m.cfg.Bar.MaxValue,
		ShowValues:  m.cfg.Bar.ShowValues,
		ShowLabels:  m.cfg.Bar.ShowLabels,
		LabelColor:  layout.RGB(220, 220, 220),
		Mode:        m.colorMode(),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return m.styles.Muted.Render("waiting for terminal size...")
	}

	data := m.dataPoints()
	pie := m.charts.Pie("sales", m.pieConfig(data))
	bar := chart.NewBar("sales-bars", m.barConfig(data))

	chartH := max(m.height-2, 1)
	barW := max(m.width/2-4, 10)
	barH := max(chartH-2, 3)

	root := &layout.Element{
		ID:        "root",
		Direction: layout.LeftToRight,
		Width:     layout.Grow(1),
		Height:    layout.Grow(1),
		Gap:       2,
		Padding:   1,
		AlignY:    layout.AlignCenter,
	}
	root.Add(bar.Node(barW, barH), pie.Node())

	cmds := m.engine.Layout(root)
	m.charts.Prepare(cmds)
	body := m.scr.Compose(cmds)

	return m.header() + "\n" + body + "\n" + m.footer()
}

func (m Model) header() string {
	title := m.styles.Title.Render("termchart")
	sub := m.styles.Subtitle.Render("rolling monthly sales")
	state := ""
	if m.paused {
		state = " " + m.styles.Error.Render("[paused]")
	}
	return fmt.Sprintf(" %s  %s%s", title, sub, state)
}

func (m Model) footer() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		label := h.Key + " " + h.Desc
		if isModeBinding(h.Desc, modeNames[m.modeKind]) {
			parts = append(parts, m.styles.ModeActive.Render(label))
		} else {
			parts = append(parts, m.styles.ModeIdle.Render(label))
		}
	}
	return m.styles.Footer.Render(" " + strings.Join(parts, "  "))
}

func isModeBinding(desc, active string) bool {
	return strings.HasPrefix(desc, active+" ")
}
