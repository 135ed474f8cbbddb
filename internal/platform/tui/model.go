package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spawnproof/internal/canvas"
	"github.com/vovakirdan/spawnproof/internal/core"
	"github.com/vovakirdan/spawnproof/internal/grid"
)

const (
	headerRows  = 1  // screen rows above the canvas
	headerWidth = 48 // narrowest screen that fits the header
)

// Outcome describes how an editor session ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota // still running
	OutcomeSaved                   // pattern written to the output path
	OutcomeExported                // blueprint written to the export path
	OutcomeQuit                    // left without writing
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "running"
	case OutcomeSaved:
		return "saved"
	case OutcomeExported:
		return "exported"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Options configures an editor session.
type Options struct {
	Layout   canvas.Layout
	TickRate int
	Radius   int
	Output   string // pattern file written on save
	Export   string // blueprint file written on export

	// OnFinish, if set, is called once when the session saves, exports
	// or quits. path is the written file, empty on quit.
	OnFinish func(outcome Outcome, path string)
}

// Model is the Bubble Tea model for the canvas editor.
type Model struct {
	session  *canvas.Session
	layout   canvas.Layout
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	opts     Options
	status   string
	outcome  Outcome
	written  string
	quitting bool
}

// NewModel creates an editor for g. The grid is edited in place.
func NewModel(g *grid.Grid, opts Options) Model {
	if opts.Layout.CellW <= 0 || opts.Layout.CellH <= 0 {
		opts.Layout = canvas.DefaultLayout()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Export == "" {
		opts.Export = exportPathFor(opts.Output)
	}

	layout := opts.Layout
	layout.OriginX = 0
	layout.OriginY = headerRows

	session := canvas.NewSession(g)
	if opts.Radius > 0 {
		session.SetRadius(opts.Radius)
	}

	w, h := layout.Size(g.W, g.H)
	cfg := core.DefaultConfig()
	cfg.TickRate = opts.TickRate

	return Model{
		session: session,
		layout:  layout,
		screen:  core.NewScreen(core.Max(w, headerWidth), h+headerRows),
		config:  cfg,
		keys:    NewKeyMapper(),
		help:    help.New(),
		opts:    opts,
	}
}

// exportPathFor derives the blueprint path from the pattern path.
func exportPathFor(output string) string {
	if output == "" {
		return "blueprint.txt"
	}
	return filepath.Join(filepath.Dir(output), "blueprint.txt")
}

// Session returns the underlying editing session.
func (m Model) Session() *canvas.Session { return m.session }

// Outcome returns how the session ended, or OutcomeNone while running.
func (m Model) Outcome() Outcome { return m.outcome }

// Written returns the path of the file written on exit, if any.
func (m Model) Written() string { return m.written }

// Status returns the last status message.
func (m Model) Status() string { return m.status }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.outcome != OutcomeNone {
			return m, nil
		}
		m.session.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, code := m.keys.MapKey(msg)
	s := m.session

	switch action {
	case core.ActionQuit:
		return m.finish(OutcomeQuit, "")
	case core.ActionUp:
		s.MoveCursor(0, -1)
	case core.ActionDown:
		s.MoveCursor(0, 1)
	case core.ActionLeft:
		s.MoveCursor(-1, 0)
	case core.ActionRight:
		s.MoveCursor(1, 0)
	case core.ActionClick:
		s.Click()
	case core.ActionRectMode:
		s.ToggleMode(canvas.ModeRectangle)
	case core.ActionCircleMode:
		s.ToggleMode(canvas.ModeCircle)
	case core.ActionFillMode:
		s.ToggleMode(canvas.ModeFill)
	case core.ActionGrow:
		s.Scroll(1)
	case core.ActionShrink:
		s.Scroll(-1)
	case core.ActionSelect:
		s.Select(code)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionSave:
		if err := grid.Save(m.opts.Output, s.Grid()); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		return m.finish(OutcomeSaved, m.opts.Output)
	case core.ActionExport:
		if err := m.export(); err != nil {
			m.status = fmt.Sprintf("export failed: %v", err)
			return m, nil
		}
		return m.finish(OutcomeExported, m.opts.Export)
	}

	return m, nil
}

// handleMouse maps pointer events to canvas cells.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.session
	g := s.Grid()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		s.Scroll(1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		s.Scroll(-1)
		return m, nil
	}

	cell := m.layout.CellAt(msg.X, msg.Y, g.W, g.H)
	switch msg.Action {
	case tea.MouseActionMotion:
		s.PointerMove(cell)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.PointerDown(cell)
		} else {
			s.PointerMove(cell)
		}
	case tea.MouseActionRelease:
		s.PointerUp()
	}
	return m, nil
}

func (m Model) finish(outcome Outcome, path string) (tea.Model, tea.Cmd) {
	m.outcome = outcome
	m.written = path
	m.quitting = true
	if m.opts.OnFinish != nil {
		m.opts.OnFinish(outcome, path)
	}
	return m, tea.Quit
}

func (m Model) export() error {
	if dir := filepath.Dir(m.opts.Export); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data := Blueprint(m.session.Grid(), m.layout)
	return os.WriteFile(m.opts.Export, []byte(data), 0o644)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(colorStyles[core.ColorAccent].Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys.Keys()))
	return sb.String()
}

// render draws the header, the grid, the shape preview and the cursor.
func (m Model) render() {
	s := m.session
	m.screen.Clear()

	header := fmt.Sprintf("%s  block %d %s", s.Mode(), s.Selected(), s.Selected())
	if s.Mode() == canvas.ModeCircle {
		header += fmt.Sprintf("  r=%d", s.Radius())
	}
	header += fmt.Sprintf("  %v", s.Cursor())
	m.screen.DrawTextColor(0, 0, header, core.ColorAccent)

	DrawGrid(m.screen, s.Grid(), m.layout)

	preview := Tile(s.Selected())
	preview.Color = core.ColorPreview
	for _, c := range s.Preview() {
		if s.Grid().InBounds(c) {
			drawTile(m.screen, m.layout, c, preview)
		}
	}

	if anchor, ok := s.Anchor(); ok {
		drawTile(m.screen, m.layout, anchor, core.Cell{Rune: '+', Color: core.ColorCursor})
	}
	cursor := Tile(s.Grid().Get(s.Cursor()))
	cursor.Color = core.ColorCursor
	drawTile(m.screen, m.layout, s.Cursor(), cursor)
}

// Run starts the editor on g and blocks until the user leaves it.
func Run(g *grid.Grid, opts Options, extra ...tea.ProgramOption) (Model, error) {
	model := NewModel(g, opts)

	progOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, extra...)

	p := tea.NewProgram(model, progOpts...)
	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
