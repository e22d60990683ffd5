package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/gfx"
	"github.com/moonacre/lunafarm/internal/registry"
)

// Model is the Bubble Tea model driving a game. It samples one logical
// command per tick (latest key wins) and feeds the game synthetic elapsed
// milliseconds, so game logic never reads the wall clock directly.
type Model struct {
	game      registry.Game
	buf       *gfx.Buffer
	config    core.RuntimeConfig
	keys      KeyMap
	pending   core.Command
	gameState core.GameState
	start     time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// A non-positive rate would zero the tick interval.
	if cfg.TickRate < 1 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:   game,
		buf:    gfx.NewBuffer(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		start:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's command for the next tick. Keys arriving
// faster than the tick rate overwrite each other; only the latest is played.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Command(msg)
	if cmd == core.CmdQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd != core.CmdNone {
		m.pending = cmd
	}
	return m, nil
}

// handleResize adjusts the cell buffer and playfield without resetting the
// world.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.buf.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick runs one simulation step and re-renders into the cell buffer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.TickInput{
		Now:     time.Since(m.start).Milliseconds(),
		Command: m.pending,
	}
	m.pending = core.CmdNone

	result := m.game.Step(in)
	m.gameState = result.State

	m.game.Render(m.buf)

	// A full clear invalidates Bubble Tea's own diff of the previous view.
	if m.buf.TakeForceRedraw() {
		return m, tea.Batch(tea.ClearScreen, tickCmd(m.config.TickRate))
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current cell buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.buf.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
