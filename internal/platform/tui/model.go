package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options controls how the terminal front end runs a game.
type Options struct {
	// Width and Height are the initial terminal size. Bubble Tea sends the
	// real size shortly after start; zero values use 80x24 until then.
	Width  int
	Height int

	// ExitOnGameOver stops the program as soon as the game ends
	// instead of showing the game over overlay.
	ExitOnGameOver bool
}

// Result reports how a run ended.
type Result struct {
	Quit  bool           // The player quit
	State core.GameState // Game state when the program stopped
}

// Model is the Bubble Tea model that runs a game once per frame.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	frame    core.InputFrame
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Width, screenHeight(opts.Height)),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		frame:  core.NewInputFrame(),
	}
}

// screenHeight leaves one terminal line for the help footer.
func screenHeight(termHeight int) int {
	return max(1, termHeight-1)
}

// Init initializes the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Set(action)
	return m, nil
}

// handleTick steps the game with the input gathered since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.frame.Elapsed = max(0, now.Sub(m.lastTick))
	}
	m.lastTick = now

	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	if m.state.GameOver && m.opts.ExitOnGameOver {
		return m, tea.Quit
	}
	return m, tickCmd(m.config.FrameDuration())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Result returns how the run ended.
func (m Model) Result() Result {
	return Result{Quit: m.quitting, State: m.state}
}

// Run starts the Bubble Tea program and blocks until the player quits or,
// with ExitOnGameOver, the game ends.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return Result{}, nil
}
