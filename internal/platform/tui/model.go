package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Options configures the terminal host.
type Options struct {
	Runtime     core.RuntimeConfig
	Theme       pong.Theme
	InitialHold time.Duration
	RepeatHold  time.Duration
	Logger      *log.Logger
}

// OptionsFromConfig builds host options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Options {
	return Options{
		Runtime:     rt,
		Theme:       cfg.ResolveTheme(),
		InitialHold: cfg.Terminal.InitialHold(),
		RepeatHold:  cfg.Terminal.RepeatHold(),
		Logger:      logger,
	}
}

// Model is the Bubble Tea model: a start screen, then the running game.
type Model struct {
	opts     Options
	keys     KeyMap
	help     help.Model
	input    *core.InputState
	hold     *HoldTracker
	world    *pong.World
	clock    *core.Clock
	screen   *core.Screen
	canvas   *core.Canvas
	width    int
	height   int
	started  bool
	quitting bool
	now      func() time.Time
}

// NewModel creates a model showing the start screen.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.InitialHold <= 0 || opts.RepeatHold <= 0 {
		defaults := config.Default().Terminal
		opts.InitialHold, opts.RepeatHold = defaults.InitialHold(), defaults.RepeatHold()
	}

	input := core.NewInputState()
	screen := core.NewScreen(opts.Runtime.ScreenW, fieldRows(opts.Runtime.ScreenH))

	return Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		hold:   NewHoldTracker(input, opts.InitialHold, opts.RepeatHold),
		clock:  core.NewClock(opts.Runtime.TickRate),
		screen: screen,
		canvas: core.NewCanvas(screen, pong.FieldWidth, pong.FieldHeight),
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
		now:    time.Now,
	}
}

// fieldRows leaves the bottom terminal row for the help line.
func fieldRows(height int) int {
	return max(height-1, 1)
}

// Init does nothing: the loop starts when the player presses start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.hold.ReleaseAll()
		m.opts.Logger.Info("quit", "frames", m.clock.Frame())
		return m, tea.Quit
	}

	if !m.started {
		if key.Matches(msg, m.keys.Start) {
			return m.start()
		}
		return m, nil
	}

	k := keyOf(msg)
	if other := opposite(k); other != "" {
		m.hold.Release(other)
	}
	m.hold.Press(k, m.now())
	return m, nil
}

// start leaves the start screen, builds the world and begins ticking.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.started = true
	m.keys = playingKeyMap()
	m.world = pong.NewSeededWorld(m.opts.Runtime.Seed, m.input)
	m.opts.Logger.Info("game started",
		"seed", m.opts.Runtime.Seed,
		"tick_rate", m.opts.Runtime.TickRate,
		"cols", m.screen.Width(), "rows", m.screen.Height(),
	)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleResize processes window resize events.
// The field is logical, so the game keeps running at any size. Held keys are
// dropped: a drag-resize can swallow the presses that would keep them alive.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.hold.ReleaseAll()
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.opts.Logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.started || m.quitting {
		return m, nil
	}

	m.hold.Expire(now)
	m.world.Step(m.clock.Next())
	m.logEvents(m.world.LastEvents())

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m Model) logEvents(ev pong.Events) {
	if ev.Hit != pong.SideNone {
		m.opts.Logger.Debug("return", "paddle", ev.Hit, "smash", ev.Smash, "frame", m.clock.Frame())
	}
	if ev.Serve != pong.SideNone {
		m.opts.Logger.Debug("serve", "side", ev.Serve, "frame", m.clock.Frame())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.started {
		return m.startView()
	}

	m.world.Draw(m.canvas, m.opts.Theme)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// World returns the running world, or nil before start.
func (m Model) World() *pong.World {
	return m.world
}

// Started reports whether the start trigger has fired.
func (m Model) Started() bool {
	return m.started
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logger := model.opts.Logger
	logger.Info("terminal host starting", "width", opts.Runtime.ScreenW, "height", opts.Runtime.ScreenH)
	_, err := p.Run()
	logger.Info("terminal host stopped")
	return err
}
