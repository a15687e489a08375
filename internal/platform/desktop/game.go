// Package desktop hosts the game in a native window through Ebitengine.
// Real key-up events make held state exact here, unlike the terminal host.
package desktop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Options configures the window host.
type Options struct {
	Runtime core.RuntimeConfig
	Theme   pong.Theme
	Scale   float64
	Title   string
	Logger  *log.Logger
}

// OptionsFromConfig builds host options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) Options {
	return Options{
		Runtime: cfg.Runtime(pong.FieldWidth, pong.FieldHeight),
		Theme:   cfg.ResolveTheme(),
		Scale:   cfg.Window.Scale,
		Title:   cfg.Window.Title,
		Logger:  logger,
	}
}

// heldKeys maps the polled window keys to game keys.
var heldKeys = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:   pong.MoveUpKey,
	ebiten.KeyArrowDown: pong.MoveDownKey,
}

// Game implements ebiten.Game: a start placeholder, then the running world.
type Game struct {
	opts  Options
	input *core.InputState
	world *pong.World
	clock *core.Clock
}

func newGame(opts Options) *Game {
	return &Game{
		opts:  opts,
		input: core.NewInputState(),
		clock: core.NewClock(opts.Runtime.TickRate),
	}
}

// Update runs once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.opts.Logger.Info("quit", "frames", g.clock.Frame())
		return ebiten.Termination
	}

	if g.world == nil {
		if startPressed() {
			g.start()
		}
		return nil
	}

	for k, gameKey := range heldKeys {
		g.input.Set(gameKey, ebiten.IsKeyPressed(k))
	}
	g.world.Step(g.clock.Next())

	ev := g.world.LastEvents()
	if ev.Hit != pong.SideNone {
		g.opts.Logger.Debug("return", "paddle", ev.Hit, "smash", ev.Smash, "frame", g.clock.Frame())
	}
	if ev.Serve != pong.SideNone {
		g.opts.Logger.Debug("serve", "side", ev.Serve, "frame", g.clock.Frame())
	}
	return nil
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (g *Game) start() {
	g.world = pong.NewSeededWorld(g.opts.Runtime.Seed, g.input)
	g.opts.Logger.Info("game started", "seed", g.opts.Runtime.Seed, "tick_rate", g.opts.Runtime.TickRate)
}

// Draw paints the start placeholder or the field.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.world == nil {
		screen.Fill(g.opts.Theme.Background.ToRGBA())
		ebitenutil.DebugPrintAt(screen, "PONG", pong.FieldWidth/2-12, pong.FieldHeight/2-40)
		ebitenutil.DebugPrintAt(screen, "Press ENTER or click to start", pong.FieldWidth/2-87, pong.FieldHeight/2)
		ebitenutil.DebugPrintAt(screen, "Up/Down: move   Esc: quit", pong.FieldWidth/2-75, pong.FieldHeight/2+20)
		return
	}
	g.world.Draw(imageSurface{dst: screen}, g.opts.Theme)
}

// Layout fixes the logical screen to the field; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return pong.FieldWidth, pong.FieldHeight
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ebiten.SetWindowSize(int(pong.FieldWidth*opts.Scale), int(pong.FieldHeight*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.Runtime.TickRate)

	opts.Logger.Info("window host starting", "scale", opts.Scale, "tick_rate", opts.Runtime.TickRate)
	if err := ebiten.RunGame(newGame(opts)); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	opts.Logger.Info("window host stopped")
	return nil
}
