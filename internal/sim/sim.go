// Package sim runs the game without a display, for replaying seeds and
// checking rally behavior from the command line.
package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Options configures a headless run.
type Options struct {
	Seed     int64
	Frames   int
	TickRate int
	Track    bool // Autopilot holds the player's keys toward the ball
}

// Result is the state after a headless run.
type Result struct {
	Seed    int64
	World   *pong.World
	Stats   pong.Stats
	Elapsed time.Duration // Virtual game time covered
}

// Run steps a fresh seeded world for opts.Frames frames.
func Run(opts Options) Result {
	world := pong.NewSeededWorld(opts.Seed, nil)
	clock := core.NewClock(opts.TickRate)

	step := core.Stepper(world)
	if opts.Track {
		step = core.StepFunc(func(ctx core.FrameContext) {
			pong.Autopilot(world)
			world.Step(ctx)
		})
	}
	clock.Run(step, opts.Frames)

	return Result{
		Seed:    opts.Seed,
		World:   world,
		Stats:   world.Stats(),
		Elapsed: clock.Elapsed(),
	}
}

// Report prints the tally as an aligned table.
func Report(w io.Writer, r Result) {
	rows := []struct {
		label string
		value any
	}{
		{"Seed", r.Seed},
		{"Frames", r.Stats.Frames},
		{"Game time", r.Elapsed},
		{"Player serves", r.Stats.PlayerServes},
		{"Opponent serves", r.Stats.OpponentServes},
		{"Player returns", r.Stats.PlayerHits},
		{"Opponent returns", r.Stats.OpponentHits},
		{"Smashes", r.Stats.Smashes},
		{"Wall bounces", r.Stats.WallBounces},
	}

	for _, row := range rows {
		fmt.Fprintf(w, "  %-16s  %v\n", row.label, row.value)
	}
}

// Dump rasterizes the final frame onto a cols x rows text grid.
func Dump(r Result, cols, rows int) string {
	screen := core.NewScreen(cols, rows)
	r.World.Draw(core.NewCanvas(screen, pong.FieldWidth, pong.FieldHeight), pong.DefaultTheme())
	return screen.String()
}
