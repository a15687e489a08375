package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Stats tallies ball events since the world was initialized.
type Stats struct {
	Frames         uint64
	PlayerServes   int
	OpponentServes int
	PlayerHits     int
	OpponentHits   int
	Smashes        int
	WallBounces    int
}

func (s *Stats) add(ev Events) {
	if ev.WallBounce {
		s.WallBounces++
	}
	switch ev.Hit {
	case SidePlayer:
		s.PlayerHits++
	case SideOpponent:
		s.OpponentHits++
	}
	if ev.Smash {
		s.Smashes++
	}
	s.addServe(ev.Serve)
}

func (s *Stats) addServe(side Side) {
	switch side {
	case SidePlayer:
		s.PlayerServes++
	case SideOpponent:
		s.OpponentServes++
	}
}

// World owns every game object for the lifetime of a session.
// It implements core.Stepper: one Step is one frame of simulation.
type World struct {
	Player   *Paddle
	Opponent *Paddle
	Ball     *Ball
	Input    *core.InputState

	last  Events
	stats Stats
}

// NewWorld creates a world reading the given input and serves the first ball.
// A nil input gets a fresh empty InputState.
func NewWorld(rng RandomSource, input *core.InputState) *World {
	if input == nil {
		input = core.NewInputState()
	}
	w := &World{
		Ball:  NewBall(rng),
		Input: input,
	}
	w.Init()
	return w
}

// NewSeededWorld creates a world whose serves come from a math/rand source
// seeded with seed, so identical inputs replay identically.
func NewSeededWorld(seed int64, input *core.InputState) *World {
	return NewWorld(rand.New(rand.NewSource(seed)), input)
}

// Init places both paddles centered against their margins and serves
// toward the opponent.
func (w *World) Init() {
	w.Player = NewPaddle(PaddleWidth, PaddleWidth, PaddleHeight)
	w.Opponent = NewPaddle(FieldWidth-(PaddleWidth+PaddleWidth), PaddleWidth, PaddleHeight)

	w.stats = Stats{}
	w.Ball.Serve(SidePlayer, w.Player, w.Opponent)
	w.last = Events{Serve: SidePlayer}
	w.stats.addServe(SidePlayer)
}

// Step runs one frame. The ball moves first against last frame's paddle
// positions, then the player, then the opponent.
func (w *World) Step(core.FrameContext) {
	w.last = w.Ball.Update(w.Player, w.Opponent)
	w.Player.MoveByInput(w.Input)
	w.Opponent.Track(w.Ball)

	w.stats.Frames++
	w.stats.add(w.last)
}

// LastEvents returns what the ball did during the most recent Step.
func (w *World) LastEvents() Events {
	return w.last
}

// Stats returns the tallies since the last Init.
func (w *World) Stats() Stats {
	return w.stats
}

// Draw renders the world onto dst.
func (w *World) Draw(dst Surface, theme Theme) {
	Render(dst, w, theme)
}

var _ core.Stepper = (*World)(nil)
