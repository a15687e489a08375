package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Ball is a square hit-box moving at a constant speed.
type Ball struct {
	X, Y     float64
	Side     float64 // Hit-box edge length
	Speed    float64
	Velocity core.Vec2

	rng RandomSource
}

// Events records what happened to the ball during one Update.
type Events struct {
	WallBounce bool
	Hit        Side // Paddle that returned the ball, SideNone if no hit
	Smash      bool
	Serve      Side // Side the ball was re-served from, SideNone if still in play
}

// NewBall creates a ball that draws its serve randomness from rng.
// The ball is not in play until Serve is called.
func NewBall(rng RandomSource) *Ball {
	return &Ball{
		Side:  BallSide,
		Speed: BallSpeed,
		rng:   rng,
	}
}

// Bounds returns the ball's hit-box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Side, b.Side)
}

// Serve puts the ball flush against the serving paddle at a random height
// and launches it toward the other side. The launch angle is tied to the same
// random draw as the height: high serves head down, low serves head up.
func (b *Ball) Serve(side Side, player, opponent *Paddle) {
	r := b.rng.Float64()

	if side == SidePlayer {
		b.X = player.X + player.Width
	} else {
		b.X = opponent.X - b.Side
	}
	b.Y = (FieldHeight - b.Side) * r

	angle := 0.1 * math.Pi * (1 - 2*r)
	v := core.FromAngle(angle, b.Speed)
	b.Velocity = core.Vec2{X: float64(side) * v.X, Y: v.Y}
}

// Update advances the ball one frame: move, bounce off the top and bottom
// walls, return off the paddle it is heading toward, and re-serve once it
// leaves the field on the left or right.
func (b *Ball) Update(player, opponent *Paddle) Events {
	var ev Events

	b.X += b.Velocity.X
	b.Y += b.Velocity.Y

	// Mirror any overshoot back inside the field.
	if b.Y < 0 || b.Y+b.Side > FieldHeight {
		var offset float64
		if b.Velocity.Y < 0 {
			offset = 0 - b.Y
		} else {
			offset = FieldHeight - (b.Y + b.Side)
		}
		b.Y += 2 * offset
		b.Velocity.Y = -b.Velocity.Y
		ev.WallBounce = true
	}

	paddle, side := opponent, SideOpponent
	if b.Velocity.X < 0 {
		paddle, side = player, SidePlayer
	}

	if paddle.Bounds().Intersects(b.Bounds()) {
		if side == SidePlayer {
			b.X = player.X + player.Width
		} else {
			b.X = opponent.X - b.Side
		}

		contact := (b.Y + b.Side - paddle.Y) / (paddle.Height + b.Side)
		angle := 0.25 * math.Pi * (2*contact - 1)
		smash := 1.0
		if math.Abs(angle) > 0.2*math.Pi {
			smash = SmashBoost
			ev.Smash = true
		}

		v := core.FromAngle(angle, b.Speed).Scale(smash)
		b.Velocity = core.Vec2{X: float64(side) * v.X, Y: v.Y}
		ev.Hit = side
	}

	// The point goes to whichever paddle the ball was not heading toward.
	if b.X+b.Side < 0 || b.X > FieldWidth {
		b.Serve(side, player, opponent)
		ev.Serve = side
	}

	return ev
}

// Draw paints the ball as a filled circle centered on its position.
func (b *Ball) Draw(dst Surface, c core.Color) {
	dst.FillCircle(b.X, b.Y, BallRadius, c)
}
