package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is a vertical bat. X never changes after construction.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// NewPaddle creates a paddle at x, vertically centered in the field.
// Panics on a non-positive height: collision math divides by it.
func NewPaddle(x, width, height float64) *Paddle {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("pong: paddle size must be positive, got %vx%v", width, height))
	}
	return &Paddle{
		X:      x,
		Y:      (FieldHeight - height) / 2,
		Width:  width,
		Height: height,
	}
}

// Bounds returns the paddle's rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// MoveByInput steps the paddle up and/or down for each held move key.
// Holding both keys cancels out.
func (p *Paddle) MoveByInput(in *core.InputState) {
	if in.IsHeld(MoveUpKey) {
		p.Y -= PlayerStep
	}
	if in.IsHeld(MoveDownKey) {
		p.Y += PlayerStep
	}
	p.clamp()
}

// Track moves the paddle a fixed fraction of the way toward lining its
// center up with the ball's hit-box center.
func (p *Paddle) Track(b *Ball) {
	targetY := b.Y - (p.Height-b.Side)*0.5
	p.Y += (targetY - p.Y) * TrackingGain
	p.clamp()
}

func (p *Paddle) clamp() {
	p.Y = core.ClampF(p.Y, 0, FieldHeight-p.Height)
}

// Draw paints the paddle's rectangle.
func (p *Paddle) Draw(dst Surface, c core.Color) {
	dst.FillRect(p.X, p.Y, p.Width, p.Height, c)
}
