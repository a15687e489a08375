// Package pong implements a single-screen Pong: the player moves the left
// paddle with the arrow keys, the right paddle tracks the ball on its own.
//
// Everything is expressed in logical field units (700x600). Hosts decide how
// those units map onto terminal cells or window pixels.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Field dimensions in logical units.
const (
	FieldWidth  = 700
	FieldHeight = 600
)

// Paddle settings
const (
	PaddleWidth  = 20
	PaddleHeight = 100
	PlayerStep   = 7   // Units per frame while a move key is held
	TrackingGain = 0.1 // Fraction of the remaining distance the opponent covers per frame
)

// Ball settings
const (
	BallSide   = 20  // Hit-box edge length
	BallSpeed  = 7   // Units per frame
	BallRadius = 10  // Drawn radius
	SmashBoost = 1.5 // Speed multiplier for steep returns
)

// Keys bound to the player's paddle.
const (
	MoveUpKey   = core.KeyUp
	MoveDownKey = core.KeyDown
)

// Side says which paddle a serve starts from, and so which way the ball heads.
type Side int

const (
	SideNone     Side = 0
	SidePlayer   Side = 1  // Ball starts at the player, moving right
	SideOpponent Side = -1 // Ball starts at the opponent, moving left
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}
