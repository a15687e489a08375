package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// fixedRand always draws the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

const eps = 1e-9

func nearly(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func newPaddles() (*Paddle, *Paddle) {
	player := NewPaddle(PaddleWidth, PaddleWidth, PaddleHeight)
	opponent := NewPaddle(FieldWidth-2*PaddleWidth, PaddleWidth, PaddleHeight)
	return player, opponent
}

func TestBallServeCenter(t *testing.T) {
	player, opponent := newPaddles()
	b := NewBall(fixedRand(0.5))

	b.Serve(SidePlayer, player, opponent)

	if b.X != 40 {
		t.Errorf("X = %v, expected 40", b.X)
	}
	if b.Y != 290 {
		t.Errorf("Y = %v, expected 290", b.Y)
	}
	if b.Velocity.X != BallSpeed || b.Velocity.Y != 0 {
		t.Errorf("Velocity = %+v, expected {%v 0}", b.Velocity, BallSpeed)
	}
}

func TestBallServe(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		r     float64
		wantX float64
	}{
		{"player low draw", SidePlayer, 0.1, 40},
		{"player high draw", SidePlayer, 0.9, 40},
		{"opponent low draw", SideOpponent, 0.25, 640},
		{"opponent zero draw", SideOpponent, 0, 640},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player, opponent := newPaddles()
			b := NewBall(fixedRand(tc.r))

			b.Serve(tc.side, player, opponent)

			angle := 0.1 * math.Pi * (1 - 2*tc.r)
			wantVX := float64(tc.side) * BallSpeed * math.Cos(angle)
			wantVY := BallSpeed * math.Sin(angle)

			if b.X != tc.wantX {
				t.Errorf("X = %v, expected %v", b.X, tc.wantX)
			}
			if !nearly(b.Y, (FieldHeight-BallSide)*tc.r) {
				t.Errorf("Y = %v, expected %v", b.Y, (FieldHeight-BallSide)*tc.r)
			}
			if !nearly(b.Velocity.X, wantVX) || !nearly(b.Velocity.Y, wantVY) {
				t.Errorf("Velocity = %+v, expected {%v %v}", b.Velocity, wantVX, wantVY)
			}
			if !nearly(b.Velocity.Len(), BallSpeed) {
				t.Errorf("|Velocity| = %v, expected %v", b.Velocity.Len(), BallSpeed)
			}
			if math.Abs(angle) > 0.1*math.Pi+eps {
				t.Errorf("serve angle %v exceeds 18 degrees", angle)
			}
		})
	}
}

func TestBallFreeFlightKeepsSpeed(t *testing.T) {
	player, opponent := newPaddles()
	b := NewBall(fixedRand(0.3))
	b.Serve(SidePlayer, player, opponent)

	for i := 0; i < 30; i++ {
		ev := b.Update(player, opponent)
		if ev.Hit != SideNone || ev.Serve != SideNone {
			t.Fatalf("unexpected event in open field: %+v", ev)
		}
		if !nearly(b.Velocity.Len(), BallSpeed) {
			t.Fatalf("|Velocity| = %v, expected %v", b.Velocity.Len(), BallSpeed)
		}
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		wantY  float64
		wantVY float64
	}{
		{"top", 3, -5, 2, 5},
		{"bottom", 578, 5, 577, -5},
		{"exactly at top is no bounce", 5, -5, 0, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player, opponent := newPaddles()
			b := NewBall(fixedRand(0.5))
			b.X = 300
			b.Y = tc.y
			b.Velocity = core.Vec2{X: 0, Y: tc.vy}

			ev := b.Update(player, opponent)

			if b.Y != tc.wantY {
				t.Errorf("Y = %v, expected %v", b.Y, tc.wantY)
			}
			if b.Velocity.Y != tc.wantVY {
				t.Errorf("VY = %v, expected %v", b.Velocity.Y, tc.wantVY)
			}
			if ev.WallBounce != (tc.vy != tc.wantVY) {
				t.Errorf("WallBounce = %v", ev.WallBounce)
			}
			if b.Y < 0 || b.Y+b.Side > FieldHeight {
				t.Errorf("ball left the field vertically: Y = %v", b.Y)
			}
		})
	}
}

func TestBallPaddleReturn(t *testing.T) {
	tests := []struct {
		name      string
		x, y, vx  float64
		wantSide  Side
		wantX     float64
		wantSmash bool
		wantUp    bool // returned upward (VY < 0)
		wantDown  bool // returned downward (VY > 0)
	}{
		{"player center", 45, 290, -BallSpeed, SidePlayer, 40, false, false, false},
		{"player top edge", 45, 236, -BallSpeed, SidePlayer, 40, true, true, false},
		{"player bottom edge", 45, 344, -BallSpeed, SidePlayer, 40, true, false, true},
		{"player mid-upper", 45, 260, -BallSpeed, SidePlayer, 40, false, true, false},
		{"opponent center", 635, 290, BallSpeed, SideOpponent, 640, false, false, false},
		{"opponent top edge", 635, 236, BallSpeed, SideOpponent, 640, true, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player, opponent := newPaddles()
			b := NewBall(fixedRand(0.5))
			b.X, b.Y = tc.x, tc.y
			b.Velocity = core.Vec2{X: tc.vx, Y: 0}

			ev := b.Update(player, opponent)

			if ev.Hit != tc.wantSide {
				t.Fatalf("Hit = %v, expected %v", ev.Hit, tc.wantSide)
			}
			if ev.Smash != tc.wantSmash {
				t.Errorf("Smash = %v, expected %v", ev.Smash, tc.wantSmash)
			}
			if b.X != tc.wantX {
				t.Errorf("X = %v, expected flush at %v", b.X, tc.wantX)
			}

			wantSpeed := float64(BallSpeed)
			if tc.wantSmash {
				wantSpeed *= SmashBoost
			}
			if !nearly(b.Velocity.Len(), wantSpeed) {
				t.Errorf("|Velocity| = %v, expected %v", b.Velocity.Len(), wantSpeed)
			}

			// Returned toward the other side
			if math.Signbit(b.Velocity.X) == math.Signbit(tc.vx) {
				t.Errorf("VX = %v, expected reversed from %v", b.Velocity.X, tc.vx)
			}
			if tc.wantUp && b.Velocity.Y >= 0 {
				t.Errorf("VY = %v, expected upward", b.Velocity.Y)
			}
			if tc.wantDown && b.Velocity.Y <= 0 {
				t.Errorf("VY = %v, expected downward", b.Velocity.Y)
			}
			if !tc.wantUp && !tc.wantDown && b.Velocity.Y != 0 {
				t.Errorf("VY = %v, expected straight return", b.Velocity.Y)
			}
		})
	}
}

func TestBallReturnAngle(t *testing.T) {
	player, opponent := newPaddles()
	b := NewBall(fixedRand(0.5))
	b.X, b.Y = 45, 236
	b.Velocity = core.Vec2{X: -BallSpeed, Y: 0}

	b.Update(player, opponent)

	// contact = (236 + 20 - 250) / 120 = 0.05
	angle := 0.25 * math.Pi * (2*0.05 - 1)
	want := core.FromAngle(angle, BallSpeed*SmashBoost)
	if !nearly(b.Velocity.X, want.X) || !nearly(b.Velocity.Y, want.Y) {
		t.Errorf("Velocity = %+v, expected %+v", b.Velocity, want)
	}
}

func TestBallIgnoresPaddleBehindIt(t *testing.T) {
	player, opponent := newPaddles()
	b := NewBall(fixedRand(0.5))
	// Overlapping the player paddle but moving away from it
	b.X, b.Y = 25, 290
	b.Velocity = core.Vec2{X: BallSpeed, Y: 0}

	ev := b.Update(player, opponent)

	if ev.Hit != SideNone {
		t.Errorf("Hit = %v, expected none", ev.Hit)
	}
	if b.X != 32 {
		t.Errorf("X = %v, expected 32", b.X)
	}
}

func TestBallScoring(t *testing.T) {
	tests := []struct {
		name      string
		x, y, vx  float64
		wantServe Side
		wantX     float64
	}{
		{"exits left, player serves", -15, 500, -BallSpeed, SidePlayer, 40},
		{"exits right, opponent serves", 695, 50, BallSpeed, SideOpponent, 640},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player, opponent := newPaddles()
			b := NewBall(fixedRand(0.5))
			b.X, b.Y = tc.x, tc.y
			b.Velocity = core.Vec2{X: tc.vx, Y: 0}

			ev := b.Update(player, opponent)

			if ev.Serve != tc.wantServe {
				t.Fatalf("Serve = %v, expected %v", ev.Serve, tc.wantServe)
			}
			if b.X != tc.wantX {
				t.Errorf("X = %v, expected %v", b.X, tc.wantX)
			}
			if b.Y != 290 {
				t.Errorf("Y = %v, expected 290", b.Y)
			}
			if b.Velocity.X != float64(tc.wantServe)*BallSpeed || b.Velocity.Y != 0 {
				t.Errorf("Velocity = %+v, expected a level serve from %v", b.Velocity, tc.wantServe)
			}
		})
	}
}

func TestBallStillInPlayAtEdge(t *testing.T) {
	player, opponent := newPaddles()
	b := NewBall(fixedRand(0.5))
	// Right edge lands exactly on x=0: not yet out
	b.X, b.Y = -13, 500
	b.Velocity = core.Vec2{X: -BallSpeed, Y: 0}

	ev := b.Update(player, opponent)

	if ev.Serve != SideNone {
		t.Errorf("Serve = %v, expected ball still in play", ev.Serve)
	}
}
