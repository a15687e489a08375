package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Surface is a paint target in logical field units.
// core.Canvas (terminal cells) and the desktop host's image wrapper implement it.
type Surface interface {
	Clear(bg core.Color)
	FillRect(x, y, w, h float64, c core.Color)
	FillCircle(x, y, r float64, c core.Color)
}

// Theme holds the two colors the game is drawn with.
type Theme struct {
	Background core.Color
	Foreground core.Color
}

// DefaultTheme is white on black.
func DefaultTheme() Theme {
	return Theme{Background: core.ColorBlack, Foreground: core.ColorWhite}
}

// Net settings
const (
	NetWidth    = 4
	NetSegments = 20
)

// Render repaints the whole field: background, ball, paddles, then the net.
// It only reads the world.
func Render(dst Surface, w *World, theme Theme) {
	dst.Clear(theme.Background)

	w.Ball.Draw(dst, theme.Foreground)
	w.Player.Draw(dst, theme.Foreground)
	w.Opponent.Draw(dst, theme.Foreground)

	drawNet(dst, theme.Foreground)
}

// drawNet paints a dashed line down the middle: one bar per segment,
// covering the middle half of it.
func drawNet(dst Surface, c core.Color) {
	x := (FieldWidth - NetWidth) * 0.5
	step := float64(FieldHeight) / NetSegments
	for y := 0.0; y < FieldHeight; y += step {
		dst.FillRect(x, y+step*0.25, NetWidth, step*0.5, c)
	}
}
