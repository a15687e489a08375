package core

import "math"

// Runes used when rasterizing shapes onto cells.
const (
	FillRune   = '█'
	CircleRune = '●'
)

// Canvas rasterizes shapes given in logical field units onto a Screen.
// The whole logical field is stretched over the whole screen, so a 700x600
// field drawn on an 80x24 terminal keeps its proportions per axis.
//
// A cell is painted when its center lies inside the shape. Shapes too thin
// to cover any cell center still paint the single cell under their center,
// so narrow things like the net stay visible at small sizes.
type Canvas struct {
	screen *Screen
	fieldW float64
	fieldH float64
}

// NewCanvas creates a canvas mapping a fieldW x fieldH logical area onto screen.
func NewCanvas(screen *Screen, fieldW, fieldH float64) *Canvas {
	return &Canvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) scale() (float64, float64) {
	return float64(c.screen.Width()) / c.fieldW, float64(c.screen.Height()) / c.fieldH
}

// Clear paints every cell blank with the given background.
func (c *Canvas) Clear(bg Color) {
	c.screen.Fill(Cell{Rune: ' ', Bg: bg})
}

// FillRect paints an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	sx, sy := c.scale()
	x0, x1 := cellSpan(x*sx, (x+w)*sx, c.screen.Width())
	y0, y1 := cellSpan(y*sy, (y+h)*sy, c.screen.Height())
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.Set(cx, cy, FillRune, col)
		}
	}
}

// FillCircle paints a circle of radius r centered on (x, y).
// On non-square cells the circle becomes an ellipse in cell space.
func (c *Canvas) FillCircle(x, y, r float64, col Color) {
	sx, sy := c.scale()
	px, py := x*sx, y*sy
	rx, ry := r*sx, r*sy

	painted := false
	if rx > 0 && ry > 0 {
		x0, x1 := cellSpan(px-rx, px+rx, c.screen.Width())
		y0, y1 := cellSpan(py-ry, py+ry, c.screen.Height())
		for cy := y0; cy < y1; cy++ {
			for cx := x0; cx < x1; cx++ {
				dx := (float64(cx) + 0.5 - px) / rx
				dy := (float64(cy) + 0.5 - py) / ry
				if dx*dx+dy*dy <= 1 {
					c.screen.Set(cx, cy, CircleRune, col)
					painted = true
				}
			}
		}
	}
	if !painted {
		c.screen.Set(int(math.Floor(px)), int(math.Floor(py)), CircleRune, col)
	}
}

// cellSpan returns the half-open range of cells whose centers fall in [a, b),
// clamped to [0, limit]. Degenerate spans widen to the cell under the midpoint.
func cellSpan(a, b float64, limit int) (int, int) {
	lo := int(math.Ceil(a - 0.5))
	hi := int(math.Ceil(b - 0.5))
	if hi <= lo {
		lo = int(math.Floor((a + b) / 2))
		hi = lo + 1
	}
	return Clamp(lo, 0, limit), Clamp(hi, 0, limit)
}
