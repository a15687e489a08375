package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// imageSurface paints field units straight onto an ebiten image.
// Layout makes the image the size of the field, so no scaling happens here.
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) Clear(bg core.Color) {
	s.dst.Fill(bg.ToRGBA())
}

func (s imageSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.ToRGBA(), false)
}

func (s imageSurface) FillCircle(x, y, r float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c.ToRGBA(), true)
}

var _ pong.Surface = imageSurface{}
