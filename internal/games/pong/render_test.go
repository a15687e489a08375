package pong

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// recorder is a Surface that logs every paint call.
type recorder struct {
	ops []string
}

func (r *recorder) Clear(bg core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("clear %v", bg))
}

func (r *recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %g,%g %gx%g %v", x, y, w, h, c))
}

func (r *recorder) FillCircle(x, y, radius float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("circle %g,%g r%g %v", x, y, radius, c))
}

func TestRenderOrder(t *testing.T) {
	w := NewWorld(fixedRand(0.5), nil)
	rec := &recorder{}

	Render(rec, w, DefaultTheme())

	wantHead := []string{
		"clear black",
		"circle 40,290 r10 white",
		"rect 20,250 20x100 white",
		"rect 660,250 20x100 white",
		"rect 348,7.5 4x15 white",
		"rect 348,37.5 4x15 white",
	}
	if len(rec.ops) != 4+NetSegments {
		t.Fatalf("got %d paint calls, expected %d", len(rec.ops), 4+NetSegments)
	}
	if !reflect.DeepEqual(rec.ops[:len(wantHead)], wantHead) {
		t.Errorf("paint calls = %q, expected to start with %q", rec.ops[:len(wantHead)], wantHead)
	}
	if last := rec.ops[len(rec.ops)-1]; last != "rect 348,577.5 4x15 white" {
		t.Errorf("last net bar = %q", last)
	}
}

func TestRenderTheme(t *testing.T) {
	w := NewWorld(fixedRand(0.5), nil)
	rec := &recorder{}

	Render(rec, w, Theme{Background: core.ColorBlue, Foreground: core.ColorYellow})

	if rec.ops[0] != "clear blue" {
		t.Errorf("first call = %q, expected clear blue", rec.ops[0])
	}
	if rec.ops[1] != "circle 40,290 r10 yellow" {
		t.Errorf("ball call = %q, expected yellow", rec.ops[1])
	}
}

func TestRenderIdempotent(t *testing.T) {
	w := NewSeededWorld(42, nil)
	core.NewClock(60).Run(w, 37)

	before := *w.Ball
	first := &recorder{}
	second := &recorder{}
	w.Draw(first, DefaultTheme())
	w.Draw(second, DefaultTheme())

	if !reflect.DeepEqual(first.ops, second.ops) {
		t.Error("drawing twice without an update produced different output")
	}
	if *w.Ball != before {
		t.Error("drawing mutated the ball")
	}

	// Same through the cell canvas
	s1 := core.NewScreen(80, 24)
	s2 := core.NewScreen(80, 24)
	w.Draw(core.NewCanvas(s1, FieldWidth, FieldHeight), DefaultTheme())
	w.Draw(core.NewCanvas(s2, FieldWidth, FieldHeight), DefaultTheme())
	if s1.String() != s2.String() {
		t.Error("canvas output differs between draws")
	}
}

func TestRenderOnCanvas(t *testing.T) {
	w := NewWorld(fixedRand(0.5), nil)
	s := core.NewScreen(70, 60)

	w.Draw(core.NewCanvas(s, FieldWidth, FieldHeight), DefaultTheme())

	// Player paddle covers columns 2-3, rows 25-34
	if s.Get(2, 30) != core.FillRune || s.Get(3, 30) != core.FillRune {
		t.Error("player paddle missing")
	}
	// Opponent paddle covers columns 66-67
	if s.Get(66, 30) != core.FillRune {
		t.Error("opponent paddle missing")
	}
	// Ball centered on (40, 290) -> cell (4, 29)
	if s.Get(4, 29) != core.CircleRune {
		t.Errorf("ball missing, got %q", s.Get(4, 29))
	}
	// Net: first bar lands on row 1 in column 35, gap at row 0
	if s.Get(35, 1) != core.FillRune {
		t.Errorf("net bar missing, got %q", s.Get(35, 1))
	}
	if s.Get(35, 0) != ' ' {
		t.Errorf("net gap missing, got %q", s.Get(35, 0))
	}
	if s.GetCell(0, 0).Bg != core.ColorBlack {
		t.Error("background not cleared to black")
	}
}
