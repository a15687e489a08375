package core

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"black", ColorBlack, false},
		{"White", ColorWhite, false},
		{" bright-cyan ", ColorBrightCyan, false},
		{"default", ColorDefault, false},
		{"mauve", ColorDefault, true},
		{"", ColorDefault, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorBrightWhite; c++ {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v", c.String(), got, err, c)
		}
	}
	if got := Color(200).String(); got != "Color(200)" {
		t.Errorf("Color(200).String() = %q, expected %q", got, "Color(200)")
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		c        Color
		expected color.RGBA
	}{
		{ColorBlack, color.RGBA{0, 0, 0, 0xff}},
		{ColorBrightWhite, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{ColorDefault, color.RGBA{0, 0, 0, 0xff}},
		{Color(200), color.RGBA{0, 0, 0, 0xff}},
	}

	for _, tc := range tests {
		if got := tc.c.ToRGBA(); got != tc.expected {
			t.Errorf("%v.ToRGBA() = %v, expected %v", tc.c, got, tc.expected)
		}
	}

	for c := ColorBlack; c <= ColorBrightWhite; c++ {
		if c.ToRGBA().A != 0xff {
			t.Errorf("%v.ToRGBA() is not opaque", c)
		}
	}
}
