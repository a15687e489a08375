// Package config provides YAML-based configuration loading for the pong hosts.
// Nothing here changes gameplay: only timing, colors, host behavior and logging.
package config

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Config contains all configuration for the game hosts.
type Config struct {
	Loop     LoopConfig     `yaml:"loop"`
	Theme    ThemeConfig    `yaml:"theme"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
}

// LoopConfig defines frame timing and randomness.
type LoopConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = time based
}

// ThemeConfig names the two colors the field is painted with.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// TerminalConfig tunes held-key emulation for the terminal host.
type TerminalConfig struct {
	InitialHoldMS int `yaml:"initial_hold_ms"`
	RepeatHoldMS  int `yaml:"repeat_hold_ms"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Scale float64 `yaml:"scale"` // Window pixels per field unit
	Title string  `yaml:"title"`
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr (window/sim) or discarded (terminal)
}

// ResolveTheme resolves the configured color names.
// Call Validate first; unknown names fall back to the default theme colors.
func (c Config) ResolveTheme() pong.Theme {
	theme := pong.DefaultTheme()
	if bg, err := core.ParseColor(c.Theme.Background); err == nil {
		theme.Background = bg
	}
	if fg, err := core.ParseColor(c.Theme.Foreground); err == nil {
		theme.Foreground = fg
	}
	return theme
}

// InitialHold returns the terminal hold window after a first key press.
func (c TerminalConfig) InitialHold() time.Duration {
	return time.Duration(c.InitialHoldMS) * time.Millisecond
}

// RepeatHold returns the terminal hold window after an auto-repeated press.
func (c TerminalConfig) RepeatHold() time.Duration {
	return time.Duration(c.RepeatHoldMS) * time.Millisecond
}

// Runtime builds the core runtime config for a host of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.Loop.TickRate,
		Seed:     c.Loop.Seed,
	}
}
