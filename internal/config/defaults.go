package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the hard-coded default configuration.
// It matches defaults/pong.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Loop: LoopConfig{
			TickRate: 60,
			Seed:     0,
		},
		Theme: ThemeConfig{
			Background: "black",
			Foreground: "white",
		},
		Terminal: TerminalConfig{
			InitialHoldMS: 300,
			RepeatHoldMS:  120,
		},
		Window: WindowConfig{
			Scale: 1.0,
			Title: "Pong",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
