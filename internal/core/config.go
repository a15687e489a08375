package core

// RuntimeConfig contains configuration passed to a host at startup.
// Hosts use this to size their output and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Output width in cells (terminal) or pixels (window)
	ScreenH  int   // Output height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
