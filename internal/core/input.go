package core

// Key identifies a physical key as reported by a host, normalized to the
// Bubble Tea key name ("up", "down", "enter", "q", ...).
type Key string

// Keys consulted by the platform layers.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyEnter Key = "enter"
	KeySpace Key = " "
	KeyEsc   Key = "esc"
	KeyQuit  Key = "q"
)

// InputState tracks which keys are currently held.
// Hosts mutate it from key events between frames; games only read it.
type InputState struct {
	held map[Key]bool
}

// NewInputState creates an input state with nothing held.
func NewInputState() *InputState {
	return &InputState{held: make(map[Key]bool)}
}

// Press marks a key as held.
func (s *InputState) Press(k Key) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Release clears a held key.
func (s *InputState) Release(k Key) {
	delete(s.held, k)
}

// IsHeld returns true if the key is currently held.
// A nil state reports nothing held.
func (s *InputState) IsHeld(k Key) bool {
	if s == nil {
		return false
	}
	return s.held[k]
}

// Reset releases every key.
func (s *InputState) Reset() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Set presses or releases k. Hosts that poll key state each frame use it
// instead of pairing Press and Release.
func (s *InputState) Set(k Key, held bool) {
	if held {
		s.Press(k)
		return
	}
	s.Release(k)
}
