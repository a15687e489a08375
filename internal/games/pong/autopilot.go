package pong

// Autopilot holds the player's move keys so the paddle chases the ball's
// center. It is used by the headless simulation in place of a human.
// The paddle stops within one step of the target to avoid jitter.
func Autopilot(w *World) {
	in := w.Input
	in.Reset()

	_, target := w.Ball.Bounds().Center()
	_, center := w.Player.Bounds().Center()
	switch {
	case target < center-PlayerStep:
		in.Press(MoveUpKey)
	case target > center+PlayerStep:
		in.Press(MoveDownKey)
	}
}
