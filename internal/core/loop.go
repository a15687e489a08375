package core

import "time"

// FrameContext describes the frame being simulated.
type FrameContext struct {
	Frame uint64        // Frames completed before this one
	Delta time.Duration // Nominal time covered by one frame
}

// Stepper is anything driven one frame at a time by a loop.
// Hosts (Bubble Tea ticks, Ebiten updates) and test clocks all call Step.
type Stepper interface {
	Step(ctx FrameContext)
}

// StepFunc adapts a plain function to the Stepper interface.
type StepFunc func(ctx FrameContext)

// Step calls f(ctx).
func (f StepFunc) Step(ctx FrameContext) {
	f(ctx)
}

// Clock hands out consecutive frame contexts at a fixed nominal rate.
// It never sleeps: real hosts decide when to call Next, tests call it in a loop.
type Clock struct {
	rate  uint64
	delta time.Duration
	frame uint64
}

// NewClock creates a clock for the given tick rate.
// Non-positive rates fall back to 60.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{
		rate:  uint64(tickRate),
		delta: time.Second / time.Duration(tickRate),
	}
}

// Next returns the context for the next frame and advances the clock.
func (c *Clock) Next() FrameContext {
	ctx := FrameContext{Frame: c.frame, Delta: c.delta}
	c.frame++
	return ctx
}

// Frame returns the number of frames handed out so far.
func (c *Clock) Frame() uint64 {
	return c.frame
}

// Elapsed returns the virtual time covered by the frames handed out so far.
// It is exact at the tick rate, not a sum of the truncated per-frame Delta.
func (c *Clock) Elapsed() time.Duration {
	secs, rem := c.frame/c.rate, c.frame%c.rate
	return time.Duration(secs)*time.Second + time.Duration(rem)*time.Second/time.Duration(c.rate)
}

// Run steps s for n frames on the clock.
func (c *Clock) Run(s Stepper, n int) {
	for i := 0; i < n; i++ {
		s.Step(c.Next())
	}
}
