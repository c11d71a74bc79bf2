package parallax

import "fmt"

// Animation is a looping sequence of frames, each held for Hold ticks.
//
// Render draws the current frame and counts one tick; Step, called once per
// tick after Render, advances the frame index whenever the tick count is a
// multiple of the hold and reports CycleCompleted when the index wraps.
//
// The tick count is stored reduced modulo the hold, so it never overflows
// in long sessions while advancing on exactly the same ticks.
type Animation struct {
	frames     []Frame
	frameIndex int
	hold       int
	phase      int
}

// NewAnimation returns an animation over frames starting at frame 0.
func NewAnimation(hold int, frames ...Frame) (*Animation, error) {
	if hold <= 0 {
		return nil, fmt.Errorf("%w: animation hold %d", ErrInvalidConfig, hold)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: animation has no frames", ErrInvalidConfig)
	}
	return &Animation{frames: frames, hold: hold}, nil
}

// EmptyAnimation returns an animation with no frames. Render and Step are
// no-ops and a cycle never completes.
func EmptyAnimation() *Animation {
	return &Animation{hold: 1}
}

// FrameIndex returns the index of the frame drawn by the next Render.
func (a *Animation) FrameIndex() int { return a.frameIndex }

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.frames) }

// Hold returns the number of ticks each frame stays visible.
func (a *Animation) Hold() int { return a.hold }

// Frame returns the frame at index i.
func (a *Animation) Frame(i int) Frame { return a.frames[i] }

// Reset rewinds to the first frame and clears the tick count.
func (a *Animation) Reset() {
	a.frameIndex = 0
	a.phase = 0
}

// Render draws the current frame at v and counts one tick.
func (a *Animation) Render(dst Surface, scale float64, v Vector) {
	if len(a.frames) == 0 {
		return
	}
	a.frames[a.frameIndex].Render(dst, scale, v)
	a.phase = (a.phase + 1) % a.hold
}

// Step advances the frame index if the current frame has been held long
// enough.
func (a *Animation) Step() StepResult {
	if len(a.frames) == 0 || a.phase != 0 {
		return Continue
	}
	a.frameIndex++
	if a.frameIndex == len(a.frames) {
		a.frameIndex = 0
		return CycleCompleted
	}
	return Continue
}
