package parallax

import "fmt"

// NewFox builds the fox character: a looping running strip and a one-shot
// jumping strip cut from the same sheet, both drawn at (cfg.X, cfg.Y).
// Pressing jumpKey while running starts a jump; the fox lands when the
// jumping strip completes.
func NewFox(src TextureSource, cfg FoxConfig, jumpKey Key) (*Character, error) {
	sheet := src.Texture(cfg.Sheet)

	running, err := stripAnimation(sheet, cfg, cfg.Running)
	if err != nil {
		return nil, fmt.Errorf("fox running: %w", err)
	}
	jumping, err := stripAnimation(sheet, cfg, cfg.Jumping)
	if err != nil {
		return nil, fmt.Errorf("fox jumping: %w", err)
	}

	// Each state owns its own sprite; the vector is a value so the two
	// sprites never share motion state.
	start := Zero(cfg.X, cfg.Y)
	run := NewRunningState(NewSprite(start, running, cfg.Scale))
	run.JumpKey = jumpKey
	jump := NewJumpingState(NewSprite(start, jumping, cfg.Scale))

	initial := cfg.Initial
	if initial == "" {
		initial = StateRunning
	}
	return NewCharacter("fox", initial, map[string]State{
		StateRunning: run,
		StateJumping: jump,
	})
}

func stripAnimation(sheet Texture, cfg FoxConfig, strip AnimationStrip) (*Animation, error) {
	frames := make([]Frame, 0, strip.Frames)
	for i := 0; i < strip.Frames; i++ {
		f, err := NewFrame(sheet, Rect{
			X:      float64(i) * cfg.FrameW,
			Y:      strip.Row,
			Width:  cfg.FrameW,
			Height: cfg.FrameH,
		})
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return NewAnimation(strip.Hold, frames...)
}
