package parallax

// Transition is returned by a State to ask its character to switch state.
// The zero value means stay.
type Transition struct {
	To string
}

// Stay is the empty transition.
var Stay = Transition{}

// Changes reports whether t names a target state.
func (t Transition) Changes() bool { return t.To != "" }

// State is one named state of a Character. States hold no reference to the
// character; they report the transition they want and the character
// applies it.
type State interface {
	Render(dst Surface) Transition
	HandleKeydown(key Key) Transition
}

// BaseState renders its sprite and ignores input. Embedding it without
// overriding HandleKeydown makes a state uninterruptible.
type BaseState struct {
	Sprite *Sprite
}

// Render draws the sprite for one tick and stays.
func (s *BaseState) Render(dst Surface) Transition {
	s.Sprite.Tick(dst)
	return Stay
}

// HandleKeydown ignores key.
func (s *BaseState) HandleKeydown(Key) Transition { return Stay }

// RunningState loops its animation until the jump key is pressed.
type RunningState struct {
	BaseState
	JumpKey Key
	OnJump  string // target state, "jumping" by default
}

// NewRunningState returns a running state that jumps on KeySpace.
func NewRunningState(sprite *Sprite) *RunningState {
	return &RunningState{
		BaseState: BaseState{Sprite: sprite},
		JumpKey:   KeySpace,
		OnJump:    StateJumping,
	}
}

// HandleKeydown requests the jump state when key is the jump key.
func (s *RunningState) HandleKeydown(key Key) Transition {
	if key == s.JumpKey {
		return Transition{To: s.OnJump}
	}
	return Stay
}

// JumpingState plays its animation once and then returns to OnLand. Input
// is ignored while jumping, so a jump can neither be re-triggered nor
// cancelled mid-air.
type JumpingState struct {
	BaseState
	OnLand string // target state, "running" by default
}

// NewJumpingState returns a jumping state that lands in "running".
func NewJumpingState(sprite *Sprite) *JumpingState {
	return &JumpingState{
		BaseState: BaseState{Sprite: sprite},
		OnLand:    StateRunning,
	}
}

// Render draws the sprite and requests OnLand once the animation completes
// a full cycle.
func (s *JumpingState) Render(dst Surface) Transition {
	if s.Sprite.Tick(dst) == CycleCompleted {
		return Transition{To: s.OnLand}
	}
	return Stay
}
