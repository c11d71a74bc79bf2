package parallax

// Sprite binds one motion vector and one animation at a render scale.
type Sprite struct {
	Vector    Vector
	Animation *Animation
	Scale     float64
}

// NewSprite returns a sprite. A nil animation is replaced by EmptyAnimation.
func NewSprite(v Vector, anim *Animation, scale float64) *Sprite {
	if anim == nil {
		anim = EmptyAnimation()
	}
	return &Sprite{Vector: v, Animation: anim, Scale: scale}
}

// Tick advances the sprite by one tick: the vector moves, the animation
// draws at the new position, then the animation steps. The order is fixed.
func (s *Sprite) Tick(dst Surface) StepResult {
	s.Vector = s.Vector.Move()
	s.Animation.Render(dst, s.Scale, s.Vector)
	return s.Animation.Step()
}

// Render implements Entity. The cycle signal is discarded.
func (s *Sprite) Render(dst Surface) error {
	s.Tick(dst)
	return nil
}

// HandleKeydown implements Entity. Sprites ignore input.
func (s *Sprite) HandleKeydown(Key) error { return nil }
