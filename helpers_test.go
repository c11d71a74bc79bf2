package parallax

import "testing"

// stubTexture is a named texture whose readiness is fixed.
type stubTexture struct {
	name  string
	ready bool
}

func (t *stubTexture) Ready() bool { return t.ready }

func newStub(name string) *stubTexture { return &stubTexture{name: name, ready: true} }

// drawCall is one recorded DrawImage call.
type drawCall struct {
	tex      Texture
	src, dst Rect
}

// fillCall is one recorded FillRect call.
type fillCall struct {
	dst Rect
	c   Color
}

// recordingSurface records every call in order.
type recordingSurface struct {
	draws []drawCall
	fills []fillCall
}

func (s *recordingSurface) DrawImage(tex Texture, src, dst Rect) {
	s.draws = append(s.draws, drawCall{tex: tex, src: src, dst: dst})
}

func (s *recordingSurface) FillRect(dst Rect, c Color) {
	s.fills = append(s.fills, fillCall{dst: dst, c: c})
}

func (s *recordingSurface) reset() {
	s.draws = s.draws[:0]
	s.fills = s.fills[:0]
}

// stubSource hands out one stub texture per path.
type stubSource struct {
	textures map[string]*stubTexture
}

func newStubSource() *stubSource {
	return &stubSource{textures: make(map[string]*stubTexture)}
}

func (s *stubSource) Texture(path string) Texture {
	t, ok := s.textures[path]
	if !ok {
		t = newStub(path)
		s.textures[path] = t
	}
	return t
}

// stripFrames returns n 32x32 frames of tex along row y.
func stripFrames(t *testing.T, tex Texture, y float64, n int) []Frame {
	t.Helper()
	frames := make([]Frame, n)
	for i := range frames {
		f, err := NewFrame(tex, Rect{X: float64(i) * 32, Y: y, Width: 32, Height: 32})
		if err != nil {
			t.Fatalf("NewFrame: %v", err)
		}
		frames[i] = f
	}
	return frames
}

// mustAnimation builds an animation or fails the test.
func mustAnimation(t *testing.T, hold int, frames ...Frame) *Animation {
	t.Helper()
	a, err := NewAnimation(hold, frames...)
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}
	return a
}

// newTestFox builds a fox with an 8-frame running strip and a 9-frame
// jumping strip, both held for 5 ticks.
func newTestFox(t *testing.T) *Character {
	t.Helper()
	fox, err := NewFox(newStubSource(), DefaultConfig().Fox, KeySpace)
	if err != nil {
		t.Fatalf("NewFox: %v", err)
	}
	return fox
}

// foxAnimation returns the animation of the fox's named state.
func foxAnimation(t *testing.T, c *Character, name string) *Animation {
	t.Helper()
	st, ok := c.State(name)
	if !ok {
		t.Fatalf("state %q missing", name)
	}
	switch s := st.(type) {
	case *RunningState:
		return s.Sprite.Animation
	case *JumpingState:
		return s.Sprite.Animation
	}
	t.Fatalf("state %q has unexpected type %T", name, st)
	return nil
}
