package parallax

import (
	"errors"
	"testing"
)

func TestNewFoxStrips(t *testing.T) {
	src := newStubSource()
	cfg := DefaultConfig().Fox
	fox, err := NewFox(src, cfg, KeySpace)
	if err != nil {
		t.Fatal(err)
	}
	if fox.CurrentState() != StateRunning {
		t.Errorf("initial state = %q", fox.CurrentState())
	}
	run := foxAnimation(t, fox, StateRunning)
	for i := 0; i < run.Len(); i++ {
		f := run.Frame(i)
		if f.Source != (Rect{X: float64(i) * 32, Y: 72, Width: 32, Height: 32}) {
			t.Errorf("running frame %d = %v", i, f.Source)
		}
		if f.Texture != src.textures[cfg.Sheet] {
			t.Errorf("running frame %d texture mismatch", i)
		}
	}
	jump := foxAnimation(t, fox, StateJumping)
	if last := jump.Frame(jump.Len() - 1).Source; last.X != 256 || last.Y != 104 {
		t.Errorf("last jumping frame = %v", last)
	}
}

func TestNewFoxSpritesDoNotShareMotion(t *testing.T) {
	fox := newTestFox(t)
	rs, _ := fox.State(StateRunning)
	js, _ := fox.State(StateJumping)
	runSprite := rs.(*RunningState).Sprite
	jumpSprite := js.(*JumpingState).Sprite
	if runSprite == jumpSprite || runSprite.Animation == jumpSprite.Animation {
		t.Fatal("states share a sprite or animation")
	}
	runSprite.Vector = runSprite.Vector.Offset(10, 0)
	if jumpSprite.Vector.X() != 400 {
		t.Errorf("jump sprite moved with running sprite: x = %v", jumpSprite.Vector.X())
	}
}

func TestNewFoxCustomJumpKey(t *testing.T) {
	fox, err := NewFox(newStubSource(), DefaultConfig().Fox, KeyUp)
	if err != nil {
		t.Fatal(err)
	}
	if err := fox.HandleKeydown(KeySpace); err != nil {
		t.Fatal(err)
	}
	if fox.CurrentState() != StateRunning {
		t.Error("space jumped with a custom jump key")
	}
	if err := fox.HandleKeydown(KeyUp); err != nil {
		t.Fatal(err)
	}
	if fox.CurrentState() != StateJumping {
		t.Error("custom jump key ignored")
	}
}

func TestNewFoxInvalid(t *testing.T) {
	cfg := DefaultConfig().Fox
	cfg.Jumping.Hold = 0
	if _, err := NewFox(newStubSource(), cfg, KeySpace); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	cfg = DefaultConfig().Fox
	cfg.Initial = "sleeping"
	if _, err := NewFox(newStubSource(), cfg, KeySpace); !errors.Is(err, ErrUnknownState) {
		t.Errorf("err = %v, want ErrUnknownState", err)
	}
}
