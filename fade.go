package parallax

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade is a full-canvas color overlay whose alpha is tweened once, one unit
// of time per tick. A fade from 1 to 0 reveals the scene.
//
// There is no global tween manager; the scene updates its fade each tick.
type Fade struct {
	Color Color
	Done  bool

	tween *gween.Tween
	alpha float64
}

// NewFade returns a fade from alpha from to alpha to over ticks ticks.
func NewFade(c Color, from, to float64, ticks int, fn ease.TweenFunc) *Fade {
	if ticks <= 0 {
		return &Fade{Color: c, alpha: to, Done: true}
	}
	return &Fade{
		Color: c,
		tween: gween.New(float32(from), float32(to), float32(ticks), fn),
		alpha: from,
	}
}

// FadeIn returns a fade from opaque c to transparent.
func FadeIn(c Color, ticks int) *Fade {
	return NewFade(c, 1, 0, ticks, ease.OutQuad)
}

// Alpha returns the overlay alpha drawn by the next Render.
func (f *Fade) Alpha() float64 { return f.alpha }

// Render fills dst's bounds with the overlay, then advances one tick.
func (f *Fade) Render(dst Surface, bounds Rect) {
	if f.alpha > 0 {
		c := f.Color
		c.A *= f.alpha
		dst.FillRect(bounds, c)
	}
	if f.Done {
		return
	}
	val, finished := f.tween.Update(1)
	f.alpha = float64(val)
	f.Done = finished
}
