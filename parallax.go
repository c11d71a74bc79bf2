package parallax

import (
	"errors"
	"image/color"
)

// Sentinel errors. Callers match them with errors.Is; the returned errors
// wrap them with the offending value.
var (
	// ErrInvalidConfig reports a degenerate construction parameter such as a
	// non-positive hold, an empty frame list or a non-positive canvas width.
	ErrInvalidConfig = errors.New("parallax: invalid configuration")

	// ErrUnknownState reports a transition to a state name the character
	// was not built with.
	ErrUnknownState = errors.New("parallax: unknown character state")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default fade overlay color.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA returns the premultiplied 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Key is a host-neutral key code. Values follow DOM keyCode numbering so
// scripts and configuration can name keys by number.
type Key int

const (
	KeyEnter  Key = 13
	KeyEscape Key = 27
	KeySpace  Key = 32
	KeyLeft   Key = 37
	KeyUp     Key = 38
	KeyRight  Key = 39
	KeyDown   Key = 40
)

// StepResult is the signal returned by Animation.Step.
type StepResult uint8

const (
	Continue       StepResult = iota // frame index did not wrap
	CycleCompleted                   // frame index wrapped back to 0 this tick
)

// Entity is anything the scene can render once per tick and forward key
// presses to. Sprite, CompositeSprite and Character implement it.
type Entity interface {
	Render(dst Surface) error
	HandleKeydown(key Key) error
}
