package parallax

import "fmt"

// Frame is a renderable region of a texture. Frames are values and never
// change after construction; timing lives in Animation.
type Frame struct {
	Texture Texture
	Source  Rect

	tiling  bool
	canvasW float64
	canvasH float64
}

// NewFrame returns a frame drawing the src region of tex.
func NewFrame(tex Texture, src Rect) (Frame, error) {
	if src.Width <= 0 || src.Height <= 0 {
		return Frame{}, fmt.Errorf("%w: frame source %vx%v", ErrInvalidConfig, src.Width, src.Height)
	}
	return Frame{Texture: tex, Source: src}, nil
}

// NewTilingFrame returns a frame that also draws a wrap-around copy of
// itself whenever its position reaches either horizontal edge of a canvas
// of the given size, so a scrolling layer never shows a gap.
func NewTilingFrame(tex Texture, src Rect, canvasW, canvasH float64) (Frame, error) {
	f, err := NewFrame(tex, src)
	if err != nil {
		return Frame{}, err
	}
	if canvasW <= 0 {
		return Frame{}, fmt.Errorf("%w: tiling canvas width %v", ErrInvalidConfig, canvasW)
	}
	f.tiling = true
	f.canvasW = canvasW
	f.canvasH = canvasH
	return f, nil
}

// Tiling reports whether f draws wrap-around copies.
func (f Frame) Tiling() bool { return f.tiling }

// Render draws the frame at v's position, scaled by scale in both axes.
func (f Frame) Render(dst Surface, scale float64, v Vector) {
	f.draw(dst, scale, v.X(), v.Y())
	if !f.tiling {
		return
	}
	// The two checks are independent.
	if v.X() <= 0 {
		f.draw(dst, scale, v.X()+f.Source.Width, v.Y())
	}
	if v.X() >= f.canvasW {
		f.draw(dst, scale, v.X()-f.Source.Width, v.Y())
	}
}

func (f Frame) draw(dst Surface, scale, x, y float64) {
	dst.DrawImage(f.Texture, f.Source, Rect{
		X:      x,
		Y:      y,
		Width:  f.Source.Width * scale,
		Height: f.Source.Height * scale,
	})
}
