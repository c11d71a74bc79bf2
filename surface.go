package parallax

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Texture is an opaque image handle. A texture that is not Ready is skipped
// by every Surface without error.
type Texture interface {
	Ready() bool
}

// Surface is the drawing target handed down through every Render call.
type Surface interface {
	// DrawImage blits the src rectangle of tex, scaled into dst.
	DrawImage(tex Texture, src, dst Rect)
	// FillRect fills dst with c.
	FillRect(dst Rect, c Color)
}

// ImageTexture is a Texture backed by an Ebitengine image. A nil Image is
// not ready.
type ImageTexture struct {
	Image *ebiten.Image
}

// Ready reports whether the image has been loaded.
func (t *ImageTexture) Ready() bool {
	return t != nil && t.Image != nil
}

// EbitenSurface draws onto an Ebitengine image, typically the screen passed
// to Game.Draw.
type EbitenSurface struct {
	Target *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewEbitenSurface wraps target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Target: target}
}

// DrawImage implements Surface. Textures that are not *ImageTexture or are
// not ready are ignored.
func (s *EbitenSurface) DrawImage(tex Texture, src, dst Rect) {
	it, ok := tex.(*ImageTexture)
	if !ok || !it.Ready() || src.Width <= 0 || src.Height <= 0 {
		return
	}
	sub := it.Image.SubImage(src.imageRect()).(*ebiten.Image)

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(dst.Width/src.Width, dst.Height/src.Height)
	s.op.GeoM.Translate(dst.X, dst.Y)
	s.op.Filter = ebiten.FilterNearest
	s.Target.DrawImage(sub, &s.op)
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(dst Rect, c Color) {
	if c.A <= 0 {
		return
	}
	vector.DrawFilledRect(s.Target, float32(dst.X), float32(dst.Y),
		float32(dst.Width), float32(dst.Height), c.RGBA(), false)
}

// Capture returns a copy of the target's pixels. Ebitengine keeps
// premultiplied RGBA, the layout of image.RGBA.
func (s *EbitenSurface) Capture() image.Image {
	b := s.Target.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s.Target.ReadPixels(img.Pix)
	return img
}

func (r Rect) imageRect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}
