package parallax

import (
	"fmt"
	"path/filepath"
)

// TextureSource resolves an asset path to a texture.
type TextureSource interface {
	Texture(path string) Texture
}

// NewBackground builds the parallax background: one sprite per layer, each
// with a scrolling vector of horizontal speed SpeedStep*index and a single
// tiling frame as wide as the canvas. With a negative SpeedStep, layer 0 is
// static and each following layer scrolls faster.
func NewBackground(src TextureSource, cfg BackgroundConfig, width, height float64) (*CompositeSprite, error) {
	bg := NewCompositeSprite()
	for i, path := range cfg.Layers {
		frame, err := NewTilingFrame(src.Texture(path),
			Rect{X: 0, Y: cfg.SourceY, Width: width, Height: height}, width, height)
		if err != nil {
			return nil, fmt.Errorf("background layer %d (%s): %w", i, filepath.Base(path), err)
		}
		anim, err := NewAnimation(cfg.Hold, frame)
		if err != nil {
			return nil, fmt.Errorf("background layer %d (%s): %w", i, filepath.Base(path), err)
		}
		v := Scrolling(0, 0, cfg.SpeedStep*float64(i), 0, width, height)
		bg.Add(NewSprite(v, anim, cfg.Scale))
	}
	return bg, nil
}
