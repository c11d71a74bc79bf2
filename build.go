package parallax

import "fmt"

// BuildScene assembles the configured scene: the parallax background first,
// then the fox, so the character is drawn over every layer.
func BuildScene(cfg *Config, src TextureSource, input <-chan Key) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)

	bg, err := NewBackground(src, cfg.Background, w, h)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	fox, err := NewFox(src, cfg.Fox, cfg.JumpKey)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	scene := NewScene(input, bg, fox)
	scene.Bounds = Rect{Width: w, Height: h}
	scene.Keys = []Key{cfg.JumpKey}
	if cfg.FadeTicks > 0 {
		scene.SetFade(FadeIn(ColorBlack, cfg.FadeTicks))
	}
	scene.SetDebugMode(cfg.Debug)
	return scene, nil
}
