package parallax

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and host glue used by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// Input receives the codes of keys pressed each tick. It should be the
	// channel the scene was created with.
	Input chan<- Key

	// Music, if set, is toggled by a left click on the window.
	Music *Music
}

// game adapts a Scene to ebiten.Game. Input is polled in Update; the scene
// renders once per Draw, i.e. once per displayed frame.
type game struct {
	scene *Scene
	cfg   RunConfig
	fps   *fpsOverlay
	keys  []ebiten.Key
	err   error
}

// Run opens a window and drives scene until the window is closed or a
// render fails.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("parallax: run: window size must be positive")
	}
	if scene.Bounds == (Rect{}) {
		scene.Bounds = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}
	g := &game{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.cfg.Input != nil {
		g.keys = pollKeys(g.cfg.Input, g.keys)
	}
	if g.cfg.Music != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.cfg.Music.Toggle()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	surf := NewEbitenSurface(screen)
	if err := g.scene.Render(surf); err != nil {
		g.err = err
		return
	}
	g.scene.flushScreenshots(surf)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
