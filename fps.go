package parallax

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshTicks is how often the FPS overlay text is redrawn.
const fpsRefreshTicks = 30

// fpsOverlay displays the current FPS and TPS in the top-left corner. The
// text is refreshed every fpsRefreshTicks ticks into its own image.
type fpsOverlay struct {
	img   *ebiten.Image
	ticks int
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.ticks%fpsRefreshTicks == 0 {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	o.ticks++
	screen.DrawImage(o.img, nil)
}
