package parallax

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	renderTime time.Duration
	draws      int
	skipped    int
	fills      int
	keys       int
}

// debugLog prints the stats of one tick to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[parallax] tick %d | render: %v | draws: %d | skipped: %d | fills: %d | keys: %d\n",
		s.tick, stats.renderTime, stats.draws, stats.skipped, stats.fills, stats.keys)
}

// countingSurface forwards to Surface and counts calls. Draws of textures
// that are not ready are counted as skipped.
type countingSurface struct {
	Surface
	stats *debugStats
}

func (c *countingSurface) DrawImage(tex Texture, src, dst Rect) {
	if tex == nil || !tex.Ready() {
		c.stats.skipped++
	} else {
		c.stats.draws++
	}
	c.Surface.DrawImage(tex, src, dst)
}

func (c *countingSurface) FillRect(dst Rect, col Color) {
	c.stats.fills++
	c.Surface.FillRect(dst, col)
}
