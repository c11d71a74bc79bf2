package parallax

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// capturer is a Surface that can return what has been drawn on it.
type capturer interface {
	Capture() image.Image
}

// ScreenshotInfo is written as YAML next to every screenshot PNG.
type ScreenshotInfo struct {
	Label string `yaml:"label"`
	// Tick is the scene tick count once the captured frame was rendered.
	Tick       uint64          `yaml:"tick"`
	Characters []CharacterInfo `yaml:"characters,omitempty"`
}

// CharacterInfo records one character's state at capture time.
type CharacterInfo struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	State string `yaml:"state"`
}

// Screenshot queues a labeled capture of the next rendered frame. The host
// writes <stamp>_t<tick>_<label>.png and a matching .yaml to ScreenshotDir.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// screenshotInfo describes the scene as it is now.
func (s *Scene) screenshotInfo(label string) ScreenshotInfo {
	info := ScreenshotInfo{Label: label, Tick: s.tick}
	walkEntities(s.root, func(e Entity) {
		if c, ok := e.(*Character); ok {
			info.Characters = append(info.Characters, CharacterInfo{
				ID:    c.ID.String(),
				Name:  c.Name,
				State: c.CurrentState(),
			})
		}
	})
	return info
}

// flushScreenshots writes every queued capture from src and returns the
// PNG paths written. Called by the game loop after Render. Failures are
// logged and do not stop the loop.
func (s *Scene) flushScreenshots(src capturer) []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[parallax] screenshot: %v\n", err)
		return nil
	}

	img := src.Capture()
	stamp := time.Now().Format("20060102_150405")
	var written []string
	for _, label := range s.screenshotQueue {
		info := s.screenshotInfo(label)
		base := filepath.Join(s.ScreenshotDir,
			fmt.Sprintf("%s_t%d_%s", stamp, info.Tick, sanitizeLabel(label)))
		if err := writeScreenshot(base, img, info); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[parallax] screenshot: %v\n", err)
			continue
		}
		written = append(written, base+".png")
	}
	return written
}

// writeScreenshot writes base.png and base.yaml.
func writeScreenshot(base string, img image.Image, info ScreenshotInfo) error {
	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s.png: %w", base, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal %s.yaml: %w", base, err)
	}
	return os.WriteFile(base+".yaml", data, 0o644)
}

// sanitizeLabel keeps letters, digits, '-' and '.', and maps everything
// else to '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
