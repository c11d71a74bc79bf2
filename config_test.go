package parallax

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Background.Layers) != 12 {
		t.Errorf("layers = %d, want 12", len(cfg.Background.Layers))
	}
	if cfg.JumpKey != KeySpace {
		t.Errorf("JumpKey = %d, want 32", cfg.JumpKey)
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
window:
  width: 640
  height: 360
background:
  layers: [far.png, near.png]
fox:
  jumping:
    row: 104
    frames: 11
    hold: 4
jumpKey: 38
fadeTicks: 30
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Title != "Parallax" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if len(cfg.Background.Layers) != 2 || cfg.Background.SpeedStep != -0.25 {
		t.Errorf("background = %+v", cfg.Background)
	}
	if cfg.Fox.Jumping.Frames != 11 || cfg.Fox.Running.Frames != 8 {
		t.Errorf("fox strips = %+v / %+v", cfg.Fox.Running, cfg.Fox.Jumping)
	}
	if cfg.JumpKey != KeyUp || cfg.FadeTicks != 30 {
		t.Errorf("jumpKey=%d fadeTicks=%d", cfg.JumpKey, cfg.FadeTicks)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"zero hold", "background: {hold: 0}", ErrInvalidConfig},
		{"zero width", "window: {width: 0}", ErrInvalidConfig},
		{"empty strip", "fox: {running: {row: 72, frames: 0, hold: 5}}", ErrInvalidConfig},
		{"negative frame", "fox: {frameW: -32}", ErrInvalidConfig},
		{"loud music", "music: {volume: 2}", ErrInvalidConfig},
		{"unknown initial", "fox: {initial: sleeping}", ErrUnknownState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseConfigSyntaxError(t *testing.T) {
	if _, err := ParseConfig([]byte("window: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("showFPS: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS not loaded")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeTicks = 10
	src := newStubSource()
	s, err := BuildScene(cfg, src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Root().Len() != 2 {
		t.Fatalf("children = %d, want background and fox", s.Root().Len())
	}
	if _, ok := s.Root().Children()[1].(*Character); !ok {
		t.Errorf("second child is %T, want *Character", s.Root().Children()[1])
	}
	if len(src.textures) != 13 {
		t.Errorf("textures requested = %d, want 13", len(src.textures))
	}
	if s.Bounds != (Rect{Width: 928, Height: 493}) {
		t.Errorf("Bounds = %v", s.Bounds)
	}

	var surf recordingSurface
	if err := s.Render(&surf); err != nil {
		t.Fatal(err)
	}
	// Layer 0 is static at x=0 and draws a wrap copy; the fox draws last.
	last := surf.draws[len(surf.draws)-1]
	if last.dst.X != 400 || last.dst.Width != 96 {
		t.Errorf("last draw = %+v, want the fox", last.dst)
	}
	if len(surf.fills) != 1 {
		t.Errorf("fills = %d, want 1 fade overlay", len(surf.fills))
	}
}

func TestBuildSceneInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background.Hold = 0
	if _, err := BuildScene(cfg, newStubSource(), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v", err)
	}
}
