package parallax

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a complete scene: window, assets, the parallax background,
// the fox character and the host glue around them.
//
// A YAML file only needs the fields it changes; LoadConfig starts from
// DefaultConfig.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Assets     string           `yaml:"assets"`
	Background BackgroundConfig `yaml:"background"`
	Fox        FoxConfig        `yaml:"fox"`
	JumpKey    Key              `yaml:"jumpKey"`
	Music      MusicConfig      `yaml:"music"`
	FadeTicks  int              `yaml:"fadeTicks"`
	ShowFPS    bool             `yaml:"showFPS"`
	Debug      bool             `yaml:"debug"`
}

// WindowConfig sizes the canvas.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BackgroundConfig describes the parallax layers, nearest-to-static first.
type BackgroundConfig struct {
	Layers    []string `yaml:"layers"`
	Scale     float64  `yaml:"scale"`
	SpeedStep float64  `yaml:"speedStep"`
	SourceY   float64  `yaml:"sourceY"`
	Hold      int      `yaml:"hold"`
}

// FoxConfig describes the character sprite sheet and its two rows.
type FoxConfig struct {
	Sheet   string         `yaml:"sheet"`
	Scale   float64        `yaml:"scale"`
	X       float64        `yaml:"x"`
	Y       float64        `yaml:"y"`
	FrameW  float64        `yaml:"frameW"`
	FrameH  float64        `yaml:"frameH"`
	Initial string         `yaml:"initial"`
	Running AnimationStrip `yaml:"running"`
	Jumping AnimationStrip `yaml:"jumping"`
}

// AnimationStrip is a horizontal run of equally sized frames on one row of a
// sprite sheet.
type AnimationStrip struct {
	Row    float64 `yaml:"row"`
	Frames int     `yaml:"frames"`
	Hold   int     `yaml:"hold"`
}

// MusicConfig configures the looped background track.
type MusicConfig struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
}

// DefaultConfig returns the reference forest scene.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Title: "Parallax", Width: 928, Height: 493},
		Assets: ".",
		Background: BackgroundConfig{
			Layers: []string{
				"img/background/Layer_0011_0.png",
				"img/background/Layer_0010_1.png",
				"img/background/Layer_0009_2.png",
				"img/background/Layer_0008_3.png",
				"img/background/Layer_0007_Lights.png",
				"img/background/Layer_0006_4.png",
				"img/background/Layer_0005_5.png",
				"img/background/Layer_0004_Lights.png",
				"img/background/Layer_0003_6.png",
				"img/background/Layer_0002_7.png",
				"img/background/Layer_0001_8.png",
				"img/background/Layer_0000_9.png",
			},
			Scale:     1,
			SpeedStep: -0.25,
			SourceY:   300,
			Hold:      5,
		},
		Fox: FoxConfig{
			Sheet:   "img/characters/fox.png",
			Scale:   3,
			X:       400,
			Y:       355,
			FrameW:  32,
			FrameH:  32,
			Initial: StateRunning,
			Running: AnimationStrip{Row: 72, Frames: 8, Hold: 5},
			Jumping: AnimationStrip{Row: 104, Frames: 9, Hold: 5},
		},
		JumpKey: KeySpace,
		Music:   MusicConfig{Path: "audio/music.mp3", Volume: 0.05},
	}
}

// LoadConfig reads a YAML config file over DefaultConfig and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would fail at construction or misbehave at
// render time.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Background.Hold <= 0 {
		return fmt.Errorf("%w: background hold %d", ErrInvalidConfig, c.Background.Hold)
	}
	if c.Background.Scale <= 0 {
		return fmt.Errorf("%w: background scale %v", ErrInvalidConfig, c.Background.Scale)
	}
	if c.Fox.Scale <= 0 {
		return fmt.Errorf("%w: fox scale %v", ErrInvalidConfig, c.Fox.Scale)
	}
	if c.Fox.FrameW <= 0 || c.Fox.FrameH <= 0 {
		return fmt.Errorf("%w: fox frame %vx%v", ErrInvalidConfig, c.Fox.FrameW, c.Fox.FrameH)
	}
	for name, strip := range map[string]AnimationStrip{
		StateRunning: c.Fox.Running,
		StateJumping: c.Fox.Jumping,
	} {
		if strip.Frames <= 0 || strip.Hold <= 0 {
			return fmt.Errorf("%w: fox %s strip frames=%d hold=%d",
				ErrInvalidConfig, name, strip.Frames, strip.Hold)
		}
	}
	if c.Fox.Initial != StateRunning && c.Fox.Initial != StateJumping {
		return fmt.Errorf("%w: fox initial state %q", ErrUnknownState, c.Fox.Initial)
	}
	if c.Music.Volume < 0 || c.Music.Volume > 1 {
		return fmt.Errorf("%w: music volume %v", ErrInvalidConfig, c.Music.Volume)
	}
	if c.FadeTicks < 0 {
		return fmt.Errorf("%w: fade ticks %d", ErrInvalidConfig, c.FadeTicks)
	}
	return nil
}
