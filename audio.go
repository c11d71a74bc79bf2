package parallax

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// musicSampleRate is the sample rate of the shared audio context.
const musicSampleRate = 48000

// Music is a background track looped forever. It starts paused; Toggle
// switches between playing and paused.
type Music struct {
	player *audio.Player
}

// LoadMusic decodes an .mp3 or .ogg file and prepares it for looping at the
// given volume. The audio context is created on first use.
func LoadMusic(path string, volume float64) (*Music, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load music: %w", err)
	}
	return decodeMusic(filepath.Ext(path), bytes.NewReader(data), volume)
}

func decodeMusic(ext string, r io.ReadSeeker, volume float64) (*Music, error) {
	ext = strings.ToLower(ext)
	if ext != ".mp3" && ext != ".ogg" {
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(musicSampleRate)
	}

	var stream io.ReadSeeker
	var length int64
	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), r)
		if err != nil {
			return nil, fmt.Errorf("decode mp3: %w", err)
		}
		stream, length = s, s.Length()
	default:
		s, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), r)
		if err != nil {
			return nil, fmt.Errorf("decode ogg: %w", err)
		}
		stream, length = s, s.Length()
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	player.SetVolume(volume)
	return &Music{player: player}, nil
}

// Playing reports whether the track is playing.
func (m *Music) Playing() bool {
	return m.player.IsPlaying()
}

// Toggle plays a paused track or pauses a playing one.
func (m *Music) Toggle() {
	if m.player.IsPlaying() {
		m.player.Pause()
		return
	}
	m.player.Play()
}

// Close releases the player.
func (m *Music) Close() error {
	return m.player.Close()
}
