package parallax

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultInputBuffer is the capacity of channels made by NewInput.
const defaultInputBuffer = 32

// NewInput returns a buffered key channel for NewScene and RunConfig.Input.
func NewInput() chan Key {
	return make(chan Key, defaultInputBuffer)
}

// ebitenKeyCodes maps the Ebitengine keys the scene understands to codes.
var ebitenKeyCodes = map[ebiten.Key]Key{
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyArrowDown:  KeyDown,
}

// KeyFromEbiten returns the code for k, or false if k has none.
func KeyFromEbiten(k ebiten.Key) (Key, bool) {
	code, ok := ebitenKeyCodes[k]
	return code, ok
}

// pollKeys sends every key pressed this tick to out without blocking. Keys
// that do not fit in the buffer are dropped. buf is reused between calls.
func pollKeys(out chan<- Key, buf []ebiten.Key) []ebiten.Key {
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	for _, k := range buf {
		code, ok := KeyFromEbiten(k)
		if !ok {
			continue
		}
		select {
		case out <- code:
		default:
		}
	}
	return buf
}
