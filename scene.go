package parallax

import (
	"errors"
	"slices"
	"time"
)

// Scene is the top-level object: it owns the ordered entity tree, the input
// channel, an optional fade overlay and the debug and test hooks.
//
// Render must be called exactly once per displayed frame and never
// reentrantly. Everything happens synchronously inside it, in the order of
// the scene's children.
type Scene struct {
	root  *CompositeSprite
	input <-chan Key
	sink  EventSink
	debug bool
	tick  uint64

	// Bounds is the canvas rectangle covered by the fade overlay.
	Bounds Rect

	// Keys lists the key codes forwarded to the entities. Other keys are
	// dropped. Defaults to the jump key.
	Keys []Key

	// ScreenshotDir is the directory written by Screenshot.
	ScreenshotDir string

	fade            *Fade
	injectQueue     []Key
	screenshotQueue []string
	testRunner      *TestRunner
	stats           debugStats
}

// NewScene creates a scene reading key presses from input. A nil channel
// is allowed; InjectKeydown still works.
func NewScene(input <-chan Key, children ...Entity) *Scene {
	return &Scene{
		root:          NewCompositeSprite(children...),
		input:         input,
		Keys:          []Key{KeySpace},
		ScreenshotDir: "screenshots",
	}
}

// Root returns the composite holding the scene's entities.
func (s *Scene) Root() *CompositeSprite {
	return s.root
}

// Add appends an entity to the render order. An event sink already set on
// the scene is attached to it.
func (s *Scene) Add(e Entity) {
	s.root.Add(e)
	if s.sink != nil {
		attachSink(e, s.sink)
	}
}

// Tick returns the number of completed Render calls.
func (s *Scene) Tick() uint64 { return s.tick }

// SetEventSink attaches sink to every character in the scene.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
	attachSink(s.root, sink)
}

// SetFade installs a fade overlay drawn over the entities until done.
func (s *Scene) SetFade(f *Fade) {
	s.fade = f
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick stats
// are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// HandleKeydown forwards key to every entity if it is one of Keys.
// It reports whether the key was forwarded, so the host can suppress its
// default handling.
func (s *Scene) HandleKeydown(key Key) (bool, error) {
	if !slices.Contains(s.Keys, key) {
		return false, nil
	}
	return true, s.root.HandleKeydown(key)
}

// Render runs one tick: queued input is dispatched, every entity is rendered
// in order, then the fade overlay is drawn.
func (s *Scene) Render(dst Surface) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = debugStats{}
		dst = &countingSurface{Surface: dst, stats: &s.stats}
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// A failed key or child does not cut the tick short; the errors are
	// returned together once the tick is complete.
	inputErr := s.processInput()
	renderErr := s.root.Render(dst)
	if s.fade != nil {
		s.fade.Render(dst, s.Bounds)
		if s.fade.Done && s.fade.Alpha() <= 0 {
			s.fade = nil
		}
	}
	s.tick++

	if s.debug {
		s.stats.renderTime = time.Since(t0)
		s.debugLog(s.stats)
	}
	return errors.Join(inputErr, renderErr)
}

// processInput dispatches injected keys first, then everything buffered on
// the input channel, without blocking. Every queued key is dispatched even
// if an earlier one fails.
func (s *Scene) processInput() error {
	var errs []error
	for _, key := range s.injectQueue {
		if err := s.dispatch(key); err != nil {
			errs = append(errs, err)
		}
	}
	s.injectQueue = s.injectQueue[:0]
	if s.input == nil {
		return errors.Join(errs...)
	}
	for {
		select {
		case key, ok := <-s.input:
			if !ok {
				s.input = nil
				return errors.Join(errs...)
			}
			if err := s.dispatch(key); err != nil {
				errs = append(errs, err)
			}
		default:
			return errors.Join(errs...)
		}
	}
}

func (s *Scene) dispatch(key Key) error {
	forwarded, err := s.HandleKeydown(key)
	if forwarded {
		s.stats.keys++
	}
	return err
}
