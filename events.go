package parallax

import "github.com/google/uuid"

// EventSink is the interface for optional ECS integration. When set on a
// Scene, character state changes are forwarded to it.
type EventSink interface {
	EmitStateChange(event StateChangeEvent)
}

// StateChangeEvent is emitted after a character switches state.
type StateChangeEvent struct {
	CharacterID uuid.UUID
	Character   string
	From, To    string
	// Tick is the number of Render calls the character had received when
	// the change happened.
	Tick uint64
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(StateChangeEvent)

// EmitStateChange calls f(event).
func (f EventSinkFunc) EmitStateChange(event StateChangeEvent) { f(event) }

// sinkSetter is implemented by entities that emit events.
type sinkSetter interface {
	SetEventSink(sink EventSink)
}

// walkEntities calls fn on e and, through composites, on every descendant
// in render order.
func walkEntities(e Entity, fn func(Entity)) {
	fn(e)
	if c, ok := e.(*CompositeSprite); ok {
		for _, child := range c.children {
			walkEntities(child, fn)
		}
	}
}

// attachSink sets sink on every entity under e that accepts one.
func attachSink(e Entity, sink EventSink) {
	walkEntities(e, func(e Entity) {
		if v, ok := e.(sinkSetter); ok {
			v.SetEventSink(sink)
		}
	})
}
