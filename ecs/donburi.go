package ecs

import (
	"github.com/phanxgames/parallax"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChangeEventType is the Donburi event type for character state changes.
var StateChangeEventType = events.NewEventType[parallax.StateChangeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// State changes are published to StateChangeEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) parallax.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitStateChange(event parallax.StateChangeEvent) {
	StateChangeEventType.Publish(s.world, event)
}
