// Package ecs provides ECS adapters for parallax's character events.
//
// The primary adapter is [NewDonburiStore], which bridges character state
// changes into a [Donburi] world as typed events. Subscribe to
// [StateChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
