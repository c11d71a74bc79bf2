// Package parallax drives a tick-based 2D sprite scene on [Ebitengine]:
// frame-sequenced animations, per-entity motion laws, layered parallax
// backgrounds and finite-state characters.
//
// # Quick start
//
// The simplest way to get started is [BuildScene] from a [Config] and
// [Run], which creates a window and game loop for you:
//
//	input := parallax.NewInput()
//	scene, err := parallax.BuildScene(parallax.DefaultConfig(),
//		parallax.NewTextureCache("assets"), input)
//	if err != nil {
//		log.Fatal(err)
//	}
//	parallax.Run(scene, parallax.RunConfig{
//		Title: "Fox", Width: 928, Height: 493, Input: input,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Render] once per Draw with an [EbitenSurface].
//
// # The tick
//
// Every [Scene.Render] call is one tick. Within a tick, queued key presses
// are dispatched first, then every [Entity] renders in order. A [Sprite]
// moves its [Vector], draws its [Animation] at the new position, then steps
// the animation. Step returns [CycleCompleted] when the frame index wraps;
// states such as [JumpingState] turn that signal into a [Transition] that
// their [Character] applies.
//
// # Motion
//
// [Vector] is an immutable value. Move applies the law selected by its
// kind: [Linear], [Zero], [Scrolling] (wraps to 0 after one width, for
// treadmill layers) or [Gravity] (vertical velocity scaled each tick).
//
// # Events
//
// Character state changes can be forwarded to an [EventSink]; the
// parallax/ecs module publishes them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package parallax
