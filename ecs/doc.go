// Package ecs provides ECS adapters for scrollkit's render instructions.
//
// The primary adapter is [NewDonburiSink], which forwards every instruction
// the engine applies into a [Donburi] world as a typed event. Subscribe to
// [InstructionEventType] in your ECS systems to mirror scroll-driven values
// onto entities (sprite alpha, camera offsets, audio volume).
//
// Property writes and method calls are also published separately as
// [AssignEventType] and [InvokeEventType]. [WithKinds] and [WithNames] limit
// what the sink forwards.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world, ecs.WithNames("opacity"))
//	engine.SetInstructionSink(sink)
//
//	ecs.AssignEventType.Subscribe(world, func(w donburi.World, a ecs.Assignment) {
//		// mirror a.Value onto the entity bound to a.Target
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
