// Package ecs provides ECS adapters for ember's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges ember widget
// interaction events (hover, press, click, focus, activate) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	rt.UI().SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
