// Package ecs provides ECS adapters for gesture reports.
//
// The primary adapter is [NewDonburiStore], which bridges every report an
// instance triggers (tap, pan, pinch, ...) into a [Donburi] world as a
// typed event. Subscribe to [ReportEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	inst.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
