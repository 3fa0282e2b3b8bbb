// Package ecs provides ECS adapters for sequencer's playback events.
//
// The primary adapter is [NewDonburiSink], which bridges section enter/exit,
// restore and stop notifications into a [Donburi] world as typed events.
// Subscribe to [PlaybackEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
