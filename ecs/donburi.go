package ecs

import (
	"github.com/phanxgames/sequencer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlaybackEventType is the Donburi event type for sequencer playback events.
// Subscribe to this in your ECS systems to react to sections starting and
// finishing, or to a session restoring state.
var PlaybackEventType = events.NewEventType[sequencer.PlaybackEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Playback events are published to PlaybackEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sequencer.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sequencer.PlaybackEvent) {
	PlaybackEventType.Publish(s.world, event)
}
