package ecs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phanxgames/sequencer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []sequencer.PlaybackEvent
	PlaybackEventType.Subscribe(world, func(w donburi.World, e sequencer.PlaybackEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(sequencer.PlaybackEvent{
		Type:    sequencer.EventSectionEnter,
		Track:   "door",
		Section: "vis",
		Time:    2.5,
	})
	sink.EmitEvent(sequencer.PlaybackEvent{Type: sequencer.EventStop})

	// Events are queued — process them.
	PlaybackEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != sequencer.EventSectionEnter || e0.Track != "door" || e0.Section != "vis" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Time != 2.5 {
		t.Errorf("event 0 time: %v", e0.Time)
	}
	if received[1].Type != sequencer.EventStop {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink sequencer.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_FromSession(t *testing.T) {
	world := donburi.NewWorld()

	seq := sequencer.NewSequence("intro", 10)
	seq.AddTrack("door", uuid.Nil).AddSection("vis", sequencer.Range{Start: 0, End: 5},
		&sequencer.VisibilityTemplate{
			Curve: sequencer.NewBoolCurve(sequencer.BoolKey{Time: 0, Value: true}),
		}, sequencer.CompletionRestoreState)

	session := sequencer.NewSession(seq)
	session.SetEventSink(NewDonburiSink(world))
	door := sequencer.NewActor("door")
	session.Bind("door", door)

	var types []sequencer.EventType
	PlaybackEventType.Subscribe(world, func(w donburi.World, e sequencer.PlaybackEvent) {
		types = append(types, e.Type)
	})

	session.Evaluate(1)
	session.Evaluate(6)
	session.Stop()
	events.ProcessAllEvents(world)

	want := []sequencer.EventType{sequencer.EventSectionEnter, sequencer.EventSectionExit, sequencer.EventStop}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("got %v, want %v", types, want)
		}
	}
	if door.Hidden {
		t.Error("door should be restored")
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	PlaybackEventType.Subscribe(world, func(w donburi.World, e sequencer.PlaybackEvent) {
		count1++
	})
	PlaybackEventType.Subscribe(world, func(w donburi.World, e sequencer.PlaybackEvent) {
		count2++
	})

	sink.EmitEvent(sequencer.PlaybackEvent{Type: sequencer.EventRestore})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
