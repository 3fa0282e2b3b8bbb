package sequencer

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// NodeType distinguishes how a Node participates in animated-state capture
// and restoration.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // grouping node; no visibility state of its own
	NodeTypeActor                     // top-level object with Hidden and editor-only HiddenInEditor
	NodeTypeComponent                 // attached object with Hidden only
)

// String returns a short lowercase name for the node type.
func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeActor:
		return "actor"
	case NodeTypeComponent:
		return "component"
	default:
		return "unknown"
	}
}

// SequenceID identifies a sequence within an evaluation hierarchy. The root
// sequence is always RootSequenceID.
type SequenceID uint32

// RootSequenceID is the ID of the outermost sequence in a session.
const RootSequenceID SequenceID = 0

// Operand identifies the group of objects bound to a track. It is resolved
// to concrete nodes only at execution time.
type Operand struct {
	Sequence SequenceID
	Binding  uuid.UUID
}

// bindingNamespace seeds name-based binding IDs so the same track name always
// yields the same UUID.
var bindingNamespace = uuid.MustParse("6f1c9a52-4b7e-4e0c-9d0e-5e8a3c1b7f21")

// BindingFromName returns a stable binding UUID derived from name.
func BindingFromName(name string) uuid.UUID {
	return uuid.NewSHA1(bindingNamespace, []byte(name))
}

// NewOperand returns an operand for binding in the root sequence.
func NewOperand(binding uuid.UUID) Operand {
	return Operand{Sequence: RootSequenceID, Binding: binding}
}

// String formats the operand as "sequence/binding".
func (o Operand) String() string {
	return fmt.Sprintf("%d/%s", o.Sequence, o.Binding)
}

// CompletionMode controls what happens to the objects a section animated once
// that section stops being evaluated.
type CompletionMode uint8

const (
	CompletionKeepState    CompletionMode = iota // leave the last applied value in place
	CompletionRestoreState                       // restore the state captured when the section first applied
)

// Range is a half-open time range [Start, End).
type Range struct {
	Start, End float64
}

// InfiniteRange contains every finite time.
var InfiniteRange = Range{Start: math.Inf(-1), End: math.Inf(1)}

// Contains reports whether t lies inside the range. End is exclusive.
func (r Range) Contains(t float64) bool {
	return t >= r.Start && t < r.End
}

// EvaluationContext is the read-only input to a section template for one
// evaluation pass.
type EvaluationContext struct {
	Time    float64
	Operand Operand
}

// EventType identifies a kind of playback event.
type EventType uint8

const (
	EventSectionEnter EventType = iota // a section became active this frame
	EventSectionExit                   // a section stopped being evaluated
	EventRestore                       // pre-animated state was restored without stopping
	EventStop                          // the session stopped and restored everything
)

// String returns a short lowercase name for the event type.
func (t EventType) String() string {
	switch t {
	case EventSectionEnter:
		return "enter"
	case EventSectionExit:
		return "exit"
	case EventRestore:
		return "restore"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// PlaybackEvent carries playback notifications to an EventSink.
type PlaybackEvent struct {
	Type     EventType
	Sequence string
	Track    string
	Section  string
	Operand  Operand
	Time     float64
}

// EventSink is the interface for optional playback observers. When set on a
// Session, section transitions and restores are forwarded to it.
type EventSink interface {
	EmitEvent(event PlaybackEvent)
}
