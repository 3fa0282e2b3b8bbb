// Package sequencer evaluates animated sequences against live scene nodes
// and guarantees every change it makes can be undone.
//
// # Quick start
//
// Build a [Sequence] in code or load one with [LoadSequence] /
// [LoadSequenceYAML], bind nodes to its tracks through a [Session], and
// evaluate frames:
//
//	seq := sequencer.NewSequence("intro", 10)
//	door := seq.AddTrack("door", uuid.Nil)
//	door.AddSection("hide", sequencer.InfiniteRange, &sequencer.VisibilityTemplate{
//		Curve: sequencer.NewBoolCurve(
//			sequencer.BoolKey{Time: 0, Value: false},
//			sequencer.BoolKey{Time: 5, Value: true},
//		),
//	}, sequencer.CompletionKeepState)
//
//	session := sequencer.NewSession(seq)
//	session.Bind("door", sequencer.NewActor("door"))
//	session.Play()
//	// each tick:
//	session.Update()
//	// when done:
//	session.Stop() // every node is back to its pre-session state
//
// # Evaluate, then execute
//
// Each frame runs in two phases. During evaluate, every active section's
// [SectionTemplate] reads its curve and produces at most one
// [ExecutionToken]; nothing is mutated. During execute, the queued tokens
// resolve their operand to nodes and apply their values.
//
// # Pre-animated state
//
// Before a token mutates a node it asks the session's [PreAnimatedState] to
// capture the node's current state for that kind of animation
// ([AnimTypeID]). Only the first capture for a (node, type) pair is kept, so
// scrubbing back and forth never overwrites the original state. Stopping the
// session restores everything. Sections using [CompletionRestoreState] also
// capture in their own scope and restore as soon as the playhead leaves them.
//
// Nodes are referenced through weak [Handle] values. A node that is disposed
// or collected is skipped on apply and silently ignored on restore.
//
// # Visibility
//
// [VisibilityTemplate] reads a curve of hidden flags and emits a token
// carrying the inverse, whether the node should be visible. Actors also
// carry an editor-only hidden flag which is only written outside
// play-in-editor (see [Session.SetPlayingInEditor]), although it is always
// captured.
//
// ECS integration for playback events lives in sequencer/ecs (via [Donburi]).
//
// [Donburi]: https://github.com/yohamta/donburi
package sequencer
