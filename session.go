package sequencer

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// activeSection is a section that was inside the playhead on the last
// evaluated frame.
type activeSection struct {
	track   *Track
	section *Section
}

// Session is one evaluation of a sequence. It owns the bindings, the
// pre-animated state store and the per-frame token queue, and implements
// Player for the tokens it executes. Independent sessions never share state.
//
// A Session is not safe for concurrent use; drive it from the game loop.
type Session struct {
	sequence *Sequence
	bindings Bindings
	state    *PreAnimatedState
	queue    TokenQueue
	sink     EventSink
	debug    bool

	// Playback
	time            float64
	playing         bool
	looping         bool
	playRate        float64
	playingInEditor bool

	active     []activeSection
	nextActive []activeSection
	current    map[*Section]bool

	warned map[*Track]bool // unbound tracks already reported in debug mode
}

// NewSession creates a stopped session for seq at time zero.
func NewSession(seq *Sequence) *Session {
	return &Session{
		sequence: seq,
		state:    NewPreAnimatedState(),
		playRate: 1,
		current:  make(map[*Section]bool),
		warned:   make(map[*Track]bool),
	}
}

// Sequence returns the sequence being evaluated.
func (s *Session) Sequence() *Sequence {
	return s.sequence
}

// --- Player ---

// FindBoundObjects returns the handles bound to op.
func (s *Session) FindBoundObjects(op Operand) []Handle {
	return s.bindings.FindBoundObjects(op)
}

// IsPlayingInEditor reports whether the session runs inside play-in-editor.
func (s *Session) IsPlayingInEditor() bool {
	return s.playingInEditor
}

// PreAnimatedState returns the session's store.
func (s *Session) PreAnimatedState() *PreAnimatedState {
	return s.state
}

// --- Bindings ---

// Bind adds nodes to the operand of the named track. Returns false if the
// sequence has no such track.
func (s *Session) Bind(trackName string, nodes ...*Node) bool {
	t := s.sequence.Track(trackName)
	if t == nil {
		return false
	}
	s.bindings.Bind(t.Operand, nodes...)
	return true
}

// BindOperand adds nodes to op directly.
func (s *Session) BindOperand(op Operand, nodes ...*Node) {
	s.bindings.Bind(op, nodes...)
}

// Unbind removes every node bound to op. Captured state for those nodes is
// kept and restored as usual.
func (s *Session) Unbind(op Operand) {
	s.bindings.Unbind(op)
}

// PruneBindings drops handles to nodes that no longer exist.
func (s *Session) PruneBindings() int {
	return s.bindings.Prune()
}

// --- Evaluation ---

// Evaluate runs one full frame at time t. All sections containing t are
// evaluated into tokens first; restore-state sections that are no longer
// active are then restored; finally the queued tokens are executed. No node
// is mutated until every template has been evaluated.
func (s *Session) Evaluate(t float64) {
	s.time = t

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// Evaluate phase.
	clear(s.current)
	s.nextActive = s.nextActive[:0]
	for _, track := range s.sequence.Tracks {
		if s.debug {
			s.debugCheckBinding(track)
		}
		for _, sec := range track.Sections {
			if !sec.Range.Contains(t) {
				continue
			}
			s.current[sec] = true
			s.nextActive = append(s.nextActive, activeSection{track: track, section: sec})
			if sec.Template == nil {
				continue
			}
			ctx := EvaluationContext{Time: t, Operand: track.Operand}
			if tok, ok := sec.Template.Evaluate(ctx); ok {
				s.queue.Add(tok, track.Operand, PersistentData{
					Entity:     sec.entity,
					Completion: sec.Completion,
				})
			}
		}
	}

	if s.debug {
		stats.evaluateTime = time.Since(t0)
		stats.tokenCount = s.queue.Len()
		t0 = time.Now()
	}

	// Sections that finished since the last frame.
	for _, a := range s.active {
		if s.current[a.section] {
			continue
		}
		if a.section.Completion == CompletionRestoreState {
			s.state.RestoreEntity(a.section.entity)
		}
		s.emit(EventSectionExit, a)
	}
	for _, a := range s.nextActive {
		if !s.wasActive(a.section) {
			s.emit(EventSectionEnter, a)
		}
	}
	s.active, s.nextActive = s.nextActive, s.active

	if s.debug {
		stats.restoreTime = time.Since(t0)
		t0 = time.Now()
	}

	// Execute phase.
	s.queue.Execute(s)

	if s.debug {
		stats.executeTime = time.Since(t0)
		stats.captureCount = s.state.captureCount
		stats.restoreCount = s.state.restoreCount
		stats.storeSize = s.state.Len()
		s.debugLog(stats)
	}
	s.state.resetCounters()
}

// wasActive reports whether sec was active on the previous frame.
func (s *Session) wasActive(sec *Section) bool {
	for _, a := range s.active {
		if a.section == sec {
			return true
		}
	}
	return false
}

// --- Playback ---

// Time returns the time of the last evaluated frame.
func (s *Session) Time() float64 {
	return s.time
}

// Play starts advancing time on Update/Advance.
func (s *Session) Play() {
	s.playing = true
}

// Pause stops advancing time. Animated state stays applied.
func (s *Session) Pause() {
	s.playing = false
}

// IsPlaying reports whether the session is advancing time.
func (s *Session) IsPlaying() bool {
	return s.playing
}

// SetLooping makes playback wrap at the sequence length instead of stopping.
func (s *Session) SetLooping(looping bool) {
	s.looping = looping
}

// SetPlayRate scales the time step. Negative rates play backwards.
func (s *Session) SetPlayRate(rate float64) {
	s.playRate = rate
}

// SetPlayingInEditor switches play-in-editor mode. While enabled, actor
// editor-only visibility is left untouched by visibility tokens.
func (s *Session) SetPlayingInEditor(enabled bool) {
	s.playingInEditor = enabled
}

// Update advances playback by one tick at the current ebiten TPS.
func (s *Session) Update() {
	s.Advance(1.0 / float64(ebiten.TPS()))
}

// Advance moves the playhead by dt seconds (scaled by the play rate) and
// evaluates the new frame. Does nothing while paused. Without looping,
// playback clamps at either end of the sequence and pauses.
func (s *Session) Advance(dt float64) {
	if !s.playing {
		return
	}
	t := s.time + dt*s.playRate
	if length := s.sequence.Length; length > 0 {
		switch {
		case s.looping:
			t = math.Mod(t, length)
			if t < 0 {
				t += length
			}
		case t >= length:
			t = length
			s.playing = false
		case t < 0:
			t = 0
			s.playing = false
		}
	}
	s.Evaluate(t)
}

// Stop ends the session: every captured state is restored, the queue is
// dropped, and the playhead rewinds to zero without evaluating.
func (s *Session) Stop() {
	s.playing = false
	s.queue.Reset()
	s.state.RestoreAllAndClear()
	s.state.resetCounters()
	s.active = s.active[:0]
	s.emit(EventStop, activeSection{})
	s.time = 0
}

// RestorePreAnimatedState restores every captured state without stopping
// playback. Sections still under the playhead re-capture on the next frame.
func (s *Session) RestorePreAnimatedState() {
	s.state.RestoreAllAndClear()
	s.state.resetCounters()
	s.active = s.active[:0]
	s.emit(EventRestore, activeSection{})
}

// --- Options ---

// SetEventSink sets the optional playback observer.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and store stats are logged to stderr, and tracks with nothing
// bound are reported.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

func (s *Session) emit(typ EventType, a activeSection) {
	if s.sink == nil {
		return
	}
	ev := PlaybackEvent{
		Type:     typ,
		Sequence: s.sequence.Name,
		Time:     s.time,
	}
	if a.track != nil {
		ev.Track = a.track.Name
		ev.Operand = a.track.Operand
	}
	if a.section != nil {
		ev.Section = a.section.Name
	}
	s.sink.EmitEvent(ev)
}
