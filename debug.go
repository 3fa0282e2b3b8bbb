package sequencer

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and store metrics.
// Only populated when Session.debug is true.
type debugStats struct {
	evaluateTime time.Duration
	restoreTime  time.Duration
	executeTime  time.Duration
	tokenCount   int
	captureCount int
	restoreCount int
	storeSize    int
}

// debugLog prints timing and store stats to stderr.
func (s *Session) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.evaluateTime + stats.restoreTime + stats.executeTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sequencer] t=%.3f evaluate: %v | restore: %v | execute: %v | total: %v\n",
		s.time, stats.evaluateTime, stats.restoreTime, stats.executeTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sequencer] tokens: %d | captured: %d | restored: %d | stored: %d\n",
		stats.tokenCount, stats.captureCount, stats.restoreCount, stats.storeSize)
}

// debugCheckBinding warns on stderr if a track with sections has no live
// nodes bound to it. Each track is reported once until it gains a live node.
func (s *Session) debugCheckBinding(t *Track) {
	if len(t.Sections) == 0 {
		return
	}
	for _, h := range s.bindings.FindBoundObjects(t.Operand) {
		if h.IsValid() {
			delete(s.warned, t)
			return
		}
	}
	if s.warned[t] {
		return
	}
	s.warned[t] = true
	_, _ = fmt.Fprintf(os.Stderr, "[sequencer] warning: track %q (%s) has no live bound nodes\n",
		t.Name, t.Operand)
}
