package sequencer

// TokenKind selects what an ExecutionToken applies.
type TokenKind uint8

const (
	TokenSetVisibility TokenKind = iota // apply Visible to Hidden (and HiddenInEditor on actors)
	TokenSetAlpha                       // apply Alpha
)

// ExecutionToken is a one-shot command produced by a section template during
// the evaluate phase and run during the execute phase. It is plain data: it
// holds no reference to the template that produced it.
type ExecutionToken struct {
	Kind    TokenKind
	Visible bool
	Alpha   float64
}

// PersistentData is the per-section data a token sees when it executes.
type PersistentData struct {
	Entity     EntityKey
	Completion CompletionMode
}

// Player resolves operands and exposes the runtime state tokens need while
// executing. Session implements it.
type Player interface {
	FindBoundObjects(op Operand) []Handle
	IsPlayingInEditor() bool
	PreAnimatedState() *PreAnimatedState
}

// Execute applies the token to every live node bound to operand. Before each
// mutation the node's current state is captured if it has not been already,
// both session-wide and, for restore-state sections, in the section's scope.
// Dead handles are skipped.
func (tok ExecutionToken) Execute(operand Operand, persistent PersistentData, player Player) {
	tag, producer := tok.capturePolicy()
	state := player.PreAnimatedState()
	pie := player.IsPlayingInEditor()

	for _, h := range player.FindBoundObjects(operand) {
		n := h.Resolve()
		if n == nil {
			continue
		}
		if persistent.Completion == CompletionRestoreState {
			state.CaptureForEntity(persistent.Entity, h, tag, producer)
		}
		state.CaptureIfAbsent(h, tag, producer)

		switch tok.Kind {
		case TokenSetVisibility:
			applyVisibility(n, tok.Visible, pie)
		case TokenSetAlpha:
			applyAlpha(n, tok.Alpha)
		}
	}
}

func (tok ExecutionToken) capturePolicy() (AnimTypeID, PreAnimatedTokenProducer) {
	switch tok.Kind {
	case TokenSetAlpha:
		return AlphaAnimType, alphaProducer{}
	default:
		return VisibilityAnimType, visibilityProducer{}
	}
}
