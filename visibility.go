package sequencer

// visibilityToken is the pre-animated snapshot for VisibilityAnimType.
type visibilityToken struct {
	hidden         bool
	hiddenInEditor bool
}

// Restore writes the snapshot back. Containers and other kinds are left
// untouched.
func (t visibilityToken) Restore(n *Node) {
	if n == nil || n.disposed {
		return
	}
	switch n.Type {
	case NodeTypeActor:
		n.Hidden = t.hidden
		n.HiddenInEditor = t.hiddenInEditor
	case NodeTypeComponent:
		n.Hidden = t.hidden
	}
}

type visibilityProducer struct{}

// CaptureExistingState snapshots the node's visibility flags. The editor
// flag is read regardless of play-in-editor mode. Unknown kinds snapshot as
// visible.
func (visibilityProducer) CaptureExistingState(n *Node) PreAnimatedToken {
	switch n.Type {
	case NodeTypeActor:
		return visibilityToken{hidden: n.Hidden, hiddenInEditor: n.HiddenInEditor}
	case NodeTypeComponent:
		return visibilityToken{hidden: n.Hidden}
	default:
		return visibilityToken{}
	}
}

// applyVisibility sets the node's hidden state from a visible value. The
// editor-only flag on actors is only written outside play-in-editor.
func applyVisibility(n *Node, visible, playingInEditor bool) {
	hidden := !visible
	switch n.Type {
	case NodeTypeActor:
		n.Hidden = hidden
		if !playingInEditor {
			n.HiddenInEditor = hidden
		}
	case NodeTypeComponent:
		n.Hidden = hidden
	}
}

// EvaluateVisibility turns a hidden-flag curve into a visibility token. An
// empty curve yields no token. The curve's value is inverted: the token
// carries whether the node should be visible.
func EvaluateVisibility(ctx EvaluationContext, curve Curve[bool]) (ExecutionToken, bool) {
	if curve == nil || !curve.HasAnyData() {
		return ExecutionToken{}, false
	}
	hidden := curve.Evaluate(ctx.Time, false)
	return ExecutionToken{Kind: TokenSetVisibility, Visible: !hidden}, true
}
