package sequencer

type alphaToken struct {
	alpha float64
}

func (t alphaToken) Restore(n *Node) {
	if n == nil || n.disposed {
		return
	}
	n.Alpha = t.alpha
}

type alphaProducer struct{}

func (alphaProducer) CaptureExistingState(n *Node) PreAnimatedToken {
	return alphaToken{alpha: n.Alpha}
}

// applyAlpha clamps a to [0, 1] and writes it to the node.
func applyAlpha(n *Node, a float64) {
	n.Alpha = clamp01(a)
}

// EvaluateAlpha turns an alpha curve into a token. An empty curve yields no
// token; the default for Evaluate is fully opaque.
func EvaluateAlpha(ctx EvaluationContext, curve Curve[float64]) (ExecutionToken, bool) {
	if curve == nil || !curve.HasAnyData() {
		return ExecutionToken{}, false
	}
	return ExecutionToken{Kind: TokenSetAlpha, Alpha: curve.Evaluate(ctx.Time, 1)}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
