package sequencer

// SectionTemplate turns curve data and an evaluation context into at most
// one execution token. Evaluate must not mutate any bound node.
type SectionTemplate interface {
	Evaluate(ctx EvaluationContext) (ExecutionToken, bool)
}

// VisibilityTemplate drives node visibility from a curve of hidden flags.
type VisibilityTemplate struct {
	Curve Curve[bool]
}

// Evaluate implements SectionTemplate. See EvaluateVisibility.
func (t *VisibilityTemplate) Evaluate(ctx EvaluationContext) (ExecutionToken, bool) {
	return EvaluateVisibility(ctx, t.Curve)
}

// AlphaTemplate drives node alpha from a float curve.
type AlphaTemplate struct {
	Curve Curve[float64]
}

// Evaluate implements SectionTemplate. See EvaluateAlpha.
func (t *AlphaTemplate) Evaluate(ctx EvaluationContext) (ExecutionToken, bool) {
	return EvaluateAlpha(ctx, t.Curve)
}
