package sequencer

import (
	"math"
	"testing"
)

func TestVisibilityInversion(t *testing.T) {
	for _, v := range []bool{false, true} {
		tmpl := &VisibilityTemplate{Curve: NewBoolCurve(BoolKey{Time: 0, Value: v})}
		tok, ok := tmpl.Evaluate(EvaluationContext{Time: 0, Operand: testOperand})
		if !ok {
			t.Fatalf("v=%v: expected a token", v)
		}
		if tok.Kind != TokenSetVisibility {
			t.Errorf("Kind = %v, want TokenSetVisibility", tok.Kind)
		}
		if tok.Visible != !v {
			t.Errorf("curve hidden=%v: token Visible=%v, want %v", v, tok.Visible, !v)
		}
	}
}

func TestVisibilityEmptyCurveNoToken(t *testing.T) {
	for _, c := range []Curve[bool]{nil, &BoolCurve{}, (*BoolCurve)(nil)} {
		tmpl := &VisibilityTemplate{Curve: c}
		if _, ok := tmpl.Evaluate(EvaluationContext{Time: 1}); ok {
			t.Errorf("curve %#v: expected no token", c)
		}
	}
}

func TestAlphaTemplate(t *testing.T) {
	tmpl := &AlphaTemplate{Curve: NewFloatCurve(FloatKey{Time: 0, Value: 0}, FloatKey{Time: 4, Value: 1})}
	tok, ok := tmpl.Evaluate(EvaluationContext{Time: 1})
	if !ok {
		t.Fatal("expected a token")
	}
	if tok.Kind != TokenSetAlpha {
		t.Errorf("Kind = %v, want TokenSetAlpha", tok.Kind)
	}
	if math.Abs(tok.Alpha-0.25) > 0.001 {
		t.Errorf("Alpha = %f, want ~0.25", tok.Alpha)
	}
}

func TestAlphaEmptyCurveNoToken(t *testing.T) {
	tmpl := &AlphaTemplate{Curve: &FloatCurve{}}
	if _, ok := tmpl.Evaluate(EvaluationContext{}); ok {
		t.Error("expected no token")
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	p := newFakePlayer()
	n := NewActor("a")
	p.bindings.Bind(testOperand, n)

	var q TokenQueue
	tmpl := &VisibilityTemplate{Curve: NewBoolCurve(BoolKey{Time: 0, Value: true})}
	tok, ok := tmpl.Evaluate(EvaluationContext{Time: 0, Operand: testOperand})
	if !ok {
		t.Fatal("expected a token")
	}
	q.Add(tok, testOperand, PersistentData{})

	if n.Hidden || p.state.Len() != 0 {
		t.Fatal("evaluate phase must not touch nodes or the store")
	}

	q.Execute(p)
	if !n.Hidden {
		t.Error("execute phase should apply the token")
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Execute")
	}
}

func TestQueueExecutesInOrder(t *testing.T) {
	p := newFakePlayer()
	n := NewActor("a")
	p.bindings.Bind(testOperand, n)

	var q TokenQueue
	q.Add(ExecutionToken{Kind: TokenSetVisibility, Visible: false}, testOperand, PersistentData{})
	q.Add(ExecutionToken{Kind: TokenSetVisibility, Visible: true}, testOperand, PersistentData{})
	q.Execute(p)

	if n.Hidden {
		t.Error("last queued token should win")
	}
}

func TestQueueReset(t *testing.T) {
	p := newFakePlayer()
	n := NewActor("a")
	p.bindings.Bind(testOperand, n)

	var q TokenQueue
	q.Add(ExecutionToken{Kind: TokenSetVisibility, Visible: false}, testOperand, PersistentData{})
	q.Reset()
	q.Execute(p)
	if n.Hidden {
		t.Error("reset queue should not run dropped tokens")
	}
}
