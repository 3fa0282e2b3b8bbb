package sequencer

import "testing"

// fakePlayer is a minimal Player for driving tokens without a Session.
type fakePlayer struct {
	bindings Bindings
	state    *PreAnimatedState
	pie      bool
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{state: NewPreAnimatedState()}
}

func (p *fakePlayer) FindBoundObjects(op Operand) []Handle { return p.bindings.FindBoundObjects(op) }
func (p *fakePlayer) IsPlayingInEditor() bool              { return p.pie }
func (p *fakePlayer) PreAnimatedState() *PreAnimatedState  { return p.state }

var testOperand = NewOperand(BindingFromName("test"))

// --- Capture ---

func TestVisibilityCaptureActor(t *testing.T) {
	n := NewActor("a")
	n.Hidden = true
	n.HiddenInEditor = false
	tok := visibilityProducer{}.CaptureExistingState(n).(visibilityToken)
	if !tok.hidden || tok.hiddenInEditor {
		t.Errorf("token = %+v, want hidden only", tok)
	}
}

func TestVisibilityCaptureComponent(t *testing.T) {
	n := NewComponent("c")
	n.Hidden = true
	n.HiddenInEditor = true // not part of a component's state
	tok := visibilityProducer{}.CaptureExistingState(n).(visibilityToken)
	if !tok.hidden || tok.hiddenInEditor {
		t.Errorf("token = %+v, want hidden only", tok)
	}
}

func TestVisibilityCaptureUnknownKindDefaults(t *testing.T) {
	n := NewContainer("group")
	n.Hidden = true
	n.HiddenInEditor = true
	tok := visibilityProducer{}.CaptureExistingState(n).(visibilityToken)
	if tok.hidden || tok.hiddenInEditor {
		t.Errorf("unknown kind token = %+v, want zero", tok)
	}
}

// --- Restore ---

func TestVisibilityRestoreActor(t *testing.T) {
	n := NewActor("a")
	visibilityToken{hidden: true, hiddenInEditor: true}.Restore(n)
	if !n.Hidden || !n.HiddenInEditor {
		t.Error("actor should get both flags back")
	}
}

func TestVisibilityRestoreComponentLeavesEditorFlag(t *testing.T) {
	n := NewComponent("c")
	visibilityToken{hidden: true, hiddenInEditor: true}.Restore(n)
	if !n.Hidden {
		t.Error("Hidden should be restored")
	}
	if n.HiddenInEditor {
		t.Error("component editor flag should not be written")
	}
}

func TestVisibilityRestoreDeadNode(t *testing.T) {
	n := NewActor("a")
	n.Dispose()
	visibilityToken{hidden: true}.Restore(n) // must not panic
	visibilityToken{hidden: true}.Restore(nil)
	if n.Hidden {
		t.Error("disposed node should not be written")
	}
}

// --- Apply ---

func TestApplyVisibilityOutsidePIE(t *testing.T) {
	n := NewActor("a")
	applyVisibility(n, false, false)
	if !n.Hidden || !n.HiddenInEditor {
		t.Error("outside PIE both flags should be set")
	}
}

func TestApplyVisibilityInPIESkipsEditorFlag(t *testing.T) {
	n := NewActor("a")
	applyVisibility(n, false, true)
	if !n.Hidden {
		t.Error("Hidden should be set")
	}
	if n.HiddenInEditor {
		t.Error("editor flag should not be touched in PIE")
	}
}

func TestApplyVisibilityContainerIgnored(t *testing.T) {
	n := NewContainer("group")
	applyVisibility(n, false, false)
	if n.Hidden {
		t.Error("containers carry no visibility state")
	}
}

// --- Execute ---

func TestExecuteCapturesEditorFlagEvenInPIE(t *testing.T) {
	p := newFakePlayer()
	p.pie = true
	n := NewActor("a")
	n.HiddenInEditor = true
	p.bindings.Bind(testOperand, n)

	ExecutionToken{Kind: TokenSetVisibility, Visible: false}.Execute(testOperand, PersistentData{}, p)

	if !n.Hidden {
		t.Error("Hidden should be set")
	}
	// Flip the editor flag externally; restore must bring back the captured value.
	n.HiddenInEditor = false
	p.state.RestoreAllAndClear()
	if !n.HiddenInEditor {
		t.Error("editor flag is captured regardless of PIE and should be restored")
	}
	if n.Hidden {
		t.Error("Hidden should be restored to false")
	}
}

func TestExecuteManyObjects(t *testing.T) {
	p := newFakePlayer()
	actor := NewActor("a")
	comp := NewComponent("c")
	p.bindings.Bind(testOperand, actor, comp)

	ExecutionToken{Kind: TokenSetVisibility, Visible: false}.Execute(testOperand, PersistentData{}, p)

	if !actor.Hidden || !comp.Hidden {
		t.Error("every bound node should be hidden")
	}
	if p.state.Len() != 2 {
		t.Errorf("store Len = %d, want 2", p.state.Len())
	}
}

func TestExecuteNothingBound(t *testing.T) {
	p := newFakePlayer()
	ExecutionToken{Kind: TokenSetVisibility}.Execute(testOperand, PersistentData{}, p)
	if p.state.Len() != 0 {
		t.Error("nothing bound should capture nothing")
	}
}

func TestExecuteSkipsDisposed(t *testing.T) {
	p := newFakePlayer()
	dead := NewActor("dead")
	live := NewActor("live")
	p.bindings.Bind(testOperand, dead, live)
	dead.Dispose()

	ExecutionToken{Kind: TokenSetVisibility, Visible: false}.Execute(testOperand, PersistentData{}, p)

	if !live.Hidden {
		t.Error("live node should be hidden")
	}
	if dead.Hidden {
		t.Error("disposed node should not be mutated")
	}
	if p.state.Len() != 1 {
		t.Errorf("store Len = %d, want 1", p.state.Len())
	}
}

func TestExecuteRestoreStateCapturesEntity(t *testing.T) {
	p := newFakePlayer()
	n := NewActor("a")
	p.bindings.Bind(testOperand, n)
	entity := NewEntityKey()

	ExecutionToken{Kind: TokenSetVisibility, Visible: false}.Execute(testOperand,
		PersistentData{Entity: entity, Completion: CompletionRestoreState}, p)

	h := WeakHandle(n)
	if !p.state.ContainsForEntity(entity, h, VisibilityAnimType) {
		t.Error("restore-state section should capture in its own scope")
	}
	if !p.state.Contains(h, VisibilityAnimType) {
		t.Error("session-wide capture should also happen")
	}
}

func TestExecuteKeepStateSkipsEntity(t *testing.T) {
	p := newFakePlayer()
	n := NewActor("a")
	p.bindings.Bind(testOperand, n)
	entity := NewEntityKey()

	ExecutionToken{Kind: TokenSetVisibility, Visible: false}.Execute(testOperand,
		PersistentData{Entity: entity, Completion: CompletionKeepState}, p)

	if p.state.ContainsForEntity(entity, WeakHandle(n), VisibilityAnimType) {
		t.Error("keep-state section should not capture in its own scope")
	}
}

func TestExecuteAlpha(t *testing.T) {
	p := newFakePlayer()
	n := NewComponent("c")
	n.Alpha = 0.8
	p.bindings.Bind(testOperand, n)

	ExecutionToken{Kind: TokenSetAlpha, Alpha: 1.5}.Execute(testOperand, PersistentData{}, p)
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want clamped 1", n.Alpha)
	}
	if !p.state.Contains(WeakHandle(n), AlphaAnimType) {
		t.Error("alpha should be captured under AlphaAnimType")
	}
	p.state.RestoreAllAndClear()
	if n.Alpha != 0.8 {
		t.Errorf("Alpha = %v after restore, want 0.8", n.Alpha)
	}
}
