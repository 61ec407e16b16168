package automaton

import "testing"

func TestValidateEmptyStates(t *testing.T) {
	a := New()
	diags := Validate(a)
	if len(diags) != 1 || diags[0].Code != CodeEmptyStates {
		t.Fatalf("expected a single EMPTY_STATES diagnostic, got %v", diags)
	}
}

// TestValidateInvalidTransitionDest mirrors spec scenario S5.
func TestValidateInvalidTransitionDest(t *testing.T) {
	a := New()
	a.AddState("q0")
	a.AddState("q1")
	a.AddSymbol("a")
	a.SetInitial("q0")
	a.AddTransition("q0", "a", "q5")

	diags := Validate(a)
	var found bool
	for _, d := range diags {
		if d.Code == CodeInvalidTransitionDest {
			found = true
			if d.Highlight == nil || d.Highlight.To != "q5" {
				t.Errorf("expected highlight pointing at q5, got %v", d.Highlight)
			}
		}
	}
	if !found {
		t.Errorf("expected INVALID_TRANSITION_DEST among %v", diags)
	}
}

func TestValidateCleanAutomatonHasNoErrors(t *testing.T) {
	a := buildDFA()
	diags := Validate(a)
	for _, d := range diags {
		if d.Severity == SeverityError {
			t.Errorf("unexpected error diagnostic on a well-formed DFA: %v", d)
		}
	}
}

func TestValidateDetectsDuplicateTransition(t *testing.T) {
	a := buildDFA()
	a.AddTransition("q0", "a", "q0")

	diags := Validate(a)
	var found bool
	for _, d := range diags {
		if d.Code == CodeDuplicateTransition {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DUPLICATE_TRANSITION among %v", diags)
	}
}

func TestValidateIsStable(t *testing.T) {
	a := buildDFA()
	a.AddState("unreachable")
	first := Validate(a)
	second := Validate(a)
	if len(first) != len(second) {
		t.Errorf("expected Validate to be stable across repeated calls, got %d then %d", len(first), len(second))
	}
}

func TestAnalyzeReportsUnreachableAndDead(t *testing.T) {
	a := buildDFA()
	a.AddState("island")
	info := Analyze(a)
	if len(info.Unreachable) != 1 || info.Unreachable[0] != "island" {
		t.Errorf("expected Analyze to report 'island' as unreachable, got %v", info.Unreachable)
	}
	if len(info.Dead) != 1 || info.Dead[0] != "island" {
		t.Errorf("expected Analyze to report 'island' as dead, got %v", info.Dead)
	}
}
