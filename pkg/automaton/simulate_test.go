package automaton

import "testing"

func TestSimulateAcceptsAndRejects(t *testing.T) {
	a := buildDFA()
	for _, tc := range []struct {
		word   []string
		accept bool
	}{
		{[]string{"a"}, true},
		{[]string{"b", "a"}, true},
		{[]string{"b"}, false},
		{[]string{}, false},
	} {
		accepted, _, fault := Simulate(a, tc.word)
		if fault != nil {
			t.Fatalf("unexpected fault simulating %v: %v", tc.word, fault)
		}
		if accepted != tc.accept {
			t.Errorf("Simulate(%v) = %v, want %v", tc.word, accepted, tc.accept)
		}
	}
}

func TestSimulateInvalidSymbol(t *testing.T) {
	a := buildDFA()
	_, _, fault := Simulate(a, []string{"z"})
	if fault == nil || fault.Code != CodeInvalidSymbol {
		t.Fatalf("expected INVALID_SYMBOL, got %v", fault)
	}
}

func TestSimulateEpsilonAware(t *testing.T) {
	a := buildEpsilonNFA()
	accepted, trace, fault := Simulate(a, []string{"a"})
	if fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if !accepted {
		t.Errorf("expected epsilon-NFA to accept 'a'")
	}
	if len(trace) != 2 {
		t.Errorf("expected a trace entry for the initial closure and one per symbol, got %v", trace)
	}
}

func TestSimulateStuckReturnsTestCaseFailed(t *testing.T) {
	a := New()
	a.AddState("q0")
	a.AddSymbol("a")
	a.SetInitial("q0")
	// no transitions at all: any symbol gets stuck immediately.

	_, _, fault := Simulate(a, []string{"a"})
	if fault == nil || fault.Code != CodeTestCaseFailed {
		t.Fatalf("expected TEST_CASE_FAILED, got %v", fault)
	}
}

func TestRunnerStepMatchesSimulate(t *testing.T) {
	a := buildDFA()
	r := NewRunner(a)
	if fault := r.Run([]string{"b", "a"}); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if !r.IsAccepting() {
		t.Errorf("expected runner to be in an accepting state after 'ba'")
	}
	if len(r.History()) != 2 {
		t.Errorf("expected 2 recorded steps, got %d", len(r.History()))
	}
}

func TestRunnerReset(t *testing.T) {
	a := buildDFA()
	r := NewRunner(a)
	r.Run([]string{"a"})
	r.Reset()
	if r.CurrentState() != a.Initial {
		t.Errorf("expected Reset to return to the initial state, got %s", r.CurrentState())
	}
	if len(r.History()) != 0 {
		t.Errorf("expected Reset to clear history")
	}
}
