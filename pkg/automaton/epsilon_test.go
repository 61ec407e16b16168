package automaton

import "testing"

func buildEpsilonNFA() *Automaton {
	a := New()
	for _, s := range []string{"q0", "q1", "q2"} {
		a.AddState(s)
	}
	a.AddSymbol("a")
	a.SetInitial("q0")
	a.SetAccepting([]string{"q2"})
	a.AddTransition("q0", "ε", "q1")
	a.AddTransition("q1", "a", "q2")
	return a
}

func TestEpsilonClosureIncludesSelf(t *testing.T) {
	a := buildEpsilonNFA()
	closure := EpsilonClosure(a, []string{"q2"})
	if len(closure) != 1 || closure[0] != "q2" {
		t.Errorf("expected closure of q2 to be [q2], got %v", closure)
	}
}

func TestEpsilonClosureFollowsEpsilon(t *testing.T) {
	a := buildEpsilonNFA()
	closure := EpsilonClosure(a, []string{"q0"})
	want := map[string]bool{"q0": true, "q1": true}
	if len(closure) != len(want) {
		t.Fatalf("expected closure of size %d, got %v", len(want), closure)
	}
	for _, s := range closure {
		if !want[s] {
			t.Errorf("unexpected state %q in closure", s)
		}
	}
}

func TestEpsilonClosureMonotone(t *testing.T) {
	a := buildEpsilonNFA()
	small := EpsilonClosure(a, []string{"q1"})
	large := EpsilonClosure(a, []string{"q0", "q1"})
	smallSet := make(map[string]bool, len(small))
	for _, s := range small {
		smallSet[s] = true
	}
	for s := range smallSet {
		found := false
		for _, t := range large {
			if t == s {
				found = true
			}
		}
		if !found {
			t.Errorf("closure({q1}) ⊆ closure({q0,q1}) violated: %q missing from %v", s, large)
		}
	}
}

func TestEpsilonChainOfThreeForms(t *testing.T) {
	a := New()
	for _, s := range []string{"q0", "q1", "q2", "q3"} {
		a.AddState(s)
	}
	a.SetInitial("q0")
	a.AddTransition("q0", "ε", "q1")
	a.AddTransition("q1", "epsilon", "q2")
	a.AddTransition("q2", "", "q3")

	closure := EpsilonClosure(a, []string{"q0"})
	if len(closure) != 4 {
		t.Errorf("expected all three epsilon forms to chain, got %v", closure)
	}
}
