package automaton

import "fmt"

// SameLanguage decides whether a and b accept the same language
// (spec.md §4.6). Non-DFA inputs are converted with ToDFA, both results
// are minimized with Minimize, and the comparison runs as a canonical
// BFS isomorphism over the two minimal DFAs. Minimal DFAs of the same
// language are unique up to renaming, so the BFS either completes a
// bijection or witnesses the exact point of divergence; the returned
// diagnostics are that witness. The language is equivalent iff the
// returned slice is empty.
func SameLanguage(a, b *Automaton) []Diagnostic {
	da, db := toMinimalDFA(a), toMinimalDFA(b)
	return canonicalIsomorphism(da, db)
}

func toMinimalDFA(a *Automaton) *Automaton {
	if !a.IsDeterministic() {
		a = a.ToDFA()
	}
	return a.Minimize()
}

func canonicalIsomorphism(a, b *Automaton) []Diagnostic {
	var diags []Diagnostic

	if !sameAlphabet(a, b) {
		return []Diagnostic{{
			Message:  fmt.Sprintf("alphabets differ: student has %v, reference has %v", a.Alphabet, b.Alphabet),
			Code:     CodeLanguageMismatch,
			Severity: SeverityError,
		}}
	}
	if len(a.States) != len(b.States) {
		direction := "more"
		if len(a.States) < len(b.States) {
			direction = "fewer"
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("minimized automaton has %s states than the reference (%d vs %d)", direction, len(a.States), len(b.States)),
			Code:     CodeLanguageMismatch,
			Severity: SeverityError,
		}}
	}

	type pair struct{ s, t string }
	phi := map[string]string{a.Initial: b.Initial}
	invPhi := map[string]string{b.Initial: a.Initial}
	queue := []pair{{a.Initial, b.Initial}}
	visited := map[pair]bool{{a.Initial, b.Initial}: true}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		s, t := p.s, p.t

		if a.IsAccepting(s) && !b.IsAccepting(t) {
			diags = append(diags, Diagnostic{
				Message:    fmt.Sprintf("state %q accepts but its counterpart in the reference does not", s),
				Code:       CodeLanguageMismatch,
				Severity:   SeverityError,
				Highlight:  &Highlight{Type: HighlightState, StateID: s},
				Suggestion: fmt.Sprintf("remove %q from the accept states", s),
			})
		} else if !a.IsAccepting(s) && b.IsAccepting(t) {
			diags = append(diags, Diagnostic{
				Message:    fmt.Sprintf("state %q does not accept but its counterpart in the reference does", s),
				Code:       CodeLanguageMismatch,
				Severity:   SeverityError,
				Highlight:  &Highlight{Type: HighlightState, StateID: s},
				Suggestion: fmt.Sprintf("add %q to the accept states", s),
			})
		}

		for _, sym := range a.Alphabet {
			sPrime := singleTarget(a, s, sym)
			tPrime := singleTarget(b, t, sym)

			if sPrime == "" && tPrime != "" {
				diags = append(diags, Diagnostic{
					Message:    fmt.Sprintf("state %q has no transition on %q, but the reference does", s, sym),
					Code:       CodeLanguageMismatch,
					Severity:   SeverityError,
					Highlight:  &Highlight{Type: HighlightTransition, From: s, Symbol: sym},
					Suggestion: fmt.Sprintf("add a transition from %q on %q", s, sym),
				})
				continue
			}
			if sPrime != "" && tPrime == "" {
				diags = append(diags, Diagnostic{
					Message:    fmt.Sprintf("state %q has an unexpected transition on %q that the reference does not define", s, sym),
					Code:       CodeLanguageMismatch,
					Severity:   SeverityError,
					Highlight:  &Highlight{Type: HighlightTransition, From: s, Symbol: sym, To: sPrime},
					Suggestion: "remove this transition or redirect it to match the reference language",
				})
				continue
			}
			if sPrime == "" {
				continue
			}

			if existing, mapped := phi[sPrime]; !mapped {
				phi[sPrime] = tPrime
				invPhi[tPrime] = sPrime
				key := pair{sPrime, tPrime}
				if !visited[key] {
					visited[key] = true
					queue = append(queue, key)
				}
			} else if existing != tPrime {
				expected := tPrime
				if known, ok := invPhi[tPrime]; ok {
					expected = known
				}
				diags = append(diags, Diagnostic{
					Message:    fmt.Sprintf("transition on %q from state %q leads to a different state than expected", sym, s),
					Code:       CodeLanguageMismatch,
					Severity:   SeverityError,
					Highlight:  &Highlight{Type: HighlightTransition, From: s, Symbol: sym, To: sPrime},
					Suggestion: fmt.Sprintf("change the destination of this transition to %q", expected),
				})
			}
		}
	}

	return diags
}

func sameAlphabet(a, b *Automaton) bool {
	if len(a.Alphabet) != len(b.Alphabet) {
		return false
	}
	want := make(map[string]bool, len(a.Alphabet))
	for _, s := range a.Alphabet {
		want[s] = true
	}
	for _, s := range b.Alphabet {
		if !want[s] {
			return false
		}
	}
	return true
}

// singleTarget returns δ(state, sym) on a deterministic automaton, or ""
// if undefined.
func singleTarget(a *Automaton, state, sym string) string {
	ts := a.TransitionsFrom(state, sym)
	if len(ts) == 0 {
		return ""
	}
	return ts[0].To
}

// Equivalent synthesizes the LanguageComparison the correction pipeline
// attaches to Feedback (spec.md §4.7). It does not itself enumerate a
// counterexample string; that is an optional supplementary step left to
// the caller (spec.md §9).
func Equivalent(a, b *Automaton) (*LanguageComparison, []Diagnostic) {
	diags := SameLanguage(a, b)
	return &LanguageComparison{Equivalent: len(diags) == 0}, diags
}
