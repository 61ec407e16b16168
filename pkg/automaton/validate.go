package automaton

import "fmt"

// Validate runs the ordered structural checks of spec.md §4.4 and
// returns every Diagnostic found. It never panics and never returns a
// bare error: malformed input is always expressed as a Diagnostic
// (spec.md §4.8, P6: the validator is total and stable).
//
// Checks run in order, with an early exit when a check invalidates
// everything after it:
//  1. well-formedness (I1-I3) — if Q is empty, return immediately
//  2. determinism
//  3. completeness, only when deterministic
//  4. reachability (warning)
//  5. liveness (warning)
func Validate(a *Automaton) []Diagnostic {
	var diags []Diagnostic

	if len(a.States) == 0 {
		diags = append(diags, Diagnostic{
			Message:  "the automaton has no states",
			Code:     CodeEmptyStates,
			Severity: SeverityError,
		})
		return diags
	}
	if len(a.Alphabet) == 0 {
		diags = append(diags, Diagnostic{
			Message:  "the automaton has an empty alphabet",
			Code:     CodeEmptyAlphabet,
			Severity: SeverityError,
		})
	}

	states := make(map[string]bool, len(a.States))
	for _, s := range a.States {
		states[s] = true
	}
	alphabet := make(map[string]bool, len(a.Alphabet))
	for _, s := range a.Alphabet {
		alphabet[s] = true
		if IsEpsilon(s) {
			diags = append(diags, Diagnostic{
				Message:   fmt.Sprintf("alphabet symbol %q is an epsilon-marker", s),
				Code:      CodeInvalidSymbol,
				Severity:  SeverityError,
				Highlight: &Highlight{Type: HighlightSymbol, AlphabetSymbol: s},
			})
		}
	}

	if a.Initial == "" || !states[a.Initial] {
		diags = append(diags, Diagnostic{
			Message:  fmt.Sprintf("initial state %q is not a declared state", a.Initial),
			Code:     CodeInvalidInitial,
			Severity: SeverityError,
			Highlight: &Highlight{Type: HighlightInitial, StateID: a.Initial},
		})
	}

	for _, acc := range a.Accepting {
		if !states[acc] {
			diags = append(diags, Diagnostic{
				Message:  fmt.Sprintf("accepting state %q is not a declared state", acc),
				Code:     CodeInvalidAccept,
				Severity: SeverityError,
				Highlight: &Highlight{Type: HighlightAcceptState, StateID: acc},
			})
		}
	}

	for _, t := range a.Transitions {
		if !states[t.From] {
			diags = append(diags, Diagnostic{
				Message:  fmt.Sprintf("transition from %q references an undeclared state", t.From),
				Code:     CodeInvalidTransitionSource,
				Severity: SeverityError,
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, Symbol: t.Symbol, To: t.To},
			})
		}
		if !states[t.To] {
			diags = append(diags, Diagnostic{
				Message:  fmt.Sprintf("transition to %q references an undeclared state", t.To),
				Code:     CodeInvalidTransitionDest,
				Severity: SeverityError,
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, Symbol: t.Symbol, To: t.To},
			})
		}
		if !IsEpsilon(t.Symbol) && !alphabet[t.Symbol] {
			diags = append(diags, Diagnostic{
				Message:  fmt.Sprintf("transition symbol %q is not in the alphabet", t.Symbol),
				Code:     CodeInvalidSymbol,
				Severity: SeverityError,
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, Symbol: t.Symbol, To: t.To},
			})
		}
	}

	// A well-formedness error makes determinism/completeness/reachability
	// checks meaningless against dangling references; stop here.
	if hasError(diags) {
		return diags
	}

	// 2. Determinism. Epsilon-transitions and multiple transitions on the
	// same (state, symbol) are exactly how non-determinism is expressed in
	// this model (§3.1) — they are only a fault relative to a caller's
	// configured expected_type (§7 "Typing errors … when the caller
	// required otherwise"), never unconditionally. is_valid_fsa-style
	// well-formedness does not check determinism at all, so these findings
	// are carried as warnings here; the correction pipeline gates on them
	// itself when expected_type demands a DFA.
	seen := make(map[[2]string]bool, len(a.Transitions))
	sawEpsilon := false
	for _, t := range a.Transitions {
		if IsEpsilon(t.Symbol) {
			sawEpsilon = true
			continue
		}
		key := [2]string{t.From, t.Symbol}
		if seen[key] {
			diags = append(diags, Diagnostic{
				Message:  fmt.Sprintf("state %q has more than one transition on %q", t.From, t.Symbol),
				Code:     CodeDuplicateTransition,
				Severity: SeverityWarning,
				Highlight: &Highlight{Type: HighlightTransition, From: t.From, Symbol: t.Symbol, To: t.To},
			})
		}
		seen[key] = true
	}
	if sawEpsilon {
		diags = append(diags, Diagnostic{
			Message:  "the automaton has epsilon-transitions and is not deterministic",
			Code:     CodeNotDeterministic,
			Severity: SeverityWarning,
		})
	}
	deterministic := !sawEpsilon && !hasDuplicateTransitions(diags)

	// 3. Completeness, only meaningful for a deterministic automaton
	// (spec.md §9 open question (b): completeness implies determinism).
	if deterministic {
		for _, s := range a.States {
			for _, sym := range a.Alphabet {
				if !seen[[2]string{s, sym}] {
					diags = append(diags, Diagnostic{
						Message:  fmt.Sprintf("state %q has no transition on %q", s, sym),
						Code:     CodeMissingTransition,
						Severity: SeverityWarning,
						Highlight: &Highlight{Type: HighlightState, StateID: s},
					})
				}
			}
		}
	}

	// 4. Reachability.
	for _, s := range a.UnreachableStates() {
		diags = append(diags, Diagnostic{
			Message:  fmt.Sprintf("state %q is not reachable from the initial state", s),
			Code:     CodeUnreachableState,
			Severity: SeverityWarning,
			Highlight: &Highlight{Type: HighlightState, StateID: s},
		})
	}

	// 5. Liveness.
	for _, s := range a.DeadStates() {
		diags = append(diags, Diagnostic{
			Message:  fmt.Sprintf("state %q cannot reach any accepting state", s),
			Code:     CodeDeadState,
			Severity: SeverityWarning,
			Highlight: &Highlight{Type: HighlightState, StateID: s},
		})
	}

	return diags
}

func hasError(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func hasDuplicateTransitions(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Code == CodeDuplicateTransition {
			return true
		}
	}
	return false
}

// Analyze computes the StructuralInfo derived-property summary
// (spec.md §4.4 "derived StructuralInfo"). It is safe to call on any
// automaton, valid or not, since it only reports on what the data
// actually contains.
func Analyze(a *Automaton) *StructuralInfo {
	return &StructuralInfo{
		IsDeterministic: a.IsDeterministic(),
		IsComplete:      a.IsComplete(),
		NumStates:       len(a.States),
		NumTransitions:  len(a.Transitions),
		Unreachable:     a.UnreachableStates(),
		Dead:            a.DeadStates(),
	}
}
