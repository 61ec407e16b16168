package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// ToDFA converts an ε-NFA to an equivalent DFA over the same non-ε
// alphabet using the subset (powerset) construction of spec.md §4.2.
// Fresh DFA states are named q0, q1, … in discovery order; q0 is always
// the ε-closure of the original initial state. The input is never
// mutated.
//
// If the alphabet is empty the result is a single state with no
// transitions (§4.2 edge-case policy); if the original's initial state
// alone reaches an accepting state via ε, q0 is accepting.
func (a *Automaton) ToDFA() *Automaton {
	closures := newClosureCache(a)

	dfa := New()
	dfa.Alphabet = append([]string(nil), a.Alphabet...)

	nameOf := make(map[string]string) // frozen NFA-state-set key -> DFA id
	setOf := make(map[string]map[string]bool)

	freeze := func(set map[string]bool) string {
		ids := make([]string, 0, len(set))
		for s := range set {
			ids = append(ids, s)
		}
		sort.Strings(ids)
		return strings.Join(ids, ",")
	}

	initial := closures.closureOfSet(map[string]bool{a.Initial: true})
	initialKey := freeze(initial)
	nameOf[initialKey] = "q0"
	setOf[initialKey] = initial
	dfa.Initial = "q0"

	order := []string{initialKey}
	processed := make(map[string]bool)
	next := 1

	for len(order) > 0 {
		key := order[0]
		order = order[1:]
		if processed[key] {
			continue
		}
		processed[key] = true

		set := setOf[key]
		id := nameOf[key]
		dfa.AddState(id)
		if setContainsAccepting(a, set) {
			dfa.Accepting = append(dfa.Accepting, id)
		}

		for _, sym := range a.Alphabet {
			moved := make(map[string]bool)
			for q := range set {
				for _, t := range a.TransitionsFrom(q, sym) {
					moved[t.To] = true
				}
			}
			if len(moved) == 0 {
				continue // partial DFA is acceptable; completeness is separate
			}
			target := closures.closureOfSet(moved)
			targetKey := freeze(target)

			targetID, known := nameOf[targetKey]
			if !known {
				targetID = "q" + strconv.Itoa(next)
				next++
				nameOf[targetKey] = targetID
				setOf[targetKey] = target
			}
			dfa.AddTransition(id, sym, targetID)

			if !processed[targetKey] {
				order = append(order, targetKey)
			}
		}
	}

	return dfa
}

func setContainsAccepting(a *Automaton, set map[string]bool) bool {
	for s := range set {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}
