package grading

import (
	"sort"
	"strings"

	"github.com/ha1tch/fsagrade/pkg/automaton"
)

// findCounterexample enumerates strings over the reference's alphabet in
// length-lex order up to maxLength and returns the first one on which
// student and reference disagree (spec.md §9 "Counterexample strings").
// This is a supplementary check only: the canonical BFS isomorphism in
// automaton.SameLanguage is the sole equivalence criterion, since
// enumeration is incomplete on infinite languages.
func findCounterexample(student, reference *automaton.Automaton, maxLength int) (string, automaton.CounterexamplePolarity, bool) {
	symbols := append([]string(nil), reference.Alphabet...)
	sort.Strings(symbols)
	if len(symbols) == 0 {
		return "", "", false
	}

	for length := 0; length <= maxLength; length++ {
		found, w, refAccepts := searchLength(student, reference, symbols, length)
		if found {
			polarity := automaton.ShouldReject
			if refAccepts {
				polarity = automaton.ShouldAccept
			}
			return w, polarity, true
		}
	}
	return "", "", false
}

// searchLength walks every string of the given length over symbols, in
// lexicographic order, stopping at the first disagreement.
func searchLength(student, reference *automaton.Automaton, symbols []string, length int) (found bool, w string, refAccepts bool) {
	indices := make([]int, length)
	for {
		word := make([]string, length)
		for i, idx := range indices {
			word[i] = symbols[idx]
		}

		studentAccepts := automaton.Accepts(student, word)
		referenceAccepts := automaton.Accepts(reference, word)
		if studentAccepts != referenceAccepts {
			return true, strings.Join(word, ""), referenceAccepts
		}

		if !incrementCounter(indices, len(symbols)) {
			return false, "", false
		}
	}
}

// incrementCounter advances indices as a base-`base` odometer. It returns
// true when it advanced, and false once it wraps around (meaning every
// combination of this length is done).
func incrementCounter(indices []int, base int) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < base {
			return true
		}
		indices[i] = 0
	}
	return false
}
