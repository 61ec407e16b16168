package automaton

import (
	"sort"
	"strings"
)

// Simulate decides membership of symbols in L(a) with ε-support
// (spec.md §4.5). It never returns a Go error: an invalid symbol or a
// stuck automaton surfaces as a Diagnostic, exactly as every other
// semantic fault in this package does. trace records the state set
// visited after each symbol, starting with the ε-closure of the initial
// state, for use in TestResult.Trace.
func Simulate(a *Automaton, symbols []string) (accepted bool, trace []string, fault *Diagnostic) {
	cache := newClosureCache(a)
	current := cache.closureOfSet(map[string]bool{a.Initial: true})
	trace = []string{formatStateSet(setToSlice(current))}

	for _, sym := range symbols {
		if a.SymbolIndex(sym) < 0 {
			return false, trace, &Diagnostic{
				Message:   "string contains a symbol outside the alphabet: " + sym,
				Code:      CodeInvalidSymbol,
				Severity:  SeverityError,
				Highlight: &Highlight{Type: HighlightSymbol, AlphabetSymbol: sym},
			}
		}

		next := make(map[string]bool)
		for q := range current {
			for _, t := range a.TransitionsFrom(q, sym) {
				next[t.To] = true
			}
		}
		if len(next) == 0 {
			return false, trace, &Diagnostic{
				Message:  "no transition available, simulation is stuck",
				Code:     CodeTestCaseFailed,
				Severity: SeverityError,
			}
		}

		current = cache.closureOfSet(next)
		trace = append(trace, formatStateSet(setToSlice(current)))
	}

	for q := range current {
		if a.IsAccepting(q) {
			return true, trace, nil
		}
	}
	return false, trace, nil
}

// Accepts is the boolean-only convenience form of Simulate.
func Accepts(a *Automaton, symbols []string) bool {
	accepted, _, _ := Simulate(a, symbols)
	return accepted
}

// SimulateString is Simulate over a string whose alphabet symbols are
// single runes, the common case for textbook exercises.
func SimulateString(a *Automaton, s string) (accepted bool, trace []string, fault *Diagnostic) {
	symbols := make([]string, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, string(r))
	}
	return Simulate(a, symbols)
}

// Runner drives an automaton interactively, one symbol at a time. For
// NFAs it tracks the full current state set, exactly as Simulate does in
// one shot; Runner exists for callers that want to inspect intermediate
// state (an interactive trace viewer, a step debugger).
type Runner struct {
	a        *Automaton
	closures *closureCache
	current  map[string]bool
	history  []RunnerStep
}

// RunnerStep records one step of interactive execution.
type RunnerStep struct {
	FromStates []string
	Symbol     string
	ToStates   []string
}

// NewRunner starts a Runner at the ε-closure of a's initial state.
func NewRunner(a *Automaton) *Runner {
	r := &Runner{
		a:        a,
		closures: newClosureCache(a),
		history:  make([]RunnerStep, 0),
	}
	r.current = r.closures.closureOfSet(map[string]bool{a.Initial: true})
	return r
}

// CurrentStates returns the current state set as a sorted slice.
func (r *Runner) CurrentStates() []string {
	return setToSlice(r.current)
}

// CurrentState formats the current state set the way trace strings do:
// a bare id for a DFA-shaped single state, braces for an NFA state set.
func (r *Runner) CurrentState() string {
	return formatStateSet(r.CurrentStates())
}

// IsAccepting reports whether any current state is accepting.
func (r *Runner) IsAccepting() bool {
	for s := range r.current {
		if r.a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// Step consumes one symbol. It returns a Diagnostic, never an error, on
// an out-of-alphabet symbol or a stuck transition, leaving the runner's
// current state set unchanged so the caller can retry or inspect it.
func (r *Runner) Step(symbol string) *Diagnostic {
	if r.a.SymbolIndex(symbol) < 0 {
		return &Diagnostic{
			Message:   "string contains a symbol outside the alphabet: " + symbol,
			Code:      CodeInvalidSymbol,
			Severity:  SeverityError,
			Highlight: &Highlight{Type: HighlightSymbol, AlphabetSymbol: symbol},
		}
	}

	fromStates := r.CurrentStates()
	next := make(map[string]bool)
	for q := range r.current {
		for _, t := range r.a.TransitionsFrom(q, symbol) {
			next[t.To] = true
		}
	}
	if len(next) == 0 {
		return &Diagnostic{
			Message:  "no transition available, simulation is stuck",
			Code:     CodeTestCaseFailed,
			Severity: SeverityError,
		}
	}

	r.current = r.closures.closureOfSet(next)
	r.history = append(r.history, RunnerStep{
		FromStates: fromStates,
		Symbol:     symbol,
		ToStates:   r.CurrentStates(),
	})
	return nil
}

// Run consumes a sequence of symbols, stopping at the first fault.
func (r *Runner) Run(symbols []string) *Diagnostic {
	for _, sym := range symbols {
		if fault := r.Step(sym); fault != nil {
			return fault
		}
	}
	return nil
}

// Reset returns the runner to the ε-closure of the initial state.
func (r *Runner) Reset() {
	r.current = r.closures.closureOfSet(map[string]bool{r.a.Initial: true})
	r.history = make([]RunnerStep, 0)
}

// History returns every step taken since the last Reset.
func (r *Runner) History() []RunnerStep {
	return r.history
}

func setToSlice(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Strings(ids)
	return ids
}

func formatStateSet(ids []string) string {
	if len(ids) == 1 {
		return ids[0]
	}
	return "{" + strings.Join(ids, ",") + "}"
}
