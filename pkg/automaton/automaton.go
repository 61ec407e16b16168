// Package automaton implements the core finite-state-automaton model and
// the algorithms that manipulate it: epsilon-closure, subset construction,
// Hopcroft minimization, structural validation, simulation, and
// isomorphism-based language equivalence.
//
// Automata are immutable once built: every transforming operation (ToDFA,
// Minimize) returns a new Automaton owned by its caller rather than
// mutating its input. The package has no package-level state and no
// caches that survive a single call, so it is safe to use concurrently
// from multiple goroutines as long as each goroutine works with its own
// automata.
package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// Type classifies the kind of automaton a caller expects to work with.
type Type string

const (
	TypeDFA Type = "dfa"
	TypeNFA Type = "nfa"
	TypeAny Type = "any"
)

// Transition is a single edge of the automaton's transition relation:
// ⟨From, Symbol, To⟩. Symbol is either a member of the automaton's
// alphabet or an epsilon-marker (see IsEpsilon); non-determinism is
// expressed by several Transitions sharing the same (From, Symbol).
type Transition struct {
	From   string
	Symbol string
	To     string
}

// Automaton is the 5-tuple ⟨Q, Σ, T, q0, F⟩ described in spec.md §3.1.
// State identifiers and alphabet symbols are opaque, caller-supplied
// strings. The zero value is not a valid Automaton; use New.
type Automaton struct {
	States      []string
	Alphabet    []string
	Transitions []Transition
	Initial     string
	Accepting   []string
}

// New returns an empty Automaton ready to be populated with AddState,
// AddSymbol, and AddTransition.
func New() *Automaton {
	return &Automaton{
		States:      make([]string, 0),
		Alphabet:    make([]string, 0),
		Transitions: make([]Transition, 0),
		Accepting:   make([]string, 0),
	}
}

// AddState adds a state to the automaton if it is not already present.
func (a *Automaton) AddState(id string) {
	if a.hasState(id) {
		return
	}
	a.States = append(a.States, id)
}

func (a *Automaton) hasState(id string) bool {
	for _, s := range a.States {
		if s == id {
			return true
		}
	}
	return false
}

// AddSymbol adds a symbol to the alphabet if it is not already present.
// Adding an epsilon-marker here is a caller error that surfaces later as
// an INVALID_SYMBOL diagnostic from Validate, never a panic.
func (a *Automaton) AddSymbol(sym string) {
	for _, s := range a.Alphabet {
		if s == sym {
			return
		}
	}
	a.Alphabet = append(a.Alphabet, sym)
}

// AddTransition appends a transition. Symbol may be an epsilon-marker.
func (a *Automaton) AddTransition(from, symbol, to string) {
	a.Transitions = append(a.Transitions, Transition{From: from, Symbol: symbol, To: to})
}

// SetInitial sets the initial state.
func (a *Automaton) SetInitial(state string) { a.Initial = state }

// SetAccepting replaces the accepting set.
func (a *Automaton) SetAccepting(states []string) { a.Accepting = states }

// IsAccepting reports whether state is in the accepting set.
func (a *Automaton) IsAccepting(state string) bool {
	for _, s := range a.Accepting {
		if s == state {
			return true
		}
	}
	return false
}

// StateIndex returns the index of state in a.States, or -1.
func (a *Automaton) StateIndex(state string) int {
	for i, s := range a.States {
		if s == state {
			return i
		}
	}
	return -1
}

// SymbolIndex returns the index of sym in a.Alphabet, or -1.
func (a *Automaton) SymbolIndex(sym string) int {
	for i, s := range a.Alphabet {
		if s == sym {
			return i
		}
	}
	return -1
}

// TransitionsFrom returns every transition leaving state on the given
// symbol. Pass an epsilon-marker to retrieve epsilon-transitions.
func (a *Automaton) TransitionsFrom(state, symbol string) []Transition {
	var out []Transition
	for _, t := range a.Transitions {
		if t.From == state && t.Symbol == symbol {
			out = append(out, t)
		}
	}
	return out
}

// EpsilonTransitionsFrom returns every epsilon-transition leaving state,
// regardless of which of the three epsilon surface forms it was written with.
func (a *Automaton) EpsilonTransitionsFrom(state string) []Transition {
	var out []Transition
	for _, t := range a.Transitions {
		if t.From == state && IsEpsilon(t.Symbol) {
			out = append(out, t)
		}
	}
	return out
}

// Copy returns a deep copy of the automaton. Algorithms never mutate
// their inputs; every transforming step builds its result with Copy or
// by constructing a fresh Automaton from scratch.
func (a *Automaton) Copy() *Automaton {
	return &Automaton{
		States:      append([]string(nil), a.States...),
		Alphabet:    append([]string(nil), a.Alphabet...),
		Transitions: append([]Transition(nil), a.Transitions...),
		Initial:     a.Initial,
		Accepting:   append([]string(nil), a.Accepting...),
	}
}

// IsDeterministic reports whether the automaton has no epsilon-transitions
// and no state has two transitions on the same symbol.
func (a *Automaton) IsDeterministic() bool {
	seen := make(map[[2]string]bool, len(a.Transitions))
	for _, t := range a.Transitions {
		if IsEpsilon(t.Symbol) {
			return false
		}
		key := [2]string{t.From, t.Symbol}
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// IsComplete reports whether the automaton is deterministic and every
// (state, symbol) pair in Q×Σ has an outgoing transition.
func (a *Automaton) IsComplete() bool {
	if !a.IsDeterministic() {
		return false
	}
	seen := make(map[[2]string]bool, len(a.Transitions))
	for _, t := range a.Transitions {
		seen[[2]string{t.From, t.Symbol}] = true
	}
	for _, s := range a.States {
		for _, sym := range a.Alphabet {
			if !seen[[2]string{s, sym}] {
				return false
			}
		}
	}
	return true
}

// ReachableStates returns the set of states reachable from Initial via
// any transition, epsilon included (BFS, §3.1 "Reachable set").
func (a *Automaton) ReachableStates() map[string]bool {
	reachable := make(map[string]bool)
	if a.Initial == "" {
		return reachable
	}
	queue := []string{a.Initial}
	reachable[a.Initial] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range a.Transitions {
			if t.From == cur && !reachable[t.To] {
				reachable[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	return reachable
}

// LiveStates returns the set of states from which some accepting state is
// reachable (backward BFS from F, §3.1 "Live set").
func (a *Automaton) LiveStates() map[string]bool {
	live := make(map[string]bool, len(a.Accepting))
	queue := make([]string, 0, len(a.Accepting))
	for _, s := range a.Accepting {
		if !live[s] {
			live[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range a.Transitions {
			if t.To == cur && !live[t.From] {
				live[t.From] = true
				queue = append(queue, t.From)
			}
		}
	}
	return live
}

// UnreachableStates returns states not reachable from Initial, sorted.
func (a *Automaton) UnreachableStates() []string {
	reachable := a.ReachableStates()
	var out []string
	for _, s := range a.States {
		if !reachable[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// DeadStates returns states from which no accepting state is reachable,
// sorted. If F is empty, every state is dead (§9 open question (c): this
// is carried as a warning, never an error, by the validator).
func (a *Automaton) DeadStates() []string {
	live := a.LiveStates()
	var out []string
	for _, s := range a.States {
		if !live[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// String renders a short human-readable summary, useful for debug logging
// in cmd/fsagrade.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Automaton states=%v alphabet=%v initial=%s accepting=%v transitions=%d\n",
		a.States, a.Alphabet, a.Initial, a.Accepting, len(a.Transitions))
	return sb.String()
}

// epsilonForms are the three surface forms of the epsilon-marker that
// spec.md §3.1 requires to be treated as equivalent.
var epsilonForms = map[string]bool{
	"ε":       true,
	"epsilon": true,
	"":        true,
}

// IsEpsilon reports whether sym is any of the three epsilon surface
// forms. This predicate is the single boundary at which the three forms
// are folded into one internal concept (§9 design note).
func IsEpsilon(sym string) bool {
	return epsilonForms[sym]
}
