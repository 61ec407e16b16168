// Package fixture loads and serializes automata as JSON for tests and
// the fsagrade developer CLI. It is not the wire format of a grading
// service — that transport layer is an explicit external collaborator
// (spec.md §6) — but a local convenience for getting an Automaton in
// and out of a file.
package fixture

import (
	"encoding/json"

	"github.com/ha1tch/fsagrade/pkg/automaton"
)

// jsonAutomaton is the on-disk representation of an Automaton.
type jsonAutomaton struct {
	Type        string           `json:"type,omitempty"`
	Name        string           `json:"name,omitempty"`
	States      []string         `json:"states"`
	Alphabet    []string         `json:"alphabet"`
	Initial     string           `json:"initial"`
	Accepting   []string         `json:"accepting"`
	Transitions []jsonTransition `json:"transitions"`
}

type jsonTransition struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// Parse decodes an Automaton from JSON (spec.md §6.2 ingest format).
func Parse(data []byte) (*automaton.Automaton, error) {
	var j jsonAutomaton
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}

	a := automaton.New()
	for _, s := range j.States {
		a.AddState(s)
	}
	for _, s := range j.Alphabet {
		a.AddSymbol(s)
	}
	a.SetInitial(j.Initial)
	a.SetAccepting(j.Accepting)
	for _, jt := range j.Transitions {
		a.AddTransition(jt.From, jt.Symbol, jt.To)
	}

	return a, nil
}

// Marshal encodes an Automaton as JSON.
func Marshal(a *automaton.Automaton, pretty bool) ([]byte, error) {
	j := jsonAutomaton{
		States:    a.States,
		Alphabet:  a.Alphabet,
		Initial:   a.Initial,
		Accepting: a.Accepting,
	}
	for _, t := range a.Transitions {
		j.Transitions = append(j.Transitions, jsonTransition{
			From:   t.From,
			Symbol: t.Symbol,
			To:     t.To,
		})
	}

	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}
