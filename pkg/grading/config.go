// Package grading orchestrates the automaton engine into the grading
// entry point of spec.md §4.7: validate, gate on configured expectations,
// compare languages, and assemble a Feedback a teaching UI can render.
package grading

import "github.com/ha1tch/fsagrade/pkg/automaton"

// EvaluationMode selects how strictly type/minimality/completeness
// failures affect is_correct (spec.md §6.1, §4.7 step 8).
type EvaluationMode string

const (
	ModeStrict  EvaluationMode = "strict"
	ModeLenient EvaluationMode = "lenient"
	ModePartial EvaluationMode = "partial"
)

// Verbosity controls how much of Feedback survives into the final result
// (spec.md §4.7 step 10).
type Verbosity string

const (
	VerbosityMinimal  Verbosity = "minimal"
	VerbosityStandard Verbosity = "standard"
	VerbosityDetailed Verbosity = "detailed"
)

// Config is the grading call's configuration (spec.md §6.1 table).
type Config struct {
	EvaluationMode      EvaluationMode
	ExpectedType        automaton.Type
	FeedbackVerbosity   Verbosity
	CheckMinimality     bool
	CheckCompleteness   bool
	HighlightErrors     bool
	ShowCounterexample  bool
	MaxTestLength       int

	// TestCases, when non-empty, are (input, expected) pairs run through
	// C6 so partial-credit scoring and TestResults have something to
	// report (spec.md §4.7 step 8, step 10). Absent in strict/lenient
	// grading of structure-only exercises.
	TestCases []TestCase
}

// TestCase is one student-facing example string with its expected verdict.
type TestCase struct {
	Input    string
	Expected bool
}

// DefaultConfig mirrors the defaults an instructor gets without touching
// any option: strict grading of a DFA, standard verbosity, highlights on,
// no counterexample search.
func DefaultConfig() Config {
	return Config{
		EvaluationMode:     ModeStrict,
		ExpectedType:       automaton.TypeDFA,
		FeedbackVerbosity:  VerbosityStandard,
		CheckMinimality:    false,
		CheckCompleteness:  false,
		HighlightErrors:    true,
		ShowCounterexample: false,
		MaxTestLength:      10,
	}
}
