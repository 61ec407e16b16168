package grading

import (
	"fmt"
	"strings"

	"github.com/ha1tch/fsagrade/pkg/automaton"
)

// successSummary is the congratulatory message for a correct submission
// (spec.md §4.7 step 9), citing the student automaton's state count the
// way the original Python grader's summary does.
func successSummary(student *automaton.Automaton) string {
	return fmt.Sprintf("Correct! Your %d-state automaton accepts the same language as the reference.", len(student.States))
}

// failureSummary classifies the accumulated diagnostics into the four
// buckets a student can act on: alphabet, accepting states, transition,
// state structure — mirroring correction.py's summary_parts grouping.
func failureSummary(diags []automaton.Diagnostic) string {
	if len(diags) == 0 {
		return "Languages differ."
	}

	var alphabet, accepting, transition, structure int
	for _, d := range diags {
		switch d.Code {
		case automaton.CodeInvalidSymbol, automaton.CodeEmptyAlphabet:
			alphabet++
		case automaton.CodeInvalidAccept:
			accepting++
		case automaton.CodeInvalidTransitionSource, automaton.CodeInvalidTransitionDest,
			automaton.CodeInvalidTransitionSymbol, automaton.CodeMissingTransition,
			automaton.CodeDuplicateTransition:
			transition++
		case automaton.CodeLanguageMismatch:
			if d.Highlight != nil && d.Highlight.Type == automaton.HighlightTransition {
				transition++
			} else {
				accepting++
			}
		default:
			structure++
		}
	}

	var parts []string
	if alphabet > 0 {
		parts = append(parts, fmt.Sprintf("%d alphabet issue(s)", alphabet))
	}
	if accepting > 0 {
		parts = append(parts, fmt.Sprintf("%d accepting-state issue(s)", accepting))
	}
	if transition > 0 {
		parts = append(parts, fmt.Sprintf("%d transition issue(s)", transition))
	}
	if structure > 0 {
		parts = append(parts, fmt.Sprintf("%d state-structure issue(s)", structure))
	}
	if len(parts) == 0 {
		return "Languages differ."
	}
	return "Your FSA does not match the reference: " + strings.Join(parts, "; ")
}

// collectHints gathers every diagnostic's non-empty suggestion, in order,
// without duplicates.
func collectHints(diags []automaton.Diagnostic) []string {
	seen := make(map[string]bool)
	var hints []string
	for _, d := range diags {
		if d.Suggestion == "" || seen[d.Suggestion] {
			continue
		}
		seen[d.Suggestion] = true
		hints = append(hints, d.Suggestion)
	}
	return hints
}

// structuralHints renders detailed-verbosity remarks about unreachable
// and dead states (spec.md §4.7 step 10).
func structuralHints(info *automaton.StructuralInfo) []string {
	var hints []string
	if len(info.Unreachable) > 0 {
		hints = append(hints, fmt.Sprintf("unreachable from the initial state: %s", strings.Join(info.Unreachable, ", ")))
	}
	if len(info.Dead) > 0 {
		hints = append(hints, fmt.Sprintf("cannot reach an accepting state: %s", strings.Join(info.Dead, ", ")))
	}
	return hints
}

func stripHighlights(diags []automaton.Diagnostic) []automaton.Diagnostic {
	out := make([]automaton.Diagnostic, len(diags))
	for i, d := range diags {
		d.Highlight = nil
		out[i] = d
	}
	return out
}
