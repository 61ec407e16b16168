package grading

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ha1tch/fsagrade/pkg/automaton"
)

// GradeResult is the entry point's return value (spec.md §6.1).
type GradeResult struct {
	IsCorrect bool
	Feedback  string
	Score     *float64
	Details   *automaton.Feedback
}

// Grade runs the correction pipeline of spec.md §4.7: validate, gate on
// the configured type/completeness/minimality expectations, decide
// language equivalence, and assemble a Feedback a teaching UI can render.
//
// Grade never panics outward. A broken internal invariant — the one case
// spec.md §4.8 allows to surface as a host-language fault rather than a
// diagnostic — is caught here, wrapped with github.com/pkg/errors for a
// stack trace, and reported as a single EVALUATION_ERROR diagnostic.
func Grade(student, reference *automaton.Automaton, cfg Config) (result GradeResult) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("grading engine fault: %v", r)
			result = engineFaultResult(err)
		}
	}()

	return grade(student, reference, cfg)
}

func engineFaultResult(err error) GradeResult {
	diag := automaton.Diagnostic{
		Message:  err.Error(),
		Code:     automaton.CodeEvaluationError,
		Severity: automaton.SeverityError,
	}
	return GradeResult{
		IsCorrect: false,
		Feedback:  "An internal error occurred while grading. Contact your instructor.",
		Details: &automaton.Feedback{
			IsCorrect: false,
			Summary:   "An internal error occurred while grading.",
			Errors:    []automaton.Diagnostic{diag},
		},
	}
}

func grade(student, reference *automaton.Automaton, cfg Config) GradeResult {
	// Step 1: validate the student submission; any error short-circuits.
	studentDiags := automaton.Validate(student)
	studentErrors, studentWarnings := splitBySeverity(studentDiags)
	if len(studentErrors) > 0 {
		return finish(cfg, &automaton.Feedback{
			IsCorrect: false,
			Summary:   "Your FSA has a structural problem",
			Errors:    studentErrors,
			Warnings:  studentWarnings,
		}, nil)
	}

	// Step 2: validate the reference; any error here is ours, not the
	// student's.
	referenceErrors, _ := splitBySeverity(automaton.Validate(reference))
	if len(referenceErrors) > 0 {
		return finish(cfg, &automaton.Feedback{
			IsCorrect: false,
			Summary:   "The reference FSA could not be evaluated; contact your instructor.",
		}, nil)
	}

	var errs []automaton.Diagnostic
	warns := append([]automaton.Diagnostic(nil), studentWarnings...)

	// Step 3: determinism expectation.
	typeMismatch := false
	if cfg.ExpectedType == automaton.TypeDFA && !student.IsDeterministic() {
		typeMismatch = true
		errs = append(errs, automaton.Diagnostic{
			Message:  "the exercise requires a DFA, but this automaton is non-deterministic",
			Code:     automaton.CodeNotDeterministic,
			Severity: automaton.SeverityError,
		})
	}

	// Step 4: completeness expectation.
	completenessFailed := false
	if cfg.CheckCompleteness && !student.IsComplete() {
		completenessFailed = true
		errs = append(errs, automaton.Diagnostic{
			Message:  "the automaton is missing transitions required for completeness",
			Code:     automaton.CodeNotComplete,
			Severity: automaton.SeverityWarning,
		})
	}

	// Step 5: minimality expectation.
	minimalityFailed := false
	if cfg.CheckMinimality && student.IsDeterministic() && !student.IsMinimal() {
		minimalityFailed = true
		errs = append(errs, automaton.Diagnostic{
			Message:  "the automaton is not minimal; it has redundant, language-equivalent states",
			Code:     automaton.CodeNotMinimal,
			Severity: automaton.SeverityWarning,
		})
	}

	// Step 6: structural info for the UI, regardless of correctness.
	structural := automaton.Analyze(student)

	// Step 7: language equivalence.
	langDiags := automaton.SameLanguage(student, reference)
	equivalent := len(langDiags) == 0
	errs = append(errs, langDiags...)

	comparison := &automaton.LanguageComparison{Equivalent: equivalent}
	if cfg.ShowCounterexample && !equivalent {
		if w, kind, found := findCounterexample(student, reference, cfg.MaxTestLength); found {
			comparison.Counterexample = w
			comparison.CounterexampleKind = kind
			comparison.HasCounterexample = true
		}
	}

	// Run any configured test cases, independent of evaluation mode, so
	// TestResults and partial-credit scoring have data to draw on.
	testResults := runTestCases(student, cfg.TestCases)

	// Step 8: decide is_correct (and score, in partial mode).
	isCorrect, score := decide(cfg, equivalent, typeMismatch, completenessFailed, minimalityFailed, testResults)

	// Step 9: summary.
	summary := successSummary(student)
	if !isCorrect {
		summary = failureSummary(errs)
	}

	feedback := &automaton.Feedback{
		IsCorrect:   isCorrect,
		Summary:     summary,
		Errors:      errs,
		Warnings:    warns,
		Structural:  structural,
		Language:    comparison,
		TestResults: testResults,
	}

	return finish(cfg, feedback, score)
}

func splitBySeverity(diags []automaton.Diagnostic) (errs, warns []automaton.Diagnostic) {
	for _, d := range diags {
		if d.Severity == automaton.SeverityError {
			errs = append(errs, d)
		} else {
			warns = append(warns, d)
		}
	}
	return errs, warns
}

func decide(cfg Config, equivalent, typeMismatch, completenessFailed, minimalityFailed bool, tests []automaton.TestResult) (bool, *float64) {
	switch cfg.EvaluationMode {
	case ModePartial:
		if len(tests) == 0 {
			return false, nil
		}
		passed := 0
		for _, t := range tests {
			if t.Passed {
				passed++
			}
		}
		score := float64(passed) / float64(len(tests))
		return score == 1.0, &score

	case ModeLenient:
		return equivalent, nil

	default: // ModeStrict
		ok := equivalent && !typeMismatch
		if cfg.CheckMinimality {
			ok = ok && !minimalityFailed
		}
		if cfg.CheckCompleteness {
			ok = ok && !completenessFailed
		}
		return ok, nil
	}
}

func runTestCases(student *automaton.Automaton, cases []TestCase) []automaton.TestResult {
	if len(cases) == 0 {
		return nil
	}
	results := make([]automaton.TestResult, 0, len(cases))
	for _, c := range cases {
		accepted, trace, fault := automaton.SimulateString(student, c.Input)
		actual := accepted
		if fault != nil {
			actual = false
		}
		results = append(results, automaton.TestResult{
			Input:    c.Input,
			Expected: c.Expected,
			Actual:   actual,
			Passed:   actual == c.Expected,
			Trace:    trace,
		})
	}
	return results
}

// finish applies step 10's verbosity/highlight policy and renders the
// top-level feedback string and GradeResult.
func finish(cfg Config, feedback *automaton.Feedback, score *float64) GradeResult {
	if !cfg.HighlightErrors {
		feedback.Errors = stripHighlights(feedback.Errors)
		feedback.Warnings = stripHighlights(feedback.Warnings)
	}
	if !cfg.ShowCounterexample && feedback.Language != nil {
		feedback.Language.Counterexample = ""
		feedback.Language.CounterexampleKind = ""
		feedback.Language.HasCounterexample = false
	}

	hints := collectHints(feedback.Errors)
	hints = append(hints, collectHints(feedback.Warnings)...)

	switch cfg.FeedbackVerbosity {
	case VerbosityMinimal:
		feedback.Hints = nil
		feedback.Structural = nil
	case VerbosityDetailed:
		if feedback.Structural != nil {
			hints = append(hints, structuralHints(feedback.Structural)...)
		}
		feedback.Hints = hints
	default: // VerbosityStandard
		feedback.Hints = hints
	}

	return GradeResult{
		IsCorrect: feedback.IsCorrect,
		Feedback:  renderFeedbackString(feedback),
		Score:     score,
		Details:   feedback,
	}
}

func renderFeedbackString(f *automaton.Feedback) string {
	if len(f.Hints) == 0 {
		return f.Summary
	}
	return fmt.Sprintf("%s (%d hint(s) available)", f.Summary, len(f.Hints))
}
