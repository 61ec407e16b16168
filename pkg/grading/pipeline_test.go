package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/fsagrade/pkg/automaton"
)

func buildABStar() *automaton.Automaton {
	a := automaton.New()
	a.AddState("q0")
	a.AddState("q1")
	a.AddSymbol("a")
	a.AddSymbol("b")
	a.SetInitial("q0")
	a.SetAccepting([]string{"q1"})
	a.AddTransition("q0", "a", "q1")
	a.AddTransition("q0", "b", "q0")
	a.AddTransition("q1", "a", "q1")
	a.AddTransition("q1", "b", "q1")
	return a
}

func TestGradeEquivalentSubmissionIsCorrect(t *testing.T) {
	student := buildABStar()
	reference := buildABStar()

	result := Grade(student, reference, DefaultConfig())

	require.NotNil(t, result.Details)
	assert.True(t, result.IsCorrect)
	assert.Empty(t, result.Details.Errors)
	assert.Contains(t, result.Feedback, "Correct")
}

// TestGradeAcceptancePolarityMismatch mirrors spec scenario S3.
func TestGradeAcceptancePolarityMismatch(t *testing.T) {
	aPlus := automaton.New()
	aPlus.AddState("q0")
	aPlus.AddState("q1")
	aPlus.AddSymbol("a")
	aPlus.SetInitial("q0")
	aPlus.SetAccepting([]string{"q1"})
	aPlus.AddTransition("q0", "a", "q1")
	aPlus.AddTransition("q1", "a", "q1")

	aStar := automaton.New()
	aStar.AddState("q0")
	aStar.AddState("q1")
	aStar.AddSymbol("a")
	aStar.SetInitial("q0")
	aStar.SetAccepting([]string{"q0", "q1"})
	aStar.AddTransition("q0", "a", "q1")
	aStar.AddTransition("q1", "a", "q1")

	result := Grade(aPlus, aStar, DefaultConfig())

	assert.False(t, result.IsCorrect)
	require.Len(t, result.Details.Errors, 1)
	assert.Equal(t, automaton.CodeLanguageMismatch, result.Details.Errors[0].Code)
}

// TestGradeNonMinimalStudent mirrors spec scenario S4.
func TestGradeNonMinimalStudent(t *testing.T) {
	nonMinimal := automaton.New()
	for _, s := range []string{"q0", "q1", "q2", "q3"} {
		nonMinimal.AddState(s)
	}
	nonMinimal.AddSymbol("a")
	nonMinimal.AddSymbol("b")
	nonMinimal.SetInitial("q0")
	nonMinimal.SetAccepting([]string{"q1", "q2", "q3"})
	nonMinimal.AddTransition("q0", "a", "q1")
	nonMinimal.AddTransition("q0", "b", "q0")
	nonMinimal.AddTransition("q1", "a", "q2")
	nonMinimal.AddTransition("q1", "b", "q3")
	nonMinimal.AddTransition("q2", "a", "q2")
	nonMinimal.AddTransition("q2", "b", "q2")
	nonMinimal.AddTransition("q3", "a", "q3")
	nonMinimal.AddTransition("q3", "b", "q3")

	minimal := nonMinimal.Minimize()

	strict := DefaultConfig()
	strict.CheckMinimality = true
	result := Grade(nonMinimal, minimal, strict)
	assert.False(t, result.IsCorrect)
	assertHasCode(t, result.Details.Errors, automaton.CodeNotMinimal)

	lenient := DefaultConfig()
	lenient.CheckMinimality = false
	result = Grade(nonMinimal, minimal, lenient)
	assert.True(t, result.IsCorrect)
}

// TestGradeEpsilonNFAAgainstDFAReference mirrors spec scenario S2: an
// epsilon-NFA accepting exactly {"a"} graded against a DFA reference of
// the same language, with expected_type "any", must be correct. This
// pins down that non-determinism is a warning, not a structural error,
// so C3->C4->C7 equivalence still runs for non-DFA submissions.
func TestGradeEpsilonNFAAgainstDFAReference(t *testing.T) {
	student := automaton.New()
	student.AddState("q0")
	student.AddState("q1")
	student.AddState("q2")
	student.AddSymbol("a")
	student.SetInitial("q0")
	student.SetAccepting([]string{"q2"})
	student.AddTransition("q0", "ε", "q1")
	student.AddTransition("q1", "a", "q2")

	reference := automaton.New()
	reference.AddState("r0")
	reference.AddState("r1")
	reference.AddSymbol("a")
	reference.SetInitial("r0")
	reference.SetAccepting([]string{"r1"})
	reference.AddTransition("r0", "a", "r1")

	cfg := DefaultConfig()
	cfg.ExpectedType = automaton.TypeAny

	result := Grade(student, reference, cfg)
	assert.True(t, result.IsCorrect)
	assert.Empty(t, result.Details.Errors)
	assertHasCode(t, result.Details.Warnings, automaton.CodeNotDeterministic)
}

// TestGradeInvalidTransitionDestShortCircuits mirrors spec scenario S5.
func TestGradeInvalidTransitionDestShortCircuits(t *testing.T) {
	broken := automaton.New()
	broken.AddState("q0")
	broken.AddState("q1")
	broken.AddSymbol("a")
	broken.SetInitial("q0")
	broken.AddTransition("q0", "a", "q5")

	reference := buildABStar()

	result := Grade(broken, reference, DefaultConfig())
	assert.False(t, result.IsCorrect)
	require.NotEmpty(t, result.Details.Errors)
	assert.Equal(t, automaton.CodeInvalidTransitionDest, result.Details.Errors[0].Code)
	assert.Nil(t, result.Details.Language, "equivalence must not run once validation fails")
}

func TestGradePartialModeScoresTestCases(t *testing.T) {
	student := buildABStar()
	reference := buildABStar()

	cfg := DefaultConfig()
	cfg.EvaluationMode = ModePartial
	cfg.TestCases = []TestCase{
		{Input: "a", Expected: true},
		{Input: "b", Expected: false},
		{Input: "", Expected: false},
	}

	result := Grade(student, reference, cfg)
	require.NotNil(t, result.Score)
	assert.Equal(t, 1.0, *result.Score)
	assert.True(t, result.IsCorrect)
	assert.Len(t, result.Details.TestResults, 3)
}

func TestGradeMinimalVerbosityStripsHintsAndStructure(t *testing.T) {
	broken := automaton.New()
	broken.AddState("q0")
	broken.SetInitial("q0")

	cfg := DefaultConfig()
	cfg.FeedbackVerbosity = VerbosityMinimal

	result := Grade(broken, buildABStar(), cfg)
	assert.Nil(t, result.Details.Structural)
	assert.Nil(t, result.Details.Hints)
}

func TestGradeHighlightsStrippedWhenDisabled(t *testing.T) {
	broken := automaton.New()
	broken.AddState("q0")
	broken.AddState("q1")
	broken.AddSymbol("a")
	broken.SetInitial("q0")
	broken.AddTransition("q0", "a", "q5")

	cfg := DefaultConfig()
	cfg.HighlightErrors = false

	result := Grade(broken, buildABStar(), cfg)
	for _, d := range result.Details.Errors {
		assert.Nil(t, d.Highlight)
	}
}

func assertHasCode(t *testing.T, diags []automaton.Diagnostic, code automaton.ErrorCode) {
	t.Helper()
	for _, d := range diags {
		if d.Code == code {
			return
		}
	}
	t.Errorf("expected a diagnostic with code %s among %v", code, diags)
}
