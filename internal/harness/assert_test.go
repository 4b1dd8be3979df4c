package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBody invokes fn against a fresh context, absorbing the fatal-abort
// sentinel the way the runner does, and returns the recorded failures.
func runBody(t *testing.T, fn func(*T)) []Failure {
	t.Helper()
	tc := &T{suite: "Suite", name: "Name"}
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				_, ok := rec.(fatalAbort)
				require.True(t, ok, "unexpected panic: %v", rec)
			}
		}()
		fn(tc)
	}()
	return tc.Failures()
}

func TestContext_Identity(t *testing.T) {
	tc := &T{suite: "Calculator", name: "AddsNumbers"}
	assert.Equal(t, "Calculator", tc.Suite())
	assert.Equal(t, "AddsNumbers", tc.Name())
	assert.False(t, tc.Failed())

	tc.Record(Failure{Message: "m"})
	assert.True(t, tc.Failed())
}

func TestEqualAt_PassRecordsNothing(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.EqualAt(5, 5, "add(2, 3)", "5", "example_test.go", 10, false)
	})
	assert.Empty(t, failures)
}

func TestEqualAt_FailureMessageFormat(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.EqualAt(2, 1, "subtract(5, 3)", "1", "example_test.go", 17, false)
	})

	require.Len(t, failures, 1)
	f := failures[0]
	assert.False(t, f.Fatal)
	assert.Equal(t, "example_test.go", f.File)
	assert.Equal(t, 17, f.Line)
	assert.Equal(t,
		"Expected equality of these values:\n"+
			"  subtract(5, 3)\n"+
			"    Which is: 2\n"+
			"  1\n"+
			"    Which is: 1",
		f.Message)
}

func TestNotEqualAt_FailureMessageFormat(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.NotEqualAt(4, 4, "multiply(2, 2)", "4", "example_test.go", 21, false)
	})

	require.Len(t, failures, 1)
	assert.Equal(t,
		"Expected inequality of these values:\n"+
			"  multiply(2, 2)\n"+
			"    Which is: 4\n"+
			"  4\n"+
			"    Which is: 4",
		failures[0].Message)
}

func TestTrueAt_FailureMessageFormat(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.TrueAt(false, "err == nil", "example_test.go", 30, false)
	})

	require.Len(t, failures, 1)
	assert.Equal(t, "Expected: err == nil is true", failures[0].Message)
}

func TestFatalAssertion_AbortsRemainderOfBody(t *testing.T) {
	reached := false
	failures := runBody(t, func(tc *T) {
		tc.TrueAt(false, "ptr != nil", "example_test.go", 8, true)
		reached = true
		tc.EqualAt(1, 1, "1", "1", "example_test.go", 9, false)
	})

	assert.False(t, reached, "statements after a fatal assertion must not execute")
	require.Len(t, failures, 1, "only the fatal failure is recorded")
	assert.True(t, failures[0].Fatal)
}

func TestNonFatalAssertion_BodyContinues(t *testing.T) {
	reached := false
	failures := runBody(t, func(tc *T) {
		tc.EqualAt(2, 1, "a", "b", "example_test.go", 5, false)
		reached = true
	})

	assert.True(t, reached, "body keeps running after a non-fatal failure")
	assert.Len(t, failures, 1)
}

func TestFailures_EvaluationOrderPreserved(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.TrueAt(false, "first", "example_test.go", 1, false)
		tc.TrueAt(false, "second", "example_test.go", 2, false)
		tc.TrueAt(false, "third", "example_test.go", 3, false)
	})

	require.Len(t, failures, 3)
	assert.Equal(t, "Expected: first is true", failures[0].Message)
	assert.Equal(t, "Expected: second is true", failures[1].Message)
	assert.Equal(t, "Expected: third is true", failures[2].Message)
}

func TestExpectEqual_CapturesCallerLocation(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.ExpectEqual(1, 2, "one", "two")
	})

	require.Len(t, failures, 1)
	assert.Equal(t, "assert_test.go", failures[0].File)
	assert.Greater(t, failures[0].Line, 0)
}

func TestExpectFalse_NegatesExpression(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.ExpectFalse(true, "flag")
	})

	require.Len(t, failures, 1)
	assert.Equal(t, "Expected: !(flag) is true", failures[0].Message)
}

func TestValuesEqual_DeepComparison(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.EqualAt([]int{1, 2}, []int{1, 2}, "got", "want", "example_test.go", 1, false)
		tc.EqualAt([]int{1, 2}, []int{2, 1}, "got", "want", "example_test.go", 2, false)
	})

	require.Len(t, failures, 1, "equal slices pass, different slices fail")
	assert.Equal(t, 2, failures[0].Line)
}

func TestValuesEqual_NilHandling(t *testing.T) {
	failures := runBody(t, func(tc *T) {
		tc.EqualAt(nil, nil, "a", "b", "example_test.go", 1, false)
		tc.EqualAt(nil, 1, "a", "b", "example_test.go", 2, false)
	})

	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Line)
}
