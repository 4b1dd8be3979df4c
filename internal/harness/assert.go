package harness

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
)

// The diagnostic templates below are contractual: downstream log scrapers
// match them byte for byte, so the wording and indentation must not change.
const (
	equalityTemplate = "Expected equality of these values:\n  %s\n    Which is: %v\n  %s\n    Which is: %v"
	truthTemplate    = "Expected: %s is true"
)

// EqualAt checks actual == expected and records a failure at an explicit
// source location when the values differ. The expression strings are the
// source text of the operands and appear verbatim in the diagnostic.
//
// Most callers want ExpectEqual or AssertEqual, which capture the caller's
// location automatically; EqualAt exists for callers that already know the
// site (and for deterministic output in the runner's own tests).
func (t *T) EqualAt(actual, expected any, actualExpr, expectedExpr, file string, line int, fatal bool) {
	if valuesEqual(actual, expected) {
		return
	}
	msg := fmt.Sprintf(equalityTemplate, actualExpr, actual, expectedExpr, expected)
	t.fail(msg, file, line, fatal)
}

// NotEqualAt checks actual != expected with the same shape as EqualAt.
func (t *T) NotEqualAt(actual, expected any, actualExpr, expectedExpr, file string, line int, fatal bool) {
	if !valuesEqual(actual, expected) {
		return
	}
	msg := fmt.Sprintf("Expected inequality of these values:\n  %s\n    Which is: %v\n  %s\n    Which is: %v",
		actualExpr, actual, expectedExpr, expected)
	t.fail(msg, file, line, fatal)
}

// TrueAt checks a boolean condition at an explicit source location.
func (t *T) TrueAt(cond bool, expr, file string, line int, fatal bool) {
	if cond {
		return
	}
	t.fail(fmt.Sprintf(truthTemplate, expr), file, line, fatal)
}

// ExpectEqual records a non-fatal failure if actual != expected.
func (t *T) ExpectEqual(actual, expected any, actualExpr, expectedExpr string) {
	file, line := callerLocation()
	t.EqualAt(actual, expected, actualExpr, expectedExpr, file, line, false)
}

// AssertEqual records a fatal failure if actual != expected and aborts the
// remainder of the test body.
func (t *T) AssertEqual(actual, expected any, actualExpr, expectedExpr string) {
	file, line := callerLocation()
	t.EqualAt(actual, expected, actualExpr, expectedExpr, file, line, true)
}

// ExpectNotEqual records a non-fatal failure if actual == expected.
func (t *T) ExpectNotEqual(actual, expected any, actualExpr, expectedExpr string) {
	file, line := callerLocation()
	t.NotEqualAt(actual, expected, actualExpr, expectedExpr, file, line, false)
}

// AssertNotEqual records a fatal failure if actual == expected and aborts.
func (t *T) AssertNotEqual(actual, expected any, actualExpr, expectedExpr string) {
	file, line := callerLocation()
	t.NotEqualAt(actual, expected, actualExpr, expectedExpr, file, line, true)
}

// ExpectTrue records a non-fatal failure if cond is false.
func (t *T) ExpectTrue(cond bool, expr string) {
	file, line := callerLocation()
	t.TrueAt(cond, expr, file, line, false)
}

// AssertTrue records a fatal failure if cond is false and aborts.
func (t *T) AssertTrue(cond bool, expr string) {
	file, line := callerLocation()
	t.TrueAt(cond, expr, file, line, true)
}

// ExpectFalse records a non-fatal failure if cond is true.
// The diagnostic reports the negated expression, matching the reference
// EXPECT_FALSE behavior of rewriting to a truth check.
func (t *T) ExpectFalse(cond bool, expr string) {
	file, line := callerLocation()
	t.TrueAt(!cond, "!("+expr+")", file, line, false)
}

// AssertFalse records a fatal failure if cond is true and aborts.
func (t *T) AssertFalse(cond bool, expr string) {
	file, line := callerLocation()
	t.TrueAt(!cond, "!("+expr+")", file, line, true)
}

// fail records the failure and, for fatal checks, aborts the body.
func (t *T) fail(message, file string, line int, fatal bool) {
	t.Record(Failure{
		Fatal:   fatal,
		Message: message,
		File:    file,
		Line:    line,
	})
	if fatal {
		t.abort()
	}
}

// valuesEqual compares operands structurally. Identical comparable values
// short-circuit; everything else goes through reflect.DeepEqual so slices and
// structs compare the way test authors expect.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta.Comparable() && tb.Comparable() && a == b {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// callerLocation reports the file base name and line of the assertion site,
// two frames up from here (the exported wrapper's caller).
func callerLocation() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
