package harness

// Failure records one failed assertion.
type Failure struct {
	// Fatal marks whether the failure aborted the rest of the test body.
	Fatal bool

	// Message is the formatted diagnostic, e.g. the gtest equality template.
	Message string

	// File is the source file the assertion was written in.
	// Unexpected panics use the placeholder "unknown".
	File string

	// Line is the source line, or 0 for the placeholder location.
	Line int
}

// T is the execution context for a single test invocation.
//
// A fresh T is created by the runner for each test and passed explicitly to
// the body; assertion methods record failures into it in evaluation order.
// After the body returns the runner drains the failure list and the T is
// discarded. A T must never be retained past its own body invocation.
type T struct {
	suite string
	name  string

	failures []Failure
}

// Suite returns the owning test's suite label.
func (t *T) Suite() string { return t.suite }

// Name returns the owning test's name.
func (t *T) Name() string { return t.name }

// Record appends a failure to the ordered failure list.
func (t *T) Record(f Failure) {
	t.failures = append(t.failures, f)
}

// Failed reports whether any failure has been recorded so far.
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// Failures returns the failures recorded so far, in evaluation order.
func (t *T) Failures() []Failure {
	return t.failures
}

// fatalAbort is the panic sentinel raised by fatal assertions. The runner
// recovers it at the body-invocation boundary; it carries no data because the
// failure itself was already recorded before the abort.
type fatalAbort struct{}

// abort stops execution of the remainder of the current test body.
func (t *T) abort() {
	panic(fatalAbort{})
}
