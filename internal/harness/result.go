package harness

import "time"

// Result is the outcome of a single executed test.
// One Result exists per descriptor execution; the runner owns them for the
// lifetime of the run and they are discarded after reporting.
type Result struct {
	// Suite and Name identify the descriptor that produced this result.
	Suite string
	Name  string

	// Failures holds every recorded assertion failure in evaluation order.
	// Empty means the test passed.
	Failures []Failure

	// Duration is the wall-clock time spent inside the test body.
	Duration time.Duration
}

// Passed reports whether the test recorded no failures.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// FullName returns the "Suite.Name" label.
func (r Result) FullName() string {
	return r.Suite + "." + r.Name
}

// Summary aggregates a full run.
type Summary struct {
	// Results holds one entry per executed test, in registration order.
	Results []Result

	// Ran is the number of executed tests.
	Ran int

	// Passed is the number of tests with zero recorded failures.
	Passed int

	// Failed is the number of tests with at least one recorded failure.
	Failed int
}

// ExitCode derives the process exit status: 0 when no test failed, 1
// otherwise. Report-writing problems never influence this value.
func (s *Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
