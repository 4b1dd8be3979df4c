package harness

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

// Console prefixes. These are contractual: the stream is read sequentially by
// humans and by simple log scrapers, so the literal bytes (including the
// space padding) must not change.
const (
	prefixBanner = "[==========]"
	prefixGlobal = "[----------]"
	prefixRun    = "[ RUN      ]"
	prefixOK     = "[       OK ]"
	prefixFailed = "[  FAILED  ]"
	prefixPassed = "[  PASSED  ]"
)

// Runner executes every registered test strictly sequentially and writes the
// console trace as it goes. It never starts a test before the previous one's
// context has been drained and discarded.
type Runner struct {
	registry *Registry
	out      io.Writer
	logger   *slog.Logger
	clock    Clock

	green *color.Color
	red   *color.Color
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput directs the console trace to w. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the structured logger for run diagnostics.
// Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithClock overrides the time source used for per-test durations.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithColor enables or disables ANSI color on the console prefixes. The text
// content is identical either way; only the prefixes are wrapped.
func WithColor(enabled bool) Option {
	return func(r *Runner) {
		if enabled {
			r.green.EnableColor()
			r.red.EnableColor()
		} else {
			r.green.DisableColor()
			r.red.DisableColor()
		}
	}
}

// NewRunner creates a runner over the given registry.
func NewRunner(registry *Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: registry,
		out:      os.Stdout,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:    systemClock{},
		green:    color.New(color.FgGreen),
		red:      color.New(color.FgRed),
	}
	r.green.DisableColor()
	r.red.DisableColor()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes all registered tests in order and returns the aggregated
// summary. The console trace is flushed in program order: start, OK/FAILED
// and failure-detail lines interleave exactly with execution.
//
// The banner intentionally reports the test count in both positions
// ("N tests from N test suites"), matching the reference output.
func (r *Runner) Run() *Summary {
	tests := r.registry.All()

	fmt.Fprintf(r.out, "%s Running %d tests from %d test suites.\n", r.green.Sprint(prefixBanner), len(tests), len(tests))
	fmt.Fprintf(r.out, "%s Global test environment set-up.\n", r.green.Sprint(prefixGlobal))

	summary := &Summary{Ran: len(tests)}
	for _, d := range tests {
		res := r.runOne(d)
		summary.Results = append(summary.Results, res)
		if res.Passed() {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	fmt.Fprintf(r.out, "%s Global test environment tear-down\n", r.green.Sprint(prefixGlobal))
	fmt.Fprintf(r.out, "%s %d tests ran.\n", r.green.Sprint(prefixBanner), summary.Ran)
	fmt.Fprintf(r.out, "%s %d tests.\n", r.green.Sprint(prefixPassed), summary.Passed)

	if summary.Failed > 0 {
		fmt.Fprintf(r.out, "%s %d tests, listed below:\n", r.red.Sprint(prefixFailed), summary.Failed)
		for _, res := range summary.Results {
			if !res.Passed() {
				fmt.Fprintf(r.out, "%s %s\n", r.red.Sprint(prefixFailed), res.FullName())
			}
		}
	}

	r.logger.Info("run complete",
		"ran", summary.Ran,
		"passed", summary.Passed,
		"failed", summary.Failed,
	)

	return summary
}

// runOne executes a single descriptor against a fresh context.
func (r *Runner) runOne(d Descriptor) Result {
	fmt.Fprintf(r.out, "%s %s\n", r.green.Sprint(prefixRun), d.FullName())

	t := &T{suite: d.Suite, name: d.Name}
	start := r.clock.Now()
	r.invoke(d.Body, t)
	elapsed := r.clock.Now().Sub(start)

	res := Result{
		Suite:    d.Suite,
		Name:     d.Name,
		Failures: t.failures,
		Duration: elapsed,
	}

	if res.Passed() {
		fmt.Fprintf(r.out, "%s %s (%d ms)\n", r.green.Sprint(prefixOK), d.FullName(), elapsed.Milliseconds())
	} else {
		fmt.Fprintf(r.out, "%s %s (%d ms)\n", r.red.Sprint(prefixFailed), d.FullName(), elapsed.Milliseconds())
		for _, f := range res.Failures {
			fmt.Fprintf(r.out, "%s:%d: %s\n", f.File, f.Line, f.Message)
		}
	}

	r.logger.Info("test complete",
		"test", d.FullName(),
		"failures", len(res.Failures),
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return res
}

// invoke runs the body and bounds both the fatal-abort sentinel and any
// unexpected panic to this single invocation. The sentinel means the failure
// was already recorded; anything else becomes one fatal failure with the
// placeholder location.
func (r *Runner) invoke(body TestFunc, t *T) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if _, ok := rec.(fatalAbort); ok {
			return
		}
		t.Record(Failure{
			Fatal:   true,
			Message: fmt.Sprintf("Unhandled panic: %v", rec),
			File:    "unknown",
			Line:    0,
		})
	}()
	body(t)
}
