// Package report serializes run results into the gtest-compatible XML
// document consumed by CI log scrapers.
package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/grit-dev/grit/internal/harness"
)

// SuiteRollup is the per-suite aggregate derived from member results.
// Rollups are computed at report time only and never stored independently;
// they are always recomputable from the results.
type SuiteRollup struct {
	// Suite is the shared suite label.
	Suite string

	// Tests is the number of results carrying this suite label.
	Tests int

	// Failures is the sum of the member tests' failure counts.
	Failures int

	// Duration is the sum of the member tests' durations.
	Duration time.Duration
}

// Rollups groups results by suite label, preserving first-appearance order.
func Rollups(results []harness.Result) []SuiteRollup {
	index := make(map[string]int)
	var rollups []SuiteRollup

	for _, res := range results {
		i, ok := index[res.Suite]
		if !ok {
			i = len(rollups)
			index[res.Suite] = i
			rollups = append(rollups, SuiteRollup{Suite: res.Suite})
		}
		rollups[i].Tests++
		rollups[i].Failures += len(res.Failures)
		rollups[i].Duration += res.Duration
	}

	return rollups
}

// XML element shapes. Attribute order follows field order and is part of the
// output contract.

type xmlTestSuites struct {
	XMLName  xml.Name       `xml:"testsuites"`
	Tests    int            `xml:"tests,attr"`
	Failures int            `xml:"failures,attr"`
	Disabled int            `xml:"disabled,attr"`
	Errors   int            `xml:"errors,attr"`
	Suites   []xmlTestSuite `xml:"testsuite"`
}

type xmlTestSuite struct {
	Name     string        `xml:"name,attr"`
	Tests    int           `xml:"tests,attr"`
	Failures int           `xml:"failures,attr"`
	Disabled int           `xml:"disabled,attr"`
	Errors   int           `xml:"errors,attr"`
	Time     string        `xml:"time,attr"`
	Cases    []xmlTestCase `xml:"testcase"`
}

type xmlTestCase struct {
	Name      string       `xml:"name,attr"`
	Status    string       `xml:"status,attr"`
	Result    string       `xml:"result,attr"`
	Time      string       `xml:"time,attr"`
	Classname string       `xml:"classname,attr"`
	Failures  []xmlFailure `xml:"failure"`
}

type xmlFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// Writer emits the XML report for a completed run.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a report writer for the given destination path.
// An empty path makes Write a no-op.
func NewWriter(path string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{path: path, logger: logger}
}

// Path returns the configured destination, or "" when reporting is disabled.
func (w *Writer) Path() string { return w.path }

// Write serializes the results. With no destination configured it does
// nothing and returns nil. An I/O failure is returned to the caller, which
// must treat it as a warning: report problems never change the process exit
// status, which derives solely from test outcomes.
func (w *Writer) Write(results []harness.Result) error {
	if w.path == "" {
		return nil
	}

	doc := buildDocument(results)

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("open report file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, xml.Header); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if _, err := io.WriteString(f, "\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	w.logger.Info("xml report written", "path", w.path, "tests", doc.Tests, "failures", doc.Failures)
	return nil
}

// buildDocument assembles the XML tree from results, grouping test cases by
// suite in first-appearance order.
func buildDocument(results []harness.Result) xmlTestSuites {
	rollups := Rollups(results)

	index := make(map[string]int, len(rollups))
	suites := make([]xmlTestSuite, len(rollups))
	for i, ru := range rollups {
		index[ru.Suite] = i
		suites[i] = xmlTestSuite{
			Name:     ru.Suite,
			Tests:    ru.Tests,
			Failures: ru.Failures,
			Time:     formatSeconds(ru.Duration),
		}
	}

	totalFailures := 0
	for _, res := range results {
		tc := xmlTestCase{
			Name:      res.Name,
			Status:    "run",
			Result:    "completed",
			Time:      formatSeconds(res.Duration),
			Classname: res.Suite,
		}
		if !res.Passed() {
			tc.Result = "failed"
			for _, f := range res.Failures {
				tc.Failures = append(tc.Failures, xmlFailure{
					Message: f.Message,
					Body:    fmt.Sprintf("\n%s:%d\n%s\n", f.File, f.Line, f.Message),
				})
			}
		}
		totalFailures += len(res.Failures)

		i := index[res.Suite]
		suites[i].Cases = append(suites[i].Cases, tc)
	}

	return xmlTestSuites{
		Tests:    len(results),
		Failures: totalFailures,
		Suites:   suites,
	}
}

// formatSeconds renders a duration as seconds with exactly three decimals.
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
