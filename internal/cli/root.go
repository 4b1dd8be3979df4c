// Package cli implements the grit command: flag handling, configuration
// merging, and the bootstrap sequence that drives the runner, the XML report
// writer, and the optional run-history store.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grit-dev/grit/internal/config"
	"github.com/grit-dev/grit/internal/harness"
	"github.com/grit-dev/grit/internal/history"
	"github.com/grit-dev/grit/internal/report"
	"github.com/grit-dev/grit/internal/suites"
)

// xmlOutputPrefix is the recognized report-destination scheme. Values without
// it are ignored, the same way unrecognized arguments are.
const xmlOutputPrefix = "xml:"

// RootOptions holds the command-line flags.
type RootOptions struct {
	GtestOutput string // raw --gtest_output value, "xml:<path>" form
	Color       string // auto|always|never
	History     string // run-history database path
	Verbose     bool
}

// NewRootCommand creates the grit command over the built-in example suites.
func NewRootCommand() *cobra.Command {
	return newRootCommand(func() *harness.Registry {
		r := harness.NewRegistry()
		suites.RegisterAll(r)
		return r
	})
}

// newRootCommand builds the command with an injectable registry source so
// tests can supply their own descriptors.
func newRootCommand(buildRegistry func() *harness.Registry) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "grit",
		Short: "grit - a minimal gtest-style test runner",
		Long: `grit runs its registered test suites sequentially, prints the gtest
console protocol, and optionally writes a gtest-compatible XML report.

Exit codes:
  0 - No test recorded a failure
  1 - One or more tests failed
  2 - Command error (broken configuration, etc.)

Examples:
  grit
  grit --gtest_output=xml:reports/results.xml
  grit --color=never --verbose`,
		// Unrecognized flags and arguments are ignored, not errors; the flag
		// surface mirrors the reference runner's tolerance.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, buildRegistry)
		},
	}

	cmd.Flags().StringVar(&opts.GtestOutput, "gtest_output", "", `XML report destination in the form "xml:<path>"`)
	cmd.Flags().StringVar(&opts.Color, "color", "", "console color mode (auto|always|never)")
	cmd.Flags().StringVar(&opts.History, "history", "", "SQLite run-history database path")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "structured diagnostics on stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *RootOptions, buildRegistry func() *harness.Registry) error {
	cfg, err := config.Load(".")
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	if err := mergeFlags(cfg, opts); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	runID := uuid.NewString()
	logger := newLogger(errOut, cfg.Verbose).With("run_id", runID)
	logger.Info("run starting", "report", cfg.Output, "history", cfg.History)

	runner := harness.NewRunner(buildRegistry(),
		harness.WithOutput(out),
		harness.WithLogger(logger),
		harness.WithColor(colorEnabled(cfg.Color, out)),
	)

	startedAt := time.Now()
	summary := runner.Run()
	elapsed := time.Since(startedAt)

	// The report writer runs unconditionally; it no-ops without a
	// destination, and its failures are warnings only - the exit status
	// derives solely from test outcomes.
	writer := report.NewWriter(cfg.Output, logger)
	if err := writer.Write(summary.Results); err != nil {
		fmt.Fprintf(errOut, "Warning: failed to write XML report to %s\n", cfg.Output)
		logger.Warn("report write failed", "error", err)
	}

	if cfg.History != "" {
		recordHistory(cmd.Context(), cfg.History, history.Run{
			ID:        runID,
			StartedAt: startedAt,
			Tests:     summary.Ran,
			Failed:    summary.Failed,
			Duration:  elapsed,
		}, errOut, logger)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d test(s) failed", summary.Failed))
	}
	return nil
}

// mergeFlags overlays explicitly set flags onto the file configuration.
func mergeFlags(cfg *config.Config, opts *RootOptions) error {
	if opts.GtestOutput != "" {
		// Only the "xml:" scheme is recognized; anything else is ignored.
		if path, ok := strings.CutPrefix(opts.GtestOutput, xmlOutputPrefix); ok {
			cfg.Output = path
		}
	}
	if opts.Color != "" {
		if !config.ValidColorMode(opts.Color) {
			return NewExitError(ExitCommandError, fmt.Sprintf("invalid color mode %q: must be auto, always or never", opts.Color))
		}
		cfg.Color = opts.Color
	}
	if opts.History != "" {
		cfg.History = opts.History
	}
	if opts.Verbose {
		cfg.Verbose = true
	}
	return nil
}

// newLogger builds the run logger: text diagnostics on w when verbose,
// discarded otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// colorEnabled resolves the color mode against the output destination.
// Auto mode colors only real terminals, so piped output keeps the literal
// prefix bytes scrapers depend on.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// recordHistory appends the run summary to the history database. Failures
// are reported as warnings and never affect the exit status.
func recordHistory(ctx context.Context, path string, run history.Run, errOut io.Writer, logger *slog.Logger) {
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(errOut, "Warning: failed to open run history at %s\n", path)
		logger.Warn("history open failed", "error", err)
		return
	}
	defer store.Close()

	if err := store.RecordRun(ctx, run); err != nil {
		fmt.Fprintf(errOut, "Warning: failed to record run history at %s\n", path)
		logger.Warn("history record failed", "error", err)
	}
}
