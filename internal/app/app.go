// Package app wires configuration, the strategy factory, and the output
// layers into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fibcompare/internal/cli"
	"github.com/agbru/fibcompare/internal/config"
	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/orchestration"
	"github.com/agbru/fibcompare/internal/tui"
	"github.com/agbru/fibcompare/internal/ui"
)

// Application represents the fibcompare application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.StrategyFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom StrategyFactory for the application.
func WithFactory(f fibonacci.StrategyFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "fibcompare"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	if a.Config.Report {
		return a.runReport(ctx, out)
	}
	return a.runCompare(ctx, out)
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	strategies := orchestration.GetStrategiesToRun(a.Config.Algo, a.Factory)
	if len(strategies) == 0 {
		fmt.Fprintf(a.ErrWriter, "No strategy matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}
	return tui.Run(ctx, strategies, a.Config.N)
}

// runCompare runs all selected strategies for one index and reports the
// comparison.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	strategies := orchestration.GetStrategiesToRun(a.Config.Algo, a.Factory)
	if len(strategies) == 0 {
		fmt.Fprintf(a.ErrWriter, "No strategy matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "Comparing %d strategies for F(%d) (timeout %s)...\n",
			len(strategies), a.Config.N, a.Config.Timeout)
	}

	outcomes := orchestration.RunAll(ctx, strategies, a.Config.N)

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Run aborted: %v\n", apperrors.WrapError(err, "comparison for n=%d (timeout %s)", a.Config.N, a.Config.Timeout))
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorCanceled
	}

	exitCode := orchestration.AnalyzeComparison(outcomes, a.Config.N, a.Config.ShowValue, cli.CLIResultPresenter{}, out)

	if exitCode == apperrors.ExitSuccess && a.Config.OutputFile != "" {
		if code := a.saveBestOutcome(outcomes, out); code != apperrors.ExitSuccess {
			return code
		}
	}
	return exitCode
}

// runReport runs the powers-of-two sweep and prints the report table.
func (a *Application) runReport(ctx context.Context, out io.Writer) int {
	strategies := orchestration.GetStrategiesToRun(a.Config.Algo, a.Factory)
	if len(strategies) == 0 {
		fmt.Fprintf(a.ErrWriter, "No strategy matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	indices := orchestration.PowersOfTwo(a.Config.MaxPower)

	var observer orchestration.SweepObserver
	if !a.Config.Quiet {
		progress := cli.NewSweepProgress(a.ErrWriter)
		defer progress.Stop()
		observer = progress.Observer()
	}

	rows := orchestration.Sweep(ctx, strategies, indices, observer)

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Sweep aborted: %v\n", apperrors.WrapError(err, "sweep up to 2^%d (timeout %s)", a.Config.MaxPower, a.Config.Timeout))
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorCanceled
	}

	cli.PrintSweepTable(rows, out)
	return apperrors.ExitSuccess
}

// saveBestOutcome writes the fastest successful outcome to the configured
// output file. AnalyzeComparison sorts successes first by duration, so the
// best outcome is the first error-free entry.
func (a *Application) saveBestOutcome(outcomes []orchestration.StrategyOutcome, out io.Writer) int {
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		if err := cli.WriteResultToFile(o, a.Config.N, a.Config.OutputFile); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorSuccess(), ui.ColorPrimary(), a.Config.OutputFile, ui.ColorReset())
		}
		return apperrors.ExitSuccess
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
