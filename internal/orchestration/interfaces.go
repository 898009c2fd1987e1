package orchestration

import (
	"io"

	"github.com/agbru/fibcompare/internal/fibonacci"
)

// StrategyOutcome encapsulates the outcome of running a single strategy for
// one index. It is the shared domain type between orchestration and
// presentation layers.
type StrategyOutcome struct {
	// Name is the display name of the strategy (e.g., "Iterative DP").
	Name string
	// Result is the instrumented computation result. Its Value is nil if an
	// error occurred.
	Result fibonacci.Result
	// Err contains any error that occurred, typically an input-domain error
	// signaling that the strategy is unsuitable for this index.
	Err error
}

// SweepRow holds the outcomes of all strategies for one index of a sweep.
type SweepRow struct {
	// N is the Fibonacci index evaluated in this row.
	N int64
	// Outcomes are the per-strategy outcomes, in the order the strategies
	// were supplied to Sweep.
	Outcomes []StrategyOutcome
}

// ResultPresenter defines the interface for presenting comparison results.
// This interface decouples the orchestration layer from presentation
// concerns, allowing different output surfaces (CLI, TUI) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-strategy comparison for one index.
	PresentComparisonTable(n int64, outcomes []StrategyOutcome, out io.Writer)

	// PresentBest displays the fastest successful outcome.
	PresentBest(outcome StrategyOutcome, n int64, showValue bool, out io.Writer)
}

// SweepObserver is notified before each index of a sweep is evaluated.
// It exists for progress display (spinner text updates); a nil observer is
// valid and means no progress reporting.
type SweepObserver func(step, total int, n int64)
