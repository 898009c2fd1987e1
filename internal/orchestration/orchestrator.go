package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/logging"
)

// GetStrategiesToRun determines which strategies should be executed based on
// the algorithm selection. Returns strategies in alphabetically sorted order
// for consistent, reproducible behavior.
//
// Parameters:
//   - algo: "all" or the name of a registered strategy.
//   - factory: The strategy factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Strategy: A slice of strategies to execute.
func GetStrategiesToRun(algo string, factory fibonacci.StrategyFactory) []fibonacci.Strategy {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		strategies := make([]fibonacci.Strategy, 0, len(keys))
		for _, k := range keys {
			if s, err := factory.Get(k); err == nil {
				strategies = append(strategies, s)
			}
		}
		return strategies
	}
	if s, err := factory.Get(algo); err == nil {
		return []fibonacci.Strategy{s}
	}
	return nil
}

// RunAll executes every supplied strategy for a single index and collects the
// per-strategy outcomes.
//
// The strategies run concurrently via errgroup: each invocation owns its own
// operation counter and (for the memoized strategy) its own cache, so no
// isolation work is needed beyond what the strategies already guarantee.
// Errors are captured in the outcomes rather than propagated — a strategy
// rejecting the index must never abort the evaluation of the others.
//
// Parameters:
//   - ctx: The context passed through to each strategy (tracing/metrics).
//   - strategies: The strategies to run.
//   - n: The Fibonacci index to evaluate.
//
// Returns:
//   - []StrategyOutcome: One outcome per strategy, in input order.
func RunAll(ctx context.Context, strategies []fibonacci.Strategy, n int64) []StrategyOutcome {
	g := new(errgroup.Group)
	outcomes := make([]StrategyOutcome, len(strategies))

	for i, s := range strategies {
		idx, strategy := i, s
		g.Go(func() error {
			res, err := strategy.Compute(ctx, n)
			outcomes[idx] = StrategyOutcome{Name: strategy.Name(), Result: res, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

// Sweep evaluates every supplied index with every strategy, producing one row
// per index. Indices are processed sequentially so the observer can narrate
// progress; within an index the strategies run concurrently via RunAll.
//
// Parameters:
//   - ctx: The context passed through to each strategy.
//   - strategies: The strategies to run.
//   - indices: The Fibonacci indices to evaluate, in row order.
//   - observer: Optional progress callback, invoked before each index.
//
// Returns:
//   - []SweepRow: One row per index, in input order.
func Sweep(ctx context.Context, strategies []fibonacci.Strategy, indices []int64, observer SweepObserver) []SweepRow {
	logger := logging.NewDefaultLogger()
	rows := make([]SweepRow, 0, len(indices))

	for step, n := range indices {
		if observer != nil {
			observer(step+1, len(indices), n)
		}
		logger.Debug("evaluating sweep index",
			logging.Int64("n", n),
			logging.Int64("step", int64(step+1)),
		)
		rows = append(rows, SweepRow{N: n, Outcomes: RunAll(ctx, strategies, n)})
	}

	return rows
}

// PowersOfTwo returns the index sequence 2⁰, 2¹, …, 2^maxExp used by the
// default comparison report.
//
// Parameters:
//   - maxExp: The largest exponent, inclusive. Negative yields an empty slice.
//
// Returns:
//   - []int64: The powers of two in ascending order.
func PowersOfTwo(maxExp int) []int64 {
	if maxExp < 0 {
		return nil
	}
	indices := make([]int64, 0, maxExp+1)
	for e := 0; e <= maxExp; e++ {
		indices = append(indices, int64(1)<<e)
	}
	return indices
}

// AnalyzeComparison processes the outcomes of one comparison run and
// generates a summary report.
//
// It sorts the outcomes by execution time, validates that all successful
// strategies agree on the computed value, and delegates display to the
// presenter. The closed-form strategy is exact throughout its accepted
// domain at the precision this repository evaluates it with, so agreement is
// checked with plain integer equality.
//
// Parameters:
//   - outcomes: The per-strategy outcomes to analyze.
//   - n: The index the outcomes were computed for.
//   - showValue: Whether the full value should be displayed for the winner.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparison(outcomes []StrategyOutcome, n int64, showValue bool, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(outcomes, func(i, j int) bool {
		if (outcomes[i].Err == nil) != (outcomes[j].Err == nil) {
			return outcomes[i].Err == nil
		}
		return outcomes[i].Result.Duration < outcomes[j].Result.Duration
	})

	var firstValid *StrategyOutcome
	successCount := 0
	for i := range outcomes {
		if outcomes[i].Err == nil {
			successCount++
			if firstValid == nil {
				firstValid = &outcomes[i]
			}
		}
	}

	presenter.PresentComparisonTable(n, outcomes, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy accepted n=%d.\n", n)
		return apperrors.ExitErrorGeneric
	}

	for _, o := range outcomes {
		if o.Err == nil && o.Result.Value.Cmp(firstValid.Result.Value) != 0 {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the strategy results.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentBest(*firstValid, n, showValue, out)
	return apperrors.ExitSuccess
}
