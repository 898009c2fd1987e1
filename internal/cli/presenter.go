// Package cli renders comparison results for the command line: per-index
// comparison tables, sweep reports, spinner progress, and JSON result files.
package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/format"
	"github.com/agbru/fibcompare/internal/orchestration"
	"github.com/agbru/fibcompare/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for comparison results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the per-strategy comparison for one index
// with values, operation counts, durations, and status in a formatted
// tabular layout. Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(n int64, outcomes []orchestration.StrategyOutcome, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison for n=%d ---\n", n)

	// Find the maximum column widths for proper alignment
	maxNameLen := len("Strategy")
	maxValueLen := len("Value")
	maxOpsLen := len("Operations")
	maxDurationLen := len("Duration")
	for _, o := range outcomes {
		if len(o.Name) > maxNameLen {
			maxNameLen = len(o.Name)
		}
		if o.Err == nil {
			if l := len(format.FormatBigValue(o.Result.Value)); l > maxValueLen {
				maxValueLen = l
			}
			if l := len(format.FormatOperationCount(o.Result.Operations)); l > maxOpsLen {
				maxOpsLen = l
			}
			if l := len(durationCell(o)); l > maxDurationLen {
				maxDurationLen = l
			}
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sStrategy%s%s   %sValue%s%s   %sOperations%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxNameLen-len("Strategy")),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxValueLen-len("Value")),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxOpsLen-len("Operations")),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each outcome row
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(out, "%s%s%s%s   %s   %s   %s   %s\n",
				ui.ColorPrimary(), o.Name, ui.ColorReset(), padRight(maxNameLen-len(o.Name)),
				padCell("-", maxValueLen), padCell("-", maxOpsLen), padCell("-", maxDurationLen),
				statusCell(o.Err))
			continue
		}
		value := format.FormatBigValue(o.Result.Value)
		ops := format.FormatOperationCount(o.Result.Operations)
		duration := durationCell(o)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), o.Name, ui.ColorReset(), padRight(maxNameLen-len(o.Name)),
			ui.ColorSuccess(), value, ui.ColorReset(), padRight(maxValueLen-len(value)),
			ops, padRight(maxOpsLen-len(ops)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight(maxDurationLen-len(duration)),
			statusCell(nil))
	}
}

// PresentBest displays the fastest successful outcome, optionally with the
// full (unabbreviated) value.
func (CLIResultPresenter) PresentBest(outcome orchestration.StrategyOutcome, n int64, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "\nFastest strategy: %s%s%s (%s, %s operations)\n",
		ui.ColorPrimary(), outcome.Name, ui.ColorReset(),
		format.FormatExecutionDuration(outcome.Result.Duration),
		format.FormatOperationCount(outcome.Result.Operations))
	if showValue {
		fmt.Fprintf(out, "F(%d) = %s\n", n, outcome.Result.Value.String())
	} else {
		fmt.Fprintf(out, "F(%d) = %s\n", n, format.FormatBigValue(outcome.Result.Value))
	}
}

// PrintSweepTable renders the sweep report: one row per index, one duration
// cell per strategy, with a marker for indices a strategy rejected.
func PrintSweepTable(rows []orchestration.SweepRow, out io.Writer) {
	if len(rows) == 0 {
		return
	}

	names := make([]string, len(rows[0].Outcomes))
	widths := make([]int, len(names))
	for i, o := range rows[0].Outcomes {
		names[i] = o.Name
		widths[i] = len(o.Name)
	}

	const nHeader = "n"
	nWidth := len(nHeader)
	cells := make([][]string, len(rows))
	for r, row := range rows {
		if l := len(fmt.Sprintf("%d", row.N)); l > nWidth {
			nWidth = l
		}
		cells[r] = make([]string, len(row.Outcomes))
		for c, o := range row.Outcomes {
			cells[r][c] = sweepCell(o)
			if len(cells[r][c]) > widths[c] {
				widths[c] = len(cells[r][c])
			}
		}
	}

	fmt.Fprintf(out, "\n--- Strategy comparison (duration per index) ---\n")
	fmt.Fprintf(out, "%s%s%s%s", ui.ColorUnderline(), nHeader, ui.ColorReset(), padRight(nWidth-len(nHeader)))
	for c, name := range names {
		fmt.Fprintf(out, "   %s%s%s%s", ui.ColorUnderline(), name, ui.ColorReset(), padRight(widths[c]-len(name)))
	}
	fmt.Fprintln(out)

	for r, row := range rows {
		fmt.Fprintf(out, "%d%s", row.N, padRight(nWidth-len(fmt.Sprintf("%d", row.N))))
		for c := range names {
			cell := cells[r][c]
			color := ""
			if row.Outcomes[c].Err != nil {
				color = ui.ColorSecondary()
			}
			fmt.Fprintf(out, "   %s%s%s%s", color, cell, ui.ColorReset(), padRight(widths[c]-len(cell)))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%sout-of-range indices are marked with a dash%s\n", ui.ColorSecondary(), ui.ColorReset())
}

// sweepCell renders one sweep table cell: the duration for a success, a
// marker for a rejected index.
func sweepCell(o orchestration.StrategyOutcome) string {
	if o.Err != nil {
		if apperrors.IsOutOfRange(o.Err) || apperrors.IsInvalidArgument(o.Err) {
			return "-"
		}
		return "error"
	}
	return durationCell(o)
}

func durationCell(o orchestration.StrategyOutcome) string {
	if o.Result.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(o.Result.Duration)
}

// statusCell renders the status column for a comparison row.
func statusCell(err error) string {
	if err != nil {
		return fmt.Sprintf("%s✗ %v%s", ui.ColorError(), err, ui.ColorReset())
	}
	return fmt.Sprintf("%s✓ OK%s", ui.ColorSuccess(), ui.ColorReset())
}

// padRight returns a string of `length` spaces.
func padRight(length int) string {
	if length <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", length, "")
}

// padCell left-aligns s inside a cell of the given width.
func padCell(s string, width int) string {
	return s + padRight(width-len(s))
}
