// Package tui implements the interactive comparison dashboard: it runs the
// configured strategies for one index and renders their results side by side,
// with key bindings to rerun or inspect the full value.
package tui

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/format"
	"github.com/agbru/fibcompare/internal/orchestration"
)

// outcomesMsg carries the finished comparison back into the update loop.
type outcomesMsg []orchestration.StrategyOutcome

// Model is the root bubbletea model for the comparison dashboard.
type Model struct {
	ctx        context.Context
	n          int64
	strategies []fibonacci.Strategy

	outcomes  []orchestration.StrategyOutcome
	computing bool
	showValue bool

	spinner spinner.Model
	help    help.Model
	keymap  KeyMap
	styles  Styles

	exitCode int
}

// NewModel creates a dashboard model for the given index and strategies.
func NewModel(ctx context.Context, strategies []fibonacci.Strategy, n int64) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		n:          n,
		strategies: strategies,
		computing:  true,
		spinner:    sp,
		help:       help.New(),
		keymap:     DefaultKeyMap(),
		styles:     NewStyles(),
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init starts the spinner and kicks off the first comparison run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.computeCmd())
}

// computeCmd runs the comparison off the update loop and delivers the
// outcomes as a message. Per-call isolation inside the strategies makes the
// concurrent run safe without coordination here.
func (m Model) computeCmd() tea.Cmd {
	ctx, n, strategies := m.ctx, m.n, m.strategies
	return func() tea.Msg {
		return outcomesMsg(orchestration.RunAll(ctx, strategies, n))
	}
}

// Update handles key presses, spinner ticks, and finished comparisons.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Rerun):
			if !m.computing {
				m.computing = true
				m.outcomes = nil
				return m, tea.Batch(m.spinner.Tick, m.computeCmd())
			}
		case key.Matches(msg, m.keymap.ToggleValue):
			m.showValue = !m.showValue
		}

	case outcomesMsg:
		m.computing = false
		m.outcomes = msg
		m.exitCode = outcomeExitCode(msg)

	case spinner.TickMsg:
		if m.computing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the dashboard: a title, the results panel, and the help line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("fibcompare — F(%d)", m.n)))
	b.WriteString("\n")

	if m.computing {
		b.WriteString(m.styles.Panel.Render(m.spinner.View() + " comparing strategies..."))
	} else {
		b.WriteString(m.styles.Panel.Render(m.resultsView()))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	b.WriteString("\n")
	return b.String()
}

// outcomeExitCode classifies a finished comparison the same way the CLI
// analysis does: no success is a generic failure, disagreement among the
// successful values is a mismatch.
func outcomeExitCode(outcomes []orchestration.StrategyOutcome) int {
	var first *big.Int
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		if first == nil {
			first = o.Result.Value
			continue
		}
		if o.Result.Value.Cmp(first) != 0 {
			return apperrors.ExitErrorMismatch
		}
	}
	if first == nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// resultsView renders one line per strategy outcome.
func (m Model) resultsView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Strategy results"))
	b.WriteString("\n")

	for _, o := range m.outcomes {
		name := m.styles.Strategy.Render(fmt.Sprintf("%-22s", o.Name))
		if o.Err != nil {
			b.WriteString(fmt.Sprintf("%s %s\n", name, m.styles.Error.Render(o.Err.Error())))
			continue
		}

		value := format.FormatBigValue(o.Result.Value)
		if m.showValue {
			value = o.Result.Value.String()
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			name,
			m.styles.Success.Render(value),
			m.styles.Dim.Render(format.FormatOperationCount(o.Result.Operations)+" ops"),
			format.FormatExecutionDuration(o.Result.Duration),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run launches the dashboard and blocks until it exits.
//
// Parameters:
//   - ctx: The parent context; canceling it closes the dashboard.
//   - strategies: The strategies to compare.
//   - n: The Fibonacci index to evaluate.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, strategies []fibonacci.Strategy, n int64) int {
	model := NewModel(ctx, strategies, n)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
