// Package orchestration coordinates the execution of Fibonacci strategies
// and the analysis of their results. It runs the strategies concurrently
// (safe because every call owns its own counter and cache), collects
// per-strategy outcomes without letting one failure abort the others, and
// cross-checks that all successful strategies agree on the computed value.
//
// Presentation is delegated through the ResultPresenter interface so the
// package stays independent of CLI and TUI concerns.
package orchestration
