// Package ui centralizes terminal color handling for the CLI and TUI
// surfaces: ANSI themes, the NO_COLOR convention, and the lipgloss palette
// used by the dashboard.
package ui
