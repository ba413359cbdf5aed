// Package controller provides the presentation surfaces a run reports to:
// a plain line-oriented console sink and a live TUI.
package controller

import "github.com/mouse-blink/exam/internal/domain"

// UI is a run's presentation surface: the runner's event sink plus a
// lifecycle. Implementations decide layout and colour; the runner only
// supplies pass/fail booleans and raw message strings.
type UI interface {
	// Start initializes the UI. For the TUI this launches the render loop.
	Start() error
	// Close finalizes the UI after the run and surfaces any render error.
	Close() error

	domain.Sink
}
