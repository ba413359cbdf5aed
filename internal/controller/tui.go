package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/exam/internal/model"
)

// TUI implements UI with a live Bubble Tea view of the run. The runner
// stays synchronous; its sink callbacks forward events into the tea program,
// which renders on its own goroutine under an errgroup.
type TUI struct {
	program *tea.Program
	group   errgroup.Group
}

// NewTUI creates a new TUI writing to the given output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		program: tea.NewProgram(newRunModel(), tea.WithOutput(output)),
	}
}

// Start launches the render loop.
func (t *TUI) Start() error {
	t.group.Go(func() error {
		_, err := t.program.Run()

		return err
	})

	return nil
}

// Close waits for the render loop to drain and surfaces its error, if any.
// The loop ends on its own once the summary event arrives.
func (t *TUI) Close() error {
	return t.group.Wait()
}

// RunStarted forwards the planned execution count.
func (t *TUI) RunStarted(total int) {
	t.program.Send(runStartedMsg{total: total})
}

// SuiteStarted forwards a suite boundary.
func (t *TUI) SuiteStarted(suite string) {
	t.program.Send(suiteMsg{suite: suite})
}

// TestStarted forwards the candidate id about to run.
func (t *TUI) TestStarted(id string) {
	t.program.Send(startedMsg{id: id})
}

// TestFinished forwards one completed outcome.
func (t *TUI) TestFinished(outcome m.Outcome) {
	t.program.Send(finishedMsg{outcome: outcome})
}

// Summary forwards the final tally, which quits the render loop.
func (t *TUI) Summary(report m.Report) {
	t.program.Send(summaryMsg{report: report})
}
