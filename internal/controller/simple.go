package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/exam/internal/model"
)

// Status labels, aligned to a fixed column width.
const (
	labelSuite   = "=========="
	labelStarted = "STARTED   "
	labelPassed  = "        OK"
	labelFailed  = "    FAILED"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
)

// SimpleUI implements UI as a line-oriented sink on a cobra Command's
// output: one line per event, verdicts coloured, the final tally as a table.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() error {
	return nil
}

// RunStarted is a no-op for the plain sink.
func (s *SimpleUI) RunStarted(int) {}

// SuiteStarted prints a suite header line.
func (s *SimpleUI) SuiteStarted(suite string) {
	s.printf("[%s] %s\n", labelSuite, suite)
}

// TestStarted prints the candidate id about to run.
func (s *SimpleUI) TestStarted(id string) {
	s.printf("[%s] %s\n", labelStarted, id)
}

// TestFinished prints the verdict line with the elapsed time, followed by
// the failure message when the test failed.
func (s *SimpleUI) TestFinished(outcome m.Outcome) {
	label, style := labelPassed, passStyle
	if !outcome.Passed {
		label, style = labelFailed, failStyle
	}

	line := fmt.Sprintf("[%s] %s (%s)", label, outcome.ID, formatElapsed(outcome.Elapsed))
	s.printf("%s\n", style.Render(line))

	if outcome.Message != "" {
		s.printf("%s\n", outcome.Message)
	}
}

// Summary prints the closing header, the tally table and the final verdict.
func (s *SimpleUI) Summary(report m.Report) {
	s.printf("[%s]\n", labelSuite)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Tally", "Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Run", strconv.Itoa(report.Run)})
	table.Append([]string{"Passed", strconv.Itoa(report.Passed)})

	if report.Ignored > 0 {
		table.Append([]string{"Ignored", strconv.Itoa(report.Ignored)})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	label, style := labelPassed, passStyle
	if !report.Ok() {
		label, style = labelFailed, failStyle
	}

	s.printf("%s\n", style.Render(fmt.Sprintf("[%s] Final result.", label)))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// formatElapsed renders a duration as milliseconds with two decimals.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}
